// Package acctdec provides multi-schema decoding of raw on-chain Solana
// account records. A Dispatcher holds a fixed, ordered list of schema
// candidates and probes them in priority order until one structurally accepts
// the account's data buffer; the first match is returned as a tagged, typed
// value together with a verbatim copy of the record's metadata. Accounts that
// match no known layout yield an absent result, never an error.
//
// Copyright (c) 2025 solweave. See LICENSE file for details.
package acctdec

import (
	"go.uber.org/zap"
)

// Dispatcher maps a single AccountRecord to at most one DecodedAccount by
// probing a fixed, ordered list of schema candidates.
//
// The candidate list is fixed at construction and is part of the contract:
// candidates are tried in the exact order given (declaration order from a
// pipeline config, or argument order for NewDispatcher), and the first
// candidate whose parser accepts the bytes wins. Later candidates are never
// tried after a match, even when they would also accept the same bytes.
//
// A Dispatcher holds no mutable state after construction. Decode performs no
// I/O, mutates nothing, and retains no references, so a single Dispatcher is
// safe for concurrent use from any number of goroutines. Build it once and
// reuse it.
//
// Example usage:
//
//	cfg, err := acctdec.LoadConfig("pipeline.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dispatcher, err := acctdec.NewDispatcherFromConfig(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for record := range records {
//	    acc, ok := dispatcher.Decode(record)
//	    if !ok {
//	        continue // not a tracked layout
//	    }
//	    handle(acc)
//	}
type Dispatcher struct {
	candidates []SchemaCandidate
	logger     *zap.Logger
}

// NewDispatcher creates a Dispatcher that probes the given candidates in the
// exact order supplied. The slice is copied; the caller may reuse it.
//
// The candidate order is the priority order. It is not sorted, deduplicated
// or otherwise rearranged.
func NewDispatcher(candidates []SchemaCandidate, opts ...Option) *Dispatcher {
	options := applyOptions(opts)

	list := make([]SchemaCandidate, len(candidates))
	copy(list, candidates)

	return &Dispatcher{
		candidates: list,
		logger:     options.logger,
	}
}

// Decode probes the record's data buffer against each configured candidate in
// priority order and returns the first structural match wrapped with the
// record's metadata.
//
// The boolean result reports whether any candidate matched. A false result is
// not an error: an account whose data matches no known layout is an expected,
// silent outcome, indistinguishable at this layer from a malformed buffer.
// Candidate-internal parse failures (e.g. a buffer that passes a coarse
// length or discriminator check but is malformed past it) are folded into
// "try the next candidate" and never escape Decode.
//
// The returned DecodedAccount carries the record's Lamports, Owner,
// Executable and RentEpoch verbatim, the matching candidate's tag, and the
// typed value produced by its parser. For a fixed candidate list and fixed
// input bytes the result is always identical.
func (d *Dispatcher) Decode(record AccountRecord) (*DecodedAccount, bool) {
	for _, candidate := range d.candidates {
		value, err := candidate.TryDecode(record.Data)
		if err != nil {
			if d.logger != nil {
				d.logger.Debug("schema candidate rejected account data",
					zap.String("tag", string(candidate.Tag())),
					zap.Int("dataLen", len(record.Data)),
					zap.Error(err))
			}
			continue
		}

		if d.logger != nil {
			d.logger.Debug("schema candidate matched",
				zap.String("tag", string(candidate.Tag())),
				zap.Int("dataLen", len(record.Data)))
		}

		return &DecodedAccount{
			Lamports:   record.Lamports,
			Owner:      record.Owner,
			Executable: record.Executable,
			RentEpoch:  record.RentEpoch,
			Tag:        candidate.Tag(),
			Data:       value,
		}, true
	}

	return nil, false
}

// Tags returns the candidate tags in priority order. The result is a copy;
// mutating it does not affect the Dispatcher.
func (d *Dispatcher) Tags() []Tag {
	tags := make([]Tag, len(d.candidates))
	for i, candidate := range d.candidates {
		tags[i] = candidate.Tag()
	}
	return tags
}
