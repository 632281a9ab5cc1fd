// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

package acctdec

import (
	"github.com/gagliardetto/solana-go"
)

// AccountRecord is an immutable view of a stored on-chain account as observed
// at a point in time. It carries the owning program identity, the lamport
// balance, the executability flag, the rent epoch counter, and the raw account
// data buffer.
//
// The record is supplied by the ingestion side and handed to the Dispatcher
// for decoding. The Dispatcher only reads the record; it never mutates Data
// and never retains a reference to it beyond the Decode call.
type AccountRecord struct {
	// Owner is the program that owns the account.
	Owner solana.PublicKey

	// Lamports is the account balance in lamports.
	Lamports uint64

	// Executable reports whether the account contains a loaded program.
	Executable bool

	// RentEpoch is the epoch at which the account next owes rent.
	RentEpoch uint64

	// Data is the raw account data buffer. It may be of any length,
	// including zero, and must not be mutated while a decode is in flight.
	Data []byte
}

// DecodedAccount is the tagged result of a successful decode. Data holds the
// value produced by the matching schema candidate and Tag identifies which
// candidate produced it. The remaining fields are a verbatim copy of the
// originating AccountRecord's metadata at decode time; they are never
// recomputed or defaulted.
//
// Downstream consumers are expected to dispatch on Tag and then narrow Data,
// either with a type switch or with the As helper:
//
//	acc, ok := dispatcher.Decode(record)
//	if !ok {
//	    return // not one of our tracked layouts
//	}
//	switch acc.Tag {
//	case token.TagTokenAccount:
//	    ta, _ := acctdec.As[*token.TokenAccount](acc)
//	    fmt.Println(ta.Amount)
//	}
type DecodedAccount struct {
	Lamports   uint64
	Owner      solana.PublicKey
	Executable bool
	RentEpoch  uint64

	// Tag is the discriminator of the schema candidate that matched.
	Tag Tag

	// Data is the typed value produced by the matching candidate.
	Data any
}

// As narrows the Data field of a decoded account to a concrete type.
// It returns the zero value and false if the account is nil or Data does not
// hold a value of type T.
func As[T any](acc *DecodedAccount) (T, bool) {
	var zero T
	if acc == nil {
		return zero, false
	}
	v, ok := acc.Data.(T)
	if !ok {
		return zero, false
	}
	return v, true
}
