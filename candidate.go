// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

package acctdec

import (
	"fmt"

	"github.com/casbin/govaluate"

	"github.com/solweave/acctdec/decutils"
)

// Tag identifies which schema variant a decoded value belongs to. Tags are
// stable string discriminators, conventionally of the form "program/account"
// (e.g. "token/account", "raydium-clmm/amm-config").
type Tag string

// SchemaCandidate is one recognized account-layout schema: a stable tag plus
// a parsing capability over raw account bytes.
//
// TryDecode must be a pure function of its input: deterministic, free of side
// effects and shared mutable state. It must be total — malformed input of any
// kind yields a non-nil error, never a panic. A panicking candidate violates
// this contract; the Dispatcher does not recover from it. Each candidate is
// invoked in its own call frame with no state shared between candidates, so
// one candidate's misbehavior cannot corrupt another's result.
//
// Two distinct candidates may both structurally accept the same bytes.
// Resolution between them is priority order only; uniqueness is not checked.
type SchemaCandidate interface {
	// Tag returns the stable discriminator for this schema.
	Tag() Tag

	// TryDecode parses the given account data buffer. It returns the typed
	// value on a structural match, or a non-nil error when the buffer does
	// not match this schema. The error is a probe outcome, not a fault; the
	// Dispatcher folds it into "try the next candidate".
	TryDecode(data []byte) (any, error)
}

type candidateFunc struct {
	tag Tag
	fn  func(data []byte) (any, error)
}

func (c *candidateFunc) Tag() Tag { return c.tag }

func (c *candidateFunc) TryDecode(data []byte) (any, error) { return c.fn(data) }

// NewCandidate wraps a plain decode function as a SchemaCandidate.
// The function must satisfy the purity and totality requirements documented
// on SchemaCandidate.
func NewCandidate(tag Tag, fn func(data []byte) (any, error)) SchemaCandidate {
	return &candidateFunc{tag: tag, fn: fn}
}

// sizeGatedCandidate evaluates a length predicate before running the inner
// candidate's parser. The gate is a candidate-level coarse filter; the
// Dispatcher itself assumes nothing about buffer lengths.
type sizeGatedCandidate struct {
	inner SchemaCandidate
	expr  *govaluate.EvaluableExpression
}

func (c *sizeGatedCandidate) Tag() Tag { return c.inner.Tag() }

func (c *sizeGatedCandidate) TryDecode(data []byte) (any, error) {
	result, err := c.expr.Evaluate(map[string]any{"len": float64(len(data))})
	if err != nil {
		return nil, fmt.Errorf("size filter for %v: %w", c.inner.Tag(), err)
	}
	pass, ok := result.(bool)
	if !ok {
		return nil, fmt.Errorf("size filter for %v: expression yields %T, not bool", c.inner.Tag(), result)
	}
	if !pass {
		return nil, decutils.ErrNoMatch
	}
	return c.inner.TryDecode(data)
}

// WithSizeFilter wraps a candidate with a buffer-length predicate expressed
// as a govaluate expression over the variable "len", e.g. "len == 165" or
// "len >= 82 && len <= 355". The inner parser only runs when the expression
// evaluates to true for the probed buffer's length.
func WithSizeFilter(c SchemaCandidate, expression string) (SchemaCandidate, error) {
	expr, err := govaluate.NewEvaluableExpression(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid size filter %q for %v: %w", expression, c.Tag(), err)
	}
	return &sizeGatedCandidate{inner: c, expr: expr}, nil
}
