// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

package acctdec_test

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
	"sync/atomic"

	"github.com/gagliardetto/solana-go"

	"github.com/solweave/acctdec"
	"github.com/solweave/acctdec/decutils"
)

func fromHex(s string) []byte {
	data, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		panic(err)
	}
	return data
}

// countingCandidate records how often its parser ran; used to verify
// short-circuiting and probe order.
type countingCandidate struct {
	tag    acctdec.Tag
	value  any
	reject bool
	calls  atomic.Int64
}

func (c *countingCandidate) Tag() acctdec.Tag { return c.tag }

func (c *countingCandidate) TryDecode(data []byte) (any, error) {
	c.calls.Add(1)
	if c.reject {
		return nil, decutils.ErrNoMatch
	}
	return c.value, nil
}

func acceptAll(tag acctdec.Tag, value any) *countingCandidate {
	return &countingCandidate{tag: tag, value: value}
}

func rejectAll(tag acctdec.Tag) *countingCandidate {
	return &countingCandidate{tag: tag, reject: true}
}

// buildTokenAccountData packs a 165-byte SPL token account buffer.
func buildTokenAccountData(mint, owner solana.PublicKey, amount uint64) []byte {
	data := make([]byte, 165)
	copy(data[0:32], mint[:])
	copy(data[32:64], owner[:])
	binary.LittleEndian.PutUint64(data[64:72], amount)
	// delegate COption: none
	data[108] = 1 // state: initialized
	// isNative COption: none, delegated amount zero, close authority none
	return data
}
