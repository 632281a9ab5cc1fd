// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

package token

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/solweave/acctdec/decutils"
)

// MultisigSize is the packed size of an SPL token multisig.
const MultisigSize = 355

// MaxSigners is the number of signer slots in a multisig account.
const MaxSigners = 11

// Multisig is an m-of-n signing authority over token operations.
type Multisig struct {
	M             uint8
	N             uint8
	IsInitialized bool
	Signers       [MaxSigners]solana.PublicKey
}

// DecodeMultisig parses a 355-byte SPL token multisig buffer. All eleven
// signer slots are read; only the first N are meaningful.
func DecodeMultisig(data []byte) (*Multisig, error) {
	if len(data) != MultisigSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", decutils.ErrLength, len(data), MultisigSize)
	}

	m, err := decutils.ReadUint8(data, 0)
	if err != nil {
		return nil, err
	}
	n, err := decutils.ReadUint8(data, 1)
	if err != nil {
		return nil, err
	}
	if n < 1 || n > MaxSigners || m < 1 || m > n {
		return nil, fmt.Errorf("%w: invalid multisig m=%d n=%d", decutils.ErrNoMatch, m, n)
	}

	initialized, err := decutils.ReadUint8(data, 2)
	if err != nil {
		return nil, err
	}
	if initialized > 1 {
		return nil, fmt.Errorf("%w: invalid initialized flag %d", decutils.ErrNoMatch, initialized)
	}

	multisig := &Multisig{
		M:             m,
		N:             n,
		IsInitialized: initialized == 1,
	}
	for i := 0; i < MaxSigners; i++ {
		signer, err := readPubkey(data, 3+i*32)
		if err != nil {
			return nil, err
		}
		multisig.Signers[i] = signer
	}

	return multisig, nil
}
