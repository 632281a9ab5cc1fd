// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

package token

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/solweave/acctdec/decutils"
)

// MintSize is the packed size of an SPL token mint.
const MintSize = 82

// Mint describes a token species: its issuing authority, current supply and
// display decimals.
type Mint struct {
	MintAuthority   *solana.PublicKey
	Supply          uint64
	Decimals        uint8
	IsInitialized   bool
	FreezeAuthority *solana.PublicKey
}

// DecodeMint parses an 82-byte SPL token mint buffer.
func DecodeMint(data []byte) (*Mint, error) {
	if len(data) != MintSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", decutils.ErrLength, len(data), MintSize)
	}

	mintAuthority, err := readOptionPubkey(data, 0)
	if err != nil {
		return nil, err
	}
	supply, err := decutils.ReadUint64(data, 36)
	if err != nil {
		return nil, err
	}
	decimals, err := decutils.ReadUint8(data, 44)
	if err != nil {
		return nil, err
	}

	initialized, err := decutils.ReadUint8(data, 45)
	if err != nil {
		return nil, err
	}
	if initialized > 1 {
		return nil, fmt.Errorf("%w: invalid initialized flag %d", decutils.ErrNoMatch, initialized)
	}

	freezeAuthority, err := readOptionPubkey(data, 46)
	if err != nil {
		return nil, err
	}

	return &Mint{
		MintAuthority:   mintAuthority,
		Supply:          supply,
		Decimals:        decimals,
		IsInitialized:   initialized == 1,
		FreezeAuthority: freezeAuthority,
	}, nil
}
