// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

// Package raydiumclmm implements schema candidates for Raydium concentrated
// liquidity program accounts. These are anchor accounts: an 8-byte
// discriminator derived from the account struct name, followed by a
// borsh-encoded body.
package raydiumclmm

import (
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/solweave/acctdec/decutils"
)

// TickArrayBitmapExtensionDiscriminator prefixes every TickArrayBitmapExtension account.
var TickArrayBitmapExtensionDiscriminator = decutils.MustDiscriminatorFromHex("0x3c9624db61808b99")

// TickArrayBitmapExtension extends a pool's initialized-tick-array bitmap
// beyond the range stored in the pool state itself.
type TickArrayBitmapExtension struct {
	PoolID                  solana.PublicKey
	PositiveTickArrayBitmap [14][8]uint64
	NegativeTickArrayBitmap [14][8]uint64
}

// DecodeTickArrayBitmapExtension parses a TickArrayBitmapExtension account
// buffer: discriminator check, borsh body, no trailing bytes.
func DecodeTickArrayBitmapExtension(data []byte) (*TickArrayBitmapExtension, error) {
	if !decutils.HasDiscriminator(data, TickArrayBitmapExtensionDiscriminator) {
		return nil, decutils.ErrDiscriminator
	}

	decoder := bin.NewBorshDecoder(data[decutils.DiscriminatorLength:])
	ext := &TickArrayBitmapExtension{}
	if err := decoder.Decode(ext); err != nil {
		return nil, err
	}
	if decoder.Remaining() > 0 {
		return nil, decutils.ErrTrailingBytes
	}
	return ext, nil
}
