// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

package raydiumclmm

import (
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/solweave/acctdec/decutils"
)

// AmmConfigDiscriminator prefixes every AmmConfig account.
var AmmConfigDiscriminator = decutils.AnchorDiscriminator("AmmConfig")

// AmmConfig holds the fee schedule and authorities shared by a set of pools.
type AmmConfig struct {
	Bump            uint8
	Index           uint16
	Owner           solana.PublicKey
	ProtocolFeeRate uint32
	TradeFeeRate    uint32
	TickSpacing     uint16
	FundFeeRate     uint32
	PaddingU32      uint32
	FundOwner       solana.PublicKey
	Padding         [3]uint64
}

// DecodeAmmConfig parses an AmmConfig account buffer.
func DecodeAmmConfig(data []byte) (*AmmConfig, error) {
	if !decutils.HasDiscriminator(data, AmmConfigDiscriminator) {
		return nil, decutils.ErrDiscriminator
	}

	decoder := bin.NewBorshDecoder(data[decutils.DiscriminatorLength:])
	cfg := &AmmConfig{}
	if err := decoder.Decode(cfg); err != nil {
		return nil, err
	}
	if decoder.Remaining() > 0 {
		return nil, decutils.ErrTrailingBytes
	}
	return cfg, nil
}
