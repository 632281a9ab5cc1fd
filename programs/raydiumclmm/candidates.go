// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

package raydiumclmm

import (
	"github.com/gagliardetto/solana-go"

	"github.com/solweave/acctdec"
)

// ProgramID is the Raydium concentrated liquidity program.
var ProgramID = solana.MustPublicKeyFromBase58("CAMMCzo5YL8w4VFF8KVHrK22GGUsp5VTaW7grrKgrWqK")

// Schema tags registered by this package.
const (
	TagAmmConfig                = acctdec.Tag("raydium-clmm/amm-config")
	TagTickArrayBitmapExtension = acctdec.Tag("raydium-clmm/tick-array-bitmap-extension")
)

// AmmConfigCandidate returns the schema candidate for AmmConfig accounts.
func AmmConfigCandidate() acctdec.SchemaCandidate {
	return acctdec.NewCandidate(TagAmmConfig, func(data []byte) (any, error) {
		cfg, err := DecodeAmmConfig(data)
		if err != nil {
			return nil, err
		}
		return cfg, nil
	})
}

// TickArrayBitmapExtensionCandidate returns the schema candidate for
// TickArrayBitmapExtension accounts.
func TickArrayBitmapExtensionCandidate() acctdec.SchemaCandidate {
	return acctdec.NewCandidate(TagTickArrayBitmapExtension, func(data []byte) (any, error) {
		ext, err := DecodeTickArrayBitmapExtension(data)
		if err != nil {
			return nil, err
		}
		return ext, nil
	})
}

func init() {
	acctdec.Register(AmmConfigCandidate())
	acctdec.Register(TickArrayBitmapExtensionCandidate())
}
