// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

package token

import (
	"github.com/gagliardetto/solana-go"

	"github.com/solweave/acctdec"
)

// ProgramID is the SPL Token program.
var ProgramID = solana.TokenProgramID

// Schema tags registered by this package.
const (
	TagTokenAccount = acctdec.Tag("token/account")
	TagMint         = acctdec.Tag("token/mint")
	TagMultisig     = acctdec.Tag("token/multisig")
)

// TokenAccountCandidate returns the schema candidate for SPL token accounts.
func TokenAccountCandidate() acctdec.SchemaCandidate {
	return acctdec.NewCandidate(TagTokenAccount, func(data []byte) (any, error) {
		account, err := DecodeTokenAccount(data)
		if err != nil {
			return nil, err
		}
		return account, nil
	})
}

// MintCandidate returns the schema candidate for SPL token mints.
func MintCandidate() acctdec.SchemaCandidate {
	return acctdec.NewCandidate(TagMint, func(data []byte) (any, error) {
		mint, err := DecodeMint(data)
		if err != nil {
			return nil, err
		}
		return mint, nil
	})
}

// MultisigCandidate returns the schema candidate for SPL token multisigs.
func MultisigCandidate() acctdec.SchemaCandidate {
	return acctdec.NewCandidate(TagMultisig, func(data []byte) (any, error) {
		multisig, err := DecodeMultisig(data)
		if err != nil {
			return nil, err
		}
		return multisig, nil
	})
}

func init() {
	acctdec.Register(TokenAccountCandidate())
	acctdec.Register(MintCandidate())
	acctdec.Register(MultisigCandidate())
}
