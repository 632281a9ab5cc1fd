// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

// Package token implements schema candidates for the SPL Token program's
// account layouts: token accounts, mints and multisigs. The layouts are
// fixed-offset little-endian records; optional fields use the COption
// encoding (a 4-byte 0/1 presence tag followed by the value slot, which is
// always present in the buffer).
package token

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/solweave/acctdec/decutils"
)

// TokenAccountSize is the packed size of an SPL token account.
const TokenAccountSize = 165

// AccountState is the lifecycle state of a token account.
type AccountState uint8

const (
	StateUninitialized AccountState = iota
	StateInitialized
	StateFrozen
)

func (s AccountState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateFrozen:
		return "frozen"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// TokenAccount is an SPL token holding account.
type TokenAccount struct {
	Mint            solana.PublicKey
	Owner           solana.PublicKey
	Amount          uint64
	Delegate        *solana.PublicKey
	State           AccountState
	IsNative        *uint64
	DelegatedAmount uint64
	CloseAuthority  *solana.PublicKey
}

// DecodeTokenAccount parses a 165-byte SPL token account buffer. Buffers of
// any other length, invalid COption tags and unknown state values are
// structural mismatches.
func DecodeTokenAccount(data []byte) (*TokenAccount, error) {
	if len(data) != TokenAccountSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", decutils.ErrLength, len(data), TokenAccountSize)
	}

	mint, err := readPubkey(data, 0)
	if err != nil {
		return nil, err
	}
	owner, err := readPubkey(data, 32)
	if err != nil {
		return nil, err
	}
	amount, err := decutils.ReadUint64(data, 64)
	if err != nil {
		return nil, err
	}
	delegate, err := readOptionPubkey(data, 72)
	if err != nil {
		return nil, err
	}

	state, err := decutils.ReadUint8(data, 108)
	if err != nil {
		return nil, err
	}
	if state > uint8(StateFrozen) {
		return nil, fmt.Errorf("%w: invalid token account state %d", decutils.ErrNoMatch, state)
	}

	isNative, err := readOptionUint64(data, 109)
	if err != nil {
		return nil, err
	}
	delegatedAmount, err := decutils.ReadUint64(data, 121)
	if err != nil {
		return nil, err
	}
	closeAuthority, err := readOptionPubkey(data, 129)
	if err != nil {
		return nil, err
	}

	return &TokenAccount{
		Mint:            mint,
		Owner:           owner,
		Amount:          amount,
		Delegate:        delegate,
		State:           AccountState(state),
		IsNative:        isNative,
		DelegatedAmount: delegatedAmount,
		CloseAuthority:  closeAuthority,
	}, nil
}

// ---- layout helpers ----

func readPubkey(data []byte, offset int) (solana.PublicKey, error) {
	raw, err := decutils.ReadBytes32(data, offset)
	if err != nil {
		return solana.PublicKey{}, err
	}
	return solana.PublicKeyFromBytes(raw[:]), nil
}

// readOptionPubkey reads a COption<Pubkey> slot: 4-byte presence tag plus a
// 32-byte value that is present in the buffer regardless of the tag.
func readOptionPubkey(data []byte, offset int) (*solana.PublicKey, error) {
	tag, err := decutils.ReadUint32(data, offset)
	if err != nil {
		return nil, err
	}
	switch tag {
	case 0:
		return nil, nil
	case 1:
		key, err := readPubkey(data, offset+4)
		if err != nil {
			return nil, err
		}
		return &key, nil
	default:
		return nil, fmt.Errorf("%w: invalid COption tag %d", decutils.ErrNoMatch, tag)
	}
}

func readOptionUint64(data []byte, offset int) (*uint64, error) {
	tag, err := decutils.ReadUint32(data, offset)
	if err != nil {
		return nil, err
	}
	switch tag {
	case 0:
		return nil, nil
	case 1:
		value, err := decutils.ReadUint64(data, offset+4)
		if err != nil {
			return nil, err
		}
		return &value, nil
	default:
		return nil, fmt.Errorf("%w: invalid COption tag %d", decutils.ErrNoMatch, tag)
	}
}
