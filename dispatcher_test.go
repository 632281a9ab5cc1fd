// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

package acctdec_test

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/gagliardetto/solana-go"

	"github.com/solweave/acctdec"
	"github.com/solweave/acctdec/programs/token"
)

func TestDecodeNoMatch(t *testing.T) {
	dispatcher := acctdec.NewDispatcher([]acctdec.SchemaCandidate{
		rejectAll("a"),
		rejectAll("b"),
		rejectAll("c"),
	})

	buffers := [][]byte{nil, {}, {0x01}, fromHex("0xdeadbeef"), make([]byte, 1024)}
	for _, data := range buffers {
		account, ok := dispatcher.Decode(acctdec.AccountRecord{Data: data})
		if ok || account != nil {
			t.Errorf("expected no match for %d-byte buffer, got %v", len(data), account)
		}
	}
}

func TestDecodeEmptyCandidateList(t *testing.T) {
	dispatcher := acctdec.NewDispatcher(nil)
	if account, ok := dispatcher.Decode(acctdec.AccountRecord{Data: []byte{1, 2, 3}}); ok {
		t.Errorf("expected no match from empty candidate list, got %v", account)
	}
}

func TestDecodeFirstMatchWins(t *testing.T) {
	// Both candidates accept every buffer but produce different values.
	// Priority order alone decides; candidate b must never run.
	a := acceptAll("a", "value-a")
	b := acceptAll("b", "value-b")
	dispatcher := acctdec.NewDispatcher([]acctdec.SchemaCandidate{a, b})

	account, ok := dispatcher.Decode(acctdec.AccountRecord{Data: fromHex("0x0102")})
	if !ok {
		t.Fatal("expected a match")
	}
	if account.Tag != "a" || account.Data != "value-a" {
		t.Errorf("expected candidate a to win, got tag %q value %v", account.Tag, account.Data)
	}
	if got := b.calls.Load(); got != 0 {
		t.Errorf("candidate b was probed %d times after a matched", got)
	}
}

func TestDecodeErrorFoldsToNextCandidate(t *testing.T) {
	failing := acctdec.NewCandidate("failing", func(data []byte) (any, error) {
		return nil, fmt.Errorf("malformed past the length check")
	})
	matching := acceptAll("matching", uint64(7))
	dispatcher := acctdec.NewDispatcher([]acctdec.SchemaCandidate{failing, matching})

	account, ok := dispatcher.Decode(acctdec.AccountRecord{Data: fromHex("0xff")})
	if !ok {
		t.Fatal("expected the second candidate to match")
	}
	if account.Tag != "matching" {
		t.Errorf("expected tag %q, got %q", "matching", account.Tag)
	}
	if matching.calls.Load() != 1 {
		t.Errorf("expected exactly one probe of the matching candidate, got %d", matching.calls.Load())
	}
}

func TestDecodeMetadataFidelity(t *testing.T) {
	owner := solana.MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	record := acctdec.AccountRecord{
		Owner:      owner,
		Lamports:   18446744073709551615,
		Executable: true,
		RentEpoch:  361,
		Data:       fromHex("0x2a"),
	}

	dispatcher := acctdec.NewDispatcher([]acctdec.SchemaCandidate{acceptAll("x", "v")})
	account, ok := dispatcher.Decode(record)
	if !ok {
		t.Fatal("expected a match")
	}

	if account.Owner != owner {
		t.Errorf("owner not copied verbatim: %v", account.Owner)
	}
	if account.Lamports != record.Lamports {
		t.Errorf("lamports not copied verbatim: %d", account.Lamports)
	}
	if account.Executable != record.Executable {
		t.Errorf("executable not copied verbatim: %v", account.Executable)
	}
	if account.RentEpoch != record.RentEpoch {
		t.Errorf("rent epoch not copied verbatim: %d", account.RentEpoch)
	}
}

func TestDecodeIdempotent(t *testing.T) {
	dispatcher := acctdec.NewDispatcher([]acctdec.SchemaCandidate{
		rejectAll("a"),
		acceptAll("b", []uint64{1, 2, 3}),
	})
	record := acctdec.AccountRecord{Lamports: 5, RentEpoch: 9, Data: fromHex("0x010203")}

	first, okFirst := dispatcher.Decode(record)
	second, okSecond := dispatcher.Decode(record)
	if !okFirst || !okSecond {
		t.Fatal("expected both decodes to match")
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("decode is not idempotent: %v vs %v", first, second)
	}
}

func TestDecodeDoesNotMutateRecord(t *testing.T) {
	data := fromHex("0x00010203040506070809")
	snapshot := append([]byte(nil), data...)

	dispatcher := acctdec.NewDispatcher([]acctdec.SchemaCandidate{
		rejectAll("a"),
		acceptAll("b", "v"),
	})
	dispatcher.Decode(acctdec.AccountRecord{Data: data})

	if !reflect.DeepEqual(data, snapshot) {
		t.Errorf("record data mutated during decode: %x", data)
	}
}

func TestDecodeConcurrent(t *testing.T) {
	dispatcher := acctdec.NewDispatcher([]acctdec.SchemaCandidate{
		rejectAll("a"),
		acceptAll("b", "v"),
	})

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			record := acctdec.AccountRecord{Lamports: uint64(n), Data: []byte{byte(n)}}
			account, ok := dispatcher.Decode(record)
			if !ok || account.Lamports != uint64(n) {
				t.Errorf("concurrent decode %d failed: %v", n, account)
			}
		}(i)
	}
	wg.Wait()
}

func TestDispatcherTags(t *testing.T) {
	dispatcher := acctdec.NewDispatcher([]acctdec.SchemaCandidate{
		rejectAll("zulu"),
		rejectAll("alpha"),
		rejectAll("mike"),
	})

	want := []acctdec.Tag{"zulu", "alpha", "mike"}
	if got := dispatcher.Tags(); !reflect.DeepEqual(got, want) {
		t.Errorf("tags not in construction order: %v", got)
	}
}

// TestDecodeTokenScenario runs the full stack against a real SPL token
// account layout: [token/account, token/mint] priority list, a 165-byte
// buffer, and the token program as owner.
func TestDecodeTokenScenario(t *testing.T) {
	dispatcher := acctdec.NewDispatcher([]acctdec.SchemaCandidate{
		token.TokenAccountCandidate(),
		token.MintCandidate(),
	})

	mint := solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
	holder := solana.MustPublicKeyFromBase58("9n4nbM75f5Ui33ZbPYXn59EwSgE8CGsHtAeTH5YFeJ9E")
	record := acctdec.AccountRecord{
		Owner:    token.ProgramID,
		Lamports: 2039280,
		Data:     buildTokenAccountData(mint, holder, 123456789),
	}

	account, ok := dispatcher.Decode(record)
	if !ok {
		t.Fatal("expected the token account schema to match")
	}
	if account.Tag != token.TagTokenAccount {
		t.Fatalf("expected tag %q, got %q", token.TagTokenAccount, account.Tag)
	}
	if account.Lamports != 2039280 || account.Owner != token.ProgramID {
		t.Errorf("metadata not copied verbatim: %v", account)
	}

	parsed, ok := acctdec.As[*token.TokenAccount](account)
	if !ok {
		t.Fatalf("expected *token.TokenAccount data, got %T", account.Data)
	}
	if parsed.Mint != mint || parsed.Owner != holder || parsed.Amount != 123456789 {
		t.Errorf("unexpected parsed token account: %+v", parsed)
	}
	if parsed.State != token.StateInitialized {
		t.Errorf("expected initialized state, got %v", parsed.State)
	}

	// A 3-byte buffer matches neither schema.
	record.Data = fromHex("0x010203")
	if account, ok := dispatcher.Decode(record); ok {
		t.Errorf("expected no match for 3-byte buffer, got %v", account)
	}
}

func TestAs(t *testing.T) {
	account := &acctdec.DecodedAccount{Tag: "x", Data: uint64(9)}

	if v, ok := acctdec.As[uint64](account); !ok || v != 9 {
		t.Errorf("As[uint64] = %v, %v", v, ok)
	}
	if _, ok := acctdec.As[string](account); ok {
		t.Error("As[string] matched a uint64 value")
	}
	if _, ok := acctdec.As[uint64](nil); ok {
		t.Error("As matched a nil account")
	}
}
