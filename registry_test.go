// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

package acctdec_test

import (
	"sort"
	"testing"

	"github.com/solweave/acctdec"
	"github.com/solweave/acctdec/programs/token"
)

func TestLookupRegisteredCandidate(t *testing.T) {
	candidate, ok := acctdec.Lookup(token.TagTokenAccount)
	if !ok {
		t.Fatal("token/account not registered")
	}
	if candidate.Tag() != token.TagTokenAccount {
		t.Errorf("registry returned tag %q", candidate.Tag())
	}
}

func TestLookupUnknownTag(t *testing.T) {
	if _, ok := acctdec.Lookup("no-such/schema"); ok {
		t.Error("lookup of an unknown tag succeeded")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	acctdec.Register(rejectAll("registry-test/unique"))

	defer func() {
		if recover() == nil {
			t.Error("expected a panic on duplicate registration")
		}
	}()
	acctdec.Register(rejectAll("registry-test/unique"))
}

func TestRegisteredTags(t *testing.T) {
	tags := acctdec.RegisteredTags()

	if !sort.SliceIsSorted(tags, func(i, j int) bool { return tags[i] < tags[j] }) {
		t.Errorf("tags not in lexical order: %v", tags)
	}

	found := map[acctdec.Tag]bool{}
	for _, tag := range tags {
		found[tag] = true
	}
	for _, want := range []acctdec.Tag{token.TagTokenAccount, token.TagMint, token.TagMultisig} {
		if !found[want] {
			t.Errorf("registered tag %q missing from %v", want, tags)
		}
	}
}
