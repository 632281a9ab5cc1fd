// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

package decutils

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// DiscriminatorLength is the size of an anchor account discriminator.
const DiscriminatorLength = 8

// AnchorDiscriminator computes the 8-byte account discriminator for an
// anchor account struct name: the first 8 bytes of sha256("account:<name>").
func AnchorDiscriminator(name string) [DiscriminatorLength]byte {
	sum := sha256.Sum256([]byte("account:" + name))

	var disc [DiscriminatorLength]byte
	copy(disc[:], sum[:DiscriminatorLength])
	return disc
}

// DiscriminatorFromHex parses a discriminator from a hex string, with or
// without a 0x prefix.
func DiscriminatorFromHex(s string) ([DiscriminatorLength]byte, error) {
	var disc [DiscriminatorLength]byte

	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return disc, fmt.Errorf("invalid discriminator hex %q: %w", s, err)
	}
	if len(raw) != DiscriminatorLength {
		return disc, fmt.Errorf("invalid discriminator hex %q: got %d bytes, want %d", s, len(raw), DiscriminatorLength)
	}

	copy(disc[:], raw)
	return disc, nil
}

// MustDiscriminatorFromHex is DiscriminatorFromHex that panics on invalid
// input. Intended for package-level discriminator constants.
func MustDiscriminatorFromHex(s string) [DiscriminatorLength]byte {
	disc, err := DiscriminatorFromHex(s)
	if err != nil {
		panic(err)
	}
	return disc
}

// HasDiscriminator reports whether the account data starts with the given
// discriminator.
func HasDiscriminator(data []byte, disc [DiscriminatorLength]byte) bool {
	return len(data) >= DiscriminatorLength && bytes.Equal(data[:DiscriminatorLength], disc[:])
}
