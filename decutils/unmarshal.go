// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

// Package decutils holds shared low-level helpers for schema parsers:
// sentinel error values, bounds-checked little-endian reads for fixed-offset
// account layouts, and anchor-style discriminator handling.
package decutils

import (
	"encoding/binary"
)

// ---- fixed-offset reads ----

// ReadUint64 reads a little endian uint64 at the given offset.
func ReadUint64(data []byte, offset int) (uint64, error) {
	if offset < 0 || offset+8 > len(data) {
		return 0, ErrUnexpectedEOF
	}
	return binary.LittleEndian.Uint64(data[offset : offset+8]), nil
}

// ReadUint32 reads a little endian uint32 at the given offset.
func ReadUint32(data []byte, offset int) (uint32, error) {
	if offset < 0 || offset+4 > len(data) {
		return 0, ErrUnexpectedEOF
	}
	return binary.LittleEndian.Uint32(data[offset : offset+4]), nil
}

// ReadUint16 reads a little endian uint16 at the given offset.
func ReadUint16(data []byte, offset int) (uint16, error) {
	if offset < 0 || offset+2 > len(data) {
		return 0, ErrUnexpectedEOF
	}
	return binary.LittleEndian.Uint16(data[offset : offset+2]), nil
}

// ReadUint8 reads a uint8 at the given offset.
func ReadUint8(data []byte, offset int) (uint8, error) {
	if offset < 0 || offset+1 > len(data) {
		return 0, ErrUnexpectedEOF
	}
	return data[offset], nil
}

// ReadBytes32 reads a fixed 32-byte slot at the given offset.
func ReadBytes32(data []byte, offset int) ([32]byte, error) {
	var out [32]byte
	if offset < 0 || offset+32 > len(data) {
		return out, ErrUnexpectedEOF
	}
	copy(out[:], data[offset:offset+32])
	return out, nil
}
