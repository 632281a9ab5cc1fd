// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

package decutils

import (
	"errors"
	"testing"
)

func TestReadUint64(t *testing.T) {
	data := []byte{0x9c, 0x4f, 0x75, 0x72, 0xc5, 0x00, 0x00, 0x00, 0xff}

	got, err := ReadUint64(data, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 848028848028 {
		t.Errorf("ReadUint64 = %d", got)
	}

	if _, err := ReadUint64(data, 2); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF past the end, got %v", err)
	}
	if _, err := ReadUint64(data, -1); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF for negative offset, got %v", err)
	}
}

func TestReadSmallInts(t *testing.T) {
	data := []byte{0x39, 0x05, 0xe7, 0xc9, 0xb9, 0x30, 0x2a}

	if got, err := ReadUint16(data, 0); err != nil || got != 1337 {
		t.Errorf("ReadUint16 = %d, %v", got, err)
	}
	if got, err := ReadUint32(data, 2); err != nil || got != 817482215 {
		t.Errorf("ReadUint32 = %d, %v", got, err)
	}
	if got, err := ReadUint8(data, 6); err != nil || got != 42 {
		t.Errorf("ReadUint8 = %d, %v", got, err)
	}

	if _, err := ReadUint16(data, 6); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
	if _, err := ReadUint32(data, 4); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
	if _, err := ReadUint8(data, 7); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestReadBytes32(t *testing.T) {
	data := make([]byte, 40)
	for i := range data {
		data[i] = byte(i)
	}

	got, err := ReadBytes32(data, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 32; i++ {
		if got[i] != byte(i+4) {
			t.Fatalf("byte %d = %d", i, got[i])
		}
	}

	if _, err := ReadBytes32(data, 9); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
}
