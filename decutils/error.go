// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

package decutils

import "fmt"

var (
	ErrNoMatch       = fmt.Errorf("account data does not match schema layout")
	ErrUnexpectedEOF = fmt.Errorf("unexpected end of account data")
	ErrLength        = fmt.Errorf("incorrect account data length")
	ErrDiscriminator = fmt.Errorf("discriminator mismatch")
	ErrTrailingBytes = fmt.Errorf("unconsumed trailing bytes")
)
