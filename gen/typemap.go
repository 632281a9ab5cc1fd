// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

package gen

import (
	"fmt"
)

var primitiveTypes = map[string]string{
	"bool":      "bool",
	"u8":        "uint8",
	"u16":       "uint16",
	"u32":       "uint32",
	"u64":       "uint64",
	"u128":      "bin.Uint128",
	"i8":        "int8",
	"i16":       "int16",
	"i32":       "int32",
	"i64":       "int64",
	"i128":      "bin.Int128",
	"f32":       "float32",
	"f64":       "float64",
	"string":    "string",
	"bytes":     "[]byte",
	"pubkey":    "solana.PublicKey",
	"publicKey": "solana.PublicKey",
}

// goType renders an IDL field type as Go source. Defined types map to the
// UpperCamelCase struct name generated for them in the same package.
func goType(ft FieldType) (string, error) {
	switch {
	case ft.Primitive != "":
		mapped, ok := primitiveTypes[ft.Primitive]
		if !ok {
			return "", fmt.Errorf("unsupported IDL primitive type %q", ft.Primitive)
		}
		return mapped, nil
	case ft.Array != nil:
		elem, err := goType(ft.Array.Elem)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[%d]%s", ft.Array.Len, elem), nil
	case ft.Vec != nil:
		elem, err := goType(*ft.Vec)
		if err != nil {
			return "", err
		}
		return "[]" + elem, nil
	case ft.Option != nil:
		elem, err := goType(*ft.Option)
		if err != nil {
			return "", err
		}
		return "*" + elem, nil
	case ft.Defined != "":
		return toUpperCamel(ft.Defined), nil
	default:
		return "", fmt.Errorf("empty IDL field type")
	}
}
