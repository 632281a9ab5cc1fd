// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

// Package gen generates schema-candidate source code from anchor IDL files.
// It understands both the current IDL format (accounts carry explicit
// discriminators, layouts live in the types section) and the legacy format
// (accounts carry inline layouts, discriminators are derived from the
// account name). The generated code registers one schema candidate per IDL
// account, in IDL declaration order.
package gen

import (
	"encoding/json"
	"fmt"

	"github.com/solweave/acctdec/decutils"
)

// IDL is the normalized program interface description the generator works
// from, independent of which on-disk IDL format it was read from.
type IDL struct {
	// Name is the program name in its original (usually snake_case) form.
	Name string

	// Address is the program id, when the IDL declares one.
	Address string

	// Accounts are the program's account layouts in declaration order.
	// Declaration order is preserved because it becomes the candidate
	// priority order of the generated registration code.
	Accounts []Account

	// Types are auxiliary struct definitions referenced by account fields.
	Types []TypeDef
}

// Account is one account layout: name, discriminator and fields.
type Account struct {
	Name          string
	Discriminator [decutils.DiscriminatorLength]byte
	Fields        []Field
}

// TypeDef is a non-account struct definition.
type TypeDef struct {
	Name   string
	Fields []Field
}

// Field is a named, typed struct member.
type Field struct {
	Name string
	Type FieldType
}

// FieldType is one IDL field type. Exactly one of the members is set.
type FieldType struct {
	Primitive string     // "u8", "u64", "pubkey", "bool", "string", ...
	Array     *ArrayType // fixed-length array
	Vec       *FieldType // variable-length vector
	Option    *FieldType // optional value
	Defined   string     // reference to a TypeDef
}

// ArrayType is a fixed-length array element type and length.
type ArrayType struct {
	Elem FieldType
	Len  int
}

// UnmarshalJSON parses the polymorphic IDL type encoding: a bare string for
// primitives, or a single-key object for array/vec/option/defined types.
func (ft *FieldType) UnmarshalJSON(data []byte) error {
	var primitive string
	if err := json.Unmarshal(data, &primitive); err == nil {
		ft.Primitive = primitive
		return nil
	}

	var composite struct {
		Array  []json.RawMessage `json:"array"`
		Vec    *FieldType        `json:"vec"`
		Option *FieldType        `json:"option"`
		Defined json.RawMessage  `json:"defined"`
	}
	if err := json.Unmarshal(data, &composite); err != nil {
		return fmt.Errorf("unsupported IDL type encoding %s: %w", data, err)
	}

	switch {
	case composite.Array != nil:
		if len(composite.Array) != 2 {
			return fmt.Errorf("IDL array type needs [elem, len], got %d entries", len(composite.Array))
		}
		var elem FieldType
		if err := json.Unmarshal(composite.Array[0], &elem); err != nil {
			return err
		}
		var length int
		if err := json.Unmarshal(composite.Array[1], &length); err != nil {
			return fmt.Errorf("IDL array length: %w", err)
		}
		ft.Array = &ArrayType{Elem: elem, Len: length}
	case composite.Vec != nil:
		ft.Vec = composite.Vec
	case composite.Option != nil:
		ft.Option = composite.Option
	case composite.Defined != nil:
		name, err := parseDefinedName(composite.Defined)
		if err != nil {
			return err
		}
		ft.Defined = name
	default:
		return fmt.Errorf("unsupported IDL type encoding %s", data)
	}
	return nil
}

// parseDefinedName handles both defined-type encodings: a bare string
// (legacy) and an object with a name member (current).
func parseDefinedName(raw json.RawMessage) (string, error) {
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return name, nil
	}

	var wrapper struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil || wrapper.Name == "" {
		return "", fmt.Errorf("unsupported defined-type encoding %s", raw)
	}
	return wrapper.Name, nil
}

// ---- on-disk formats ----

type rawIDL struct {
	Address  string       `json:"address"`
	Name     string       `json:"name"`
	Metadata *rawMetadata `json:"metadata"`
	Accounts []rawAccount `json:"accounts"`
	Types    []rawTypeDef `json:"types"`
}

type rawMetadata struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Spec    string `json:"spec"`
}

type rawAccount struct {
	Name          string       `json:"name"`
	Discriminator []int        `json:"discriminator"`
	Type          *rawTypeKind `json:"type"`
}

type rawTypeDef struct {
	Name string      `json:"name"`
	Type rawTypeKind `json:"type"`
}

type rawTypeKind struct {
	Kind   string     `json:"kind"`
	Fields []rawField `json:"fields"`
}

type rawField struct {
	Name string    `json:"name"`
	Type FieldType `json:"type"`
}

// ReadIDL parses an IDL document, trying the current format first and
// falling back to the legacy format.
func ReadIDL(data []byte) (*IDL, error) {
	var raw rawIDL
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse IDL: %w", err)
	}

	if raw.Metadata != nil && raw.Metadata.Name != "" {
		return normalizeIDL(&raw, raw.Metadata.Name, false)
	}
	if raw.Name != "" {
		return normalizeIDL(&raw, raw.Name, true)
	}
	return nil, fmt.Errorf("IDL declares no program name in either format")
}

func normalizeIDL(raw *rawIDL, programName string, legacy bool) (*IDL, error) {
	idl := &IDL{
		Name:    programName,
		Address: raw.Address,
	}

	layouts := map[string][]Field{}
	for _, typeDef := range raw.Types {
		if typeDef.Type.Kind != "struct" {
			continue
		}
		layouts[typeDef.Name] = normalizeFields(typeDef.Type.Fields)
	}

	accountNames := map[string]bool{}
	for _, account := range raw.Accounts {
		accountNames[account.Name] = true

		normalized := Account{Name: account.Name}

		switch {
		case legacy && account.Type != nil:
			normalized.Fields = normalizeFields(account.Type.Fields)
		default:
			fields, ok := layouts[account.Name]
			if !ok {
				return nil, fmt.Errorf("account %q has no layout in the IDL types section", account.Name)
			}
			normalized.Fields = fields
		}

		if len(account.Discriminator) == decutils.DiscriminatorLength {
			for i, b := range account.Discriminator {
				if b < 0 || b > 255 {
					return nil, fmt.Errorf("account %q discriminator byte %d out of range", account.Name, b)
				}
				normalized.Discriminator[i] = byte(b)
			}
		} else {
			normalized.Discriminator = decutils.AnchorDiscriminator(account.Name)
		}

		idl.Accounts = append(idl.Accounts, normalized)
	}

	// Account layouts living in the types section must not be emitted twice.
	for _, typeDef := range raw.Types {
		if typeDef.Type.Kind != "struct" || accountNames[typeDef.Name] {
			continue
		}
		idl.Types = append(idl.Types, TypeDef{
			Name:   typeDef.Name,
			Fields: normalizeFields(typeDef.Type.Fields),
		})
	}

	return idl, nil
}

func normalizeFields(fields []rawField) []Field {
	out := make([]Field, len(fields))
	for i, field := range fields {
		out[i] = Field{Name: field.Name, Type: field.Type}
	}
	return out
}
