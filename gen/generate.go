// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

package gen

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"
)

// Options controls code generation output.
type Options struct {
	// PackageName for the generated files. Defaults to the IDL program name
	// with separators stripped (e.g. "raydium_clmm" -> "raydiumclmm").
	PackageName string

	// OutputDir is where WriteFiles places the generated files.
	OutputDir string
}

// GeneratedFile is one rendered, formatted output file.
type GeneratedFile struct {
	Name    string
	Content []byte
}

// Generator renders schema-candidate source code for one IDL.
type Generator struct {
	idl     *IDL
	options Options
}

// NewGenerator creates a generator for the given normalized IDL.
func NewGenerator(idl *IDL, options Options) *Generator {
	if options.PackageName == "" {
		options.PackageName = strings.ReplaceAll(toSnake(idl.Name), "_", "")
	}
	return &Generator{idl: idl, options: options}
}

type headerData struct {
	Version     string
	ProgramName string
	PackageName string
}

type fieldData struct {
	Name string
	Type string
}

type accountData struct {
	headerData
	StructName       string
	Tag              string
	DiscriminatorHex string
	Fields           []fieldData
}

type candidatesData struct {
	headerData
	Address  string
	Accounts []accountData
}

type typesData struct {
	headerData
	Types []struct {
		StructName string
		Fields     []fieldData
	}
}

// Generate renders all output files in memory: one file per IDL account, a
// candidates file registering every account's schema in IDL declaration
// order, and a types file when the IDL defines auxiliary structs. Every file
// is run through goimports-style processing, which also prunes template
// imports a particular file does not need.
func (g *Generator) Generate() ([]*GeneratedFile, error) {
	header := headerData{
		Version:     Version,
		ProgramName: g.idl.Name,
		PackageName: g.options.PackageName,
	}
	programKebab := toKebab(g.idl.Name)

	var files []*GeneratedFile
	var accounts []accountData

	for _, account := range g.idl.Accounts {
		fields, err := renderFields(account.Fields)
		if err != nil {
			return nil, fmt.Errorf("account %q: %w", account.Name, err)
		}

		data := accountData{
			headerData:       header,
			StructName:       toUpperCamel(account.Name),
			Tag:              programKebab + "/" + toKebab(account.Name),
			DiscriminatorHex: "0x" + hex.EncodeToString(account.Discriminator[:]),
			Fields:           fields,
		}
		accounts = append(accounts, data)

		file, err := renderFile("account.go.tmpl", toSnake(account.Name)+".go", data)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	candidatesFile, err := renderFile("candidates.go.tmpl", "candidates.go", candidatesData{
		headerData: header,
		Address:    g.idl.Address,
		Accounts:   accounts,
	})
	if err != nil {
		return nil, err
	}
	files = append(files, candidatesFile)

	if len(g.idl.Types) > 0 {
		data := typesData{headerData: header}
		for _, typeDef := range g.idl.Types {
			fields, err := renderFields(typeDef.Fields)
			if err != nil {
				return nil, fmt.Errorf("type %q: %w", typeDef.Name, err)
			}
			data.Types = append(data.Types, struct {
				StructName string
				Fields     []fieldData
			}{toUpperCamel(typeDef.Name), fields})
		}

		typesFile, err := renderFile("types.go.tmpl", "types.go", data)
		if err != nil {
			return nil, err
		}
		files = append(files, typesFile)
	}

	return files, nil
}

// WriteFiles renders everything and writes it into the output directory.
func (g *Generator) WriteFiles() ([]string, error) {
	files, err := g.Generate()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(g.options.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	written := make([]string, 0, len(files))
	for _, file := range files {
		path := filepath.Join(g.options.OutputDir, file.Name)
		if err := os.WriteFile(path, file.Content, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func renderFields(fields []Field) ([]fieldData, error) {
	out := make([]fieldData, len(fields))
	for i, field := range fields {
		goTypeName, err := goType(field.Type)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field.Name, err)
		}
		out[i] = fieldData{Name: toUpperCamel(field.Name), Type: goTypeName}
	}
	return out, nil
}

func renderFile(templateName, fileName string, data any) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := getTemplates().ExecuteTemplate(&buf, templateName, data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", fileName, err)
	}

	formatted, err := imports.Process(fileName, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("generated %s does not format: %w", fileName, err)
	}

	return &GeneratedFile{Name: fileName, Content: formatted}, nil
}
