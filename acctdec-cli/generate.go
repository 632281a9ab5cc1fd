// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/solweave/acctdec/gen"
)

func newGenerateCommand() *cobra.Command {
	var (
		idlPath     string
		outputDir   string
		packageName string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate schema-candidate source code from an anchor IDL",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			data, err := os.ReadFile(idlPath)
			if err != nil {
				return fmt.Errorf("failed to read IDL %q: %w", idlPath, err)
			}

			idl, err := gen.ReadIDL(data)
			if err != nil {
				return err
			}
			logger.Debug("parsed IDL",
				zap.String("program", idl.Name),
				zap.Int("accounts", len(idl.Accounts)),
				zap.Int("types", len(idl.Types)))

			generator := gen.NewGenerator(idl, gen.Options{
				PackageName: packageName,
				OutputDir:   outputDir,
			})
			written, err := generator.WriteFiles()
			if err != nil {
				return err
			}

			for _, path := range written {
				fmt.Println("Generated", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&idlPath, "idl", "", "path to the anchor IDL file")
	cmd.Flags().StringVar(&outputDir, "output", "", "output directory for generated files")
	cmd.Flags().StringVar(&packageName, "package", "", "package name for generated files (default: derived from the IDL program name)")
	cmd.MarkFlagRequired("idl")
	cmd.MarkFlagRequired("output")

	return cmd
}
