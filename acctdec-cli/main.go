// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

// Command acctdec-cli wraps the acctdec library: "generate" turns an anchor
// IDL into schema-candidate source code, "decode" runs a pipeline config
// against a single raw account buffer.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:           "acctdec-cli",
		Short:         "Multi-schema Solana account decoder toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newDecodeCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
