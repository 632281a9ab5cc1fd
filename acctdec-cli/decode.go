// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

package main

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/solweave/acctdec"

	// Registered schema candidates available to pipeline configs.
	_ "github.com/solweave/acctdec/programs/raydiumclmm"
	_ "github.com/solweave/acctdec/programs/token"
)

func newDecodeCommand() *cobra.Command {
	var (
		configPath string
		dataPath   string
		encoding   string
		owner      string
		lamports   uint64
		executable bool
		rentEpoch  uint64
	)

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode one raw account buffer through a pipeline config",
		Long: "Decode builds a dispatcher from the pipeline config and probes the given\n" +
			"account data against it. The first matching schema is printed as JSON.\n" +
			"An account matching no configured schema produces no output and a zero\n" +
			"exit status: unknown layouts are an expected outcome, not a failure.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			cfg, err := acctdec.LoadConfig(configPath)
			if err != nil {
				return err
			}
			dispatcher, err := acctdec.NewDispatcherFromConfig(cfg, acctdec.WithLogger(logger))
			if err != nil {
				return err
			}

			record := acctdec.AccountRecord{
				Lamports:   lamports,
				Executable: executable,
				RentEpoch:  rentEpoch,
			}
			if owner != "" {
				key, err := solana.PublicKeyFromBase58(owner)
				if err != nil {
					return fmt.Errorf("invalid owner %q: %w", owner, err)
				}
				record.Owner = key
			}

			record.Data, err = readAccountData(dataPath, encoding)
			if err != nil {
				return err
			}

			account, ok := dispatcher.Decode(record)
			if !ok {
				logger.Debug("account matches no configured schema",
					zap.Int("dataLen", len(record.Data)))
				return nil
			}

			out, err := json.MarshalIndent(account, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to the pipeline config (YAML)")
	cmd.Flags().StringVar(&dataPath, "data", "", "path to the raw account data file")
	cmd.Flags().StringVar(&encoding, "encoding", "raw", "account data encoding: raw, hex or base64")
	cmd.Flags().StringVar(&owner, "owner", "", "owning program id (base58)")
	cmd.Flags().Uint64Var(&lamports, "lamports", 0, "account balance in lamports")
	cmd.Flags().BoolVar(&executable, "executable", false, "account executability flag")
	cmd.Flags().Uint64Var(&rentEpoch, "rent-epoch", 0, "account rent epoch")
	cmd.MarkFlagRequired("config")
	cmd.MarkFlagRequired("data")

	return cmd
}

func readAccountData(path, encoding string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read account data %q: %w", path, err)
	}

	switch encoding {
	case "raw":
		return raw, nil
	case "hex":
		text := strings.TrimSpace(string(raw))
		return hex.DecodeString(strings.TrimPrefix(text, "0x"))
	case "base64":
		return base64.StdEncoding.DecodeString(strings.TrimSpace(string(raw)))
	default:
		return nil, fmt.Errorf("unsupported encoding %q (want raw, hex or base64)", encoding)
	}
}
