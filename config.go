// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

package acctdec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config declares a decode pipeline: which schema candidates to probe and in
// which order. Declaration order in the candidates list IS the priority
// order — it is not alphabetical and not type-derived.
//
// Example pipeline file:
//
//	candidates:
//	  - tag: token/account
//	    size: "len == 165"
//	  - tag: token/mint
//	  - tag: raydium-clmm/amm-config
type Config struct {
	Candidates []CandidateConfig `yaml:"candidates"`
}

// CandidateConfig selects one registered schema candidate by tag. The
// optional Size expression is a coarse buffer-length predicate (variable
// "len") evaluated before the candidate's parser runs; see WithSizeFilter.
type CandidateConfig struct {
	Tag  string `yaml:"tag"`
	Size string `yaml:"size,omitempty"`
}

// ParseConfig parses a pipeline config from YAML bytes.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse pipeline config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a pipeline config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pipeline config %q: %w", path, err)
	}
	return ParseConfig(data)
}

func (c *Config) validate() error {
	if len(c.Candidates) == 0 {
		return fmt.Errorf("pipeline config declares no candidates")
	}

	seen := map[string]bool{}
	for i, candidate := range c.Candidates {
		if candidate.Tag == "" {
			return fmt.Errorf("candidate %d has an empty tag", i)
		}
		if seen[candidate.Tag] {
			return fmt.Errorf("candidate tag %q declared twice", candidate.Tag)
		}
		seen[candidate.Tag] = true
	}
	return nil
}

// NewDispatcherFromConfig builds a Dispatcher from a pipeline config,
// resolving each declared tag against the global registry. The resulting
// candidate order matches the config's declaration order exactly.
//
// Unknown tags and invalid size expressions are construction-time errors;
// nothing is validated lazily during Decode.
func NewDispatcherFromConfig(cfg *Config, opts ...Option) (*Dispatcher, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	candidates := make([]SchemaCandidate, 0, len(cfg.Candidates))
	for _, entry := range cfg.Candidates {
		candidate, ok := Lookup(Tag(entry.Tag))
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrTagNotRegistered, entry.Tag)
		}

		if entry.Size != "" {
			gated, err := WithSizeFilter(candidate, entry.Size)
			if err != nil {
				return nil, err
			}
			candidate = gated
		}

		candidates = append(candidates, candidate)
	}

	return NewDispatcher(candidates, opts...), nil
}
