// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

package acctdec

import (
	"go.uber.org/zap"
)

// Option is a functional option for Dispatcher construction.
type Option func(*dispatcherOptions)

type dispatcherOptions struct {
	logger *zap.Logger
}

// WithLogger attaches a logger to the Dispatcher. Probe-level events (each
// candidate rejection and the final match) are logged at Debug level. Without
// this option the Dispatcher does not log.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *dispatcherOptions) {
		opts.logger = logger
	}
}

func applyOptions(opts []Option) *dispatcherOptions {
	options := &dispatcherOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
