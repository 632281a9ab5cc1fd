// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

package gen

import (
	"runtime/debug"
)

// Version is the acctdec library version embedded in generated file headers.
// It is resolved from build information at init time and stays "unknown"
// during in-tree development.
var Version = "unknown"

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range info.Deps {
			if dep.Path == "github.com/solweave/acctdec" {
				Version = dep.Version
				break
			}
		}
	}
}
