// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

package acctdec

import (
	"fmt"
	"sort"
	"sync"
)

// The registry maps stable tags to schema candidates so that pipeline configs
// can reference schemas by name. Program packages register their candidates
// from init(); importing a program package (usually for side effects) makes
// its schemas available to NewDispatcherFromConfig.

// ErrTagNotRegistered is returned when a pipeline config references a tag
// that no imported program package has registered.
var ErrTagNotRegistered = fmt.Errorf("schema tag not registered")

var (
	registryMux sync.RWMutex
	registry    = map[Tag]SchemaCandidate{}
)

// Register adds a schema candidate to the global registry under its tag.
// It panics when the tag is already registered: duplicate tags are a wiring
// bug that must surface at startup, not at decode time.
func Register(candidate SchemaCandidate) {
	registryMux.Lock()
	defer registryMux.Unlock()

	tag := candidate.Tag()
	if _, exists := registry[tag]; exists {
		panic(fmt.Sprintf("schema candidate with tag %q already registered", tag))
	}
	registry[tag] = candidate
}

// Lookup returns the registered candidate for the given tag.
func Lookup(tag Tag) (SchemaCandidate, bool) {
	registryMux.RLock()
	defer registryMux.RUnlock()

	candidate, ok := registry[tag]
	return candidate, ok
}

// RegisteredTags returns all registered tags in lexical order. Note that
// registration order carries no priority: priority comes exclusively from the
// candidate list a Dispatcher is constructed with.
func RegisteredTags() []Tag {
	registryMux.RLock()
	defer registryMux.RUnlock()

	tags := make([]Tag, 0, len(registry))
	for tag := range registry {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}
