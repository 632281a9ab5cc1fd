// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

package gen

import (
	"strings"
	"unicode"
)

// splitWords breaks an identifier in snake_case, kebab-case or camelCase
// into its lowercase word parts.
func splitWords(name string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r) && i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return words
}

// toUpperCamel converts an identifier to UpperCamelCase.
func toUpperCamel(name string) string {
	var out strings.Builder
	for _, word := range splitWords(name) {
		out.WriteString(strings.ToUpper(word[:1]))
		out.WriteString(word[1:])
	}
	return out.String()
}

// toSnake converts an identifier to snake_case.
func toSnake(name string) string {
	return strings.Join(splitWords(name), "_")
}

// toKebab converts an identifier to kebab-case.
func toKebab(name string) string {
	return strings.Join(splitWords(name), "-")
}
