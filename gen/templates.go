// Copyright (c) 2025 solweave
// SPDX-License-Identifier: Apache-2.0
// This file is part of the acctdec library.

package gen

import (
	"embed"
	"sync"
	"text/template"
)

//go:embed tmpl/*.tmpl
var templateFiles embed.FS

var (
	templatesOnce sync.Once
	templates     *template.Template
)

func getTemplates() *template.Template {
	templatesOnce.Do(func() {
		templates = template.Must(template.ParseFS(templateFiles, "tmpl/*.tmpl"))
	})
	return templates
}
