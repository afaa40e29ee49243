// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package filters

import (
	"github.com/specforge/specforge/internal/pipeline"
)

// InfoOverride stamps the configured title and version onto the document's
// info block. The version also keys generated documents, so every run ends
// with the configured value regardless of what the input declared.
type InfoOverride struct {
	title   string
	version string
}

// NewInfoOverride creates a filter setting the document title and version.
func NewInfoOverride(title, version string) *InfoOverride {
	return &InfoOverride{title: title, version: version}
}

// Name returns the filter identifier.
func (f *InfoOverride) Name() string {
	return "info-override"
}

// ApplyDocument overwrites the document's title and version.
func (f *InfoOverride) ApplyDocument(ctx *pipeline.DocumentContext) error {
	ctx.Document.Info.Title = f.title
	ctx.Document.Info.Version = f.version
	return nil
}
