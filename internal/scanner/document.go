// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

// Package scanner provides discovery of API description documents on disk.
package scanner

import (
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Document represents a discovered API description file.
type Document struct {
	// Path is the absolute path to the file
	Path string

	// Format is the serialization format ("yaml" or "json")
	Format string

	// Content is the file content
	Content []byte

	// ModTime is the last modification time
	ModTime time.Time
}

// formatExtensions maps file extensions to serialization formats.
var formatExtensions = map[string]string{
	".yaml": "yaml",
	".yml":  "yaml",
	".json": "json",
}

// DetectFormat detects the serialization format from a file path.
func DetectFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if format, ok := formatExtensions[ext]; ok {
		return format
	}
	return ""
}

// SupportedExtensions returns the file extensions considered document
// candidates.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(formatExtensions))
	for ext := range formatExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// IsDocumentFile checks if a file path has a supported extension.
func IsDocumentFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := formatExtensions[ext]
	return ok
}

// IsDescription reports whether content looks like an API description,
// keyed off the top-level "openapi" field. This keeps configuration files
// and other YAML/JSON out of scan results.
func IsDescription(content []byte) bool {
	var probe struct {
		OpenAPI string `yaml:"openapi"`
	}
	if err := yaml.Unmarshal(content, &probe); err != nil {
		return false
	}
	return probe.OpenAPI != ""
}
