// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

// Package openapi provides reading, writing, validating, and comparing of
// API description documents.
package openapi

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/specforge/specforge/pkg/types"
)

// Parse parses an API description from raw bytes and lifts vendor
// annotations into source metadata. Format may be "yaml", "json", or empty;
// an empty format tries YAML first, then JSON.
func Parse(data []byte, format string) (*types.OpenAPI, error) {
	var doc types.OpenAPI

	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case "":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			if err := json.Unmarshal(data, &doc); err != nil {
				return nil, fmt.Errorf("failed to parse document as YAML or JSON")
			}
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	types.LiftAnnotations(&doc)
	return &doc, nil
}

// Read reads an API description from a reader.
func Read(r io.Reader, format string) (*types.OpenAPI, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return Parse(data, format)
}

// ReadFile reads an API description from a file.
// The format is inferred from the file extension.
func ReadFile(path string) (*types.OpenAPI, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = "yaml"
	case ".json":
		format = "json"
	}

	return Parse(data, format)
}
