// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"openapi.yaml", "yaml"},
		{"openapi.yml", "yaml"},
		{"openapi.json", "json"},
		{"OPENAPI.YAML", "yaml"},
		{"/abs/path/spec.json", "json"},
		{"readme.md", ""},
		{"noextension", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectFormat(tt.path))
		})
	}
}

func TestSupportedExtensions(t *testing.T) {
	exts := SupportedExtensions()
	assert.Equal(t, []string{".json", ".yaml", ".yml"}, exts)
}

func TestIsDocumentFile(t *testing.T) {
	assert.True(t, IsDocumentFile("spec.yaml"))
	assert.True(t, IsDocumentFile("spec.yml"))
	assert.True(t, IsDocumentFile("spec.json"))
	assert.False(t, IsDocumentFile("spec.go"))
	assert.False(t, IsDocumentFile("spec"))
}

func TestIsDescription(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected bool
	}{
		{
			name:     "yaml description",
			content:  "openapi: 3.0.3\ninfo:\n  title: T\n  version: 1\npaths: {}\n",
			expected: true,
		},
		{
			name:     "json description",
			content:  `{"openapi":"3.0.3","info":{"title":"T","version":"1"},"paths":{}}`,
			expected: true,
		},
		{
			name:     "config file",
			content:  "input: openapi.yaml\nformat: yaml\n",
			expected: false,
		},
		{
			name:     "package manifest",
			content:  `{"name":"widgets","version":"1.0.0"}`,
			expected: false,
		},
		{
			name:     "not yaml at all",
			content:  "\tmain() {\n",
			expected: false,
		},
		{
			name:     "empty",
			content:  "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDescription([]byte(tt.content)))
		})
	}
}
