// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"single word", "widgets", "Widgets"},
		{"hyphenated", "widget-service", "Widget Service"},
		{"underscored", "widget_service", "Widget Service"},
		{"dotted", "widget.service", "Widget Service"},
		{"already spaced", "widget service", "Widget Service"},
		{"mixed case", "widgetService", "Widgetservice"},
		{"all caps", "API", "Api"},
		{"separators only", "---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TitleCase(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"single word", "widgets", "widgets"},
		{"spaced title", "Widget Service", "widget-service"},
		{"already slug", "widget-service", "widget-service"},
		{"underscores", "widget_service", "widget-service"},
		{"leading separators", "  widgets", "widgets"},
		{"trailing separators", "widgets!!", "widgets"},
		{"digits", "widgets v2", "widgets-v2"},
		{"consecutive separators", "widget -- service", "widget-service"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Slugify(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
