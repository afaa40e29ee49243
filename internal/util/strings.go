// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

// Package util provides string helpers for deriving configuration values
// from file and directory names.
package util

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase converts an identifier-style name into a spaced title.
// For example: "widget-service" returns "Widget Service".
func TitleCase(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	return cases.Title(language.English).String(strings.Join(words, " "))
}

// Slugify converts a name into a lowercase hyphenated slug suitable for
// scheme and scope identifiers. For example: "Widget Service" returns
// "widget-service".
func Slugify(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
		default:
			pending = true
		}
	}
	return b.String()
}

// splitWords splits a name on the separators that show up in file and
// directory names.
func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == '.'
	})
}
