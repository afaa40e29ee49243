// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package openapi

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/specforge/specforge/pkg/types"
)

// json is a drop-in replacement for encoding/json used for document
// encoding and decoding throughout the package.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Writer handles writing API descriptions to various outputs.
type Writer struct {
	// Indent specifies the indentation for JSON output (default: 2 spaces)
	Indent int
}

// NewWriter creates a new Writer with default settings.
func NewWriter() *Writer {
	return &Writer{
		Indent: 2,
	}
}

// WriteYAML writes a document as YAML to the given writer.
func (w *Writer) WriteYAML(doc *types.OpenAPI, out io.Writer) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}

// WriteJSON writes a document as JSON to the given writer. The document
// types render through their own marshalers, whose output the encoder
// passes through verbatim, so indentation is applied to the rendered bytes.
func (w *Writer) WriteJSON(doc *types.OpenAPI, out io.Writer) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	var buf bytes.Buffer
	if err := stdjson.Indent(&buf, data, "", strings.Repeat(" ", w.Indent)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	buf.WriteByte('\n')

	if _, err := buf.WriteTo(out); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}

	return nil
}

// Write writes a document to the given writer in the named format
// ("yaml" or "json").
func (w *Writer) Write(doc *types.OpenAPI, out io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "yaml", "yml", "":
		return w.WriteYAML(doc, out)
	case "json":
		return w.WriteJSON(doc, out)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// WriteFile writes a document to a file.
// The format is determined by the format parameter ("yaml" or "json").
// If format is empty, it is inferred from the file extension.
func (w *Writer) WriteFile(doc *types.OpenAPI, path string, format string) error {
	if format == "" {
		ext := strings.ToLower(filepath.Ext(path))
		switch ext {
		case ".yaml", ".yml":
			format = "yaml"
		case ".json":
			format = "json"
		default:
			format = "yaml"
		}
	}

	switch strings.ToLower(format) {
	case "yaml", "yml", "json":
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return w.Write(doc, file, format)
}

// ToYAML returns the YAML representation of a document as a string.
func (w *Writer) ToYAML(doc *types.OpenAPI) (string, error) {
	var buf strings.Builder
	if err := w.WriteYAML(doc, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ToJSON returns the JSON representation of a document as a string.
func (w *Writer) ToJSON(doc *types.OpenAPI) (string, error) {
	var buf strings.Builder
	if err := w.WriteJSON(doc, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
