// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

// Package bridge converts transformed documents into other description
// dialects. Conversion goes through a serialize-then-reparse boundary: the
// document is rendered to JSON and loaded back with a dialect-aware parser,
// so the bridge sees exactly what a consumer of the written file would see
// and internal types never leak into the target model.
package bridge

import (
	"bytes"
	"context"
	stdjson "encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/specforge/specforge/pkg/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ToV3 renders a document to JSON and reparses it into the loader's OpenAPI
// 3 model, resolving internal references and validating the result.
func ToV3(ctx context.Context, doc *types.OpenAPI) (*openapi3.T, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx

	v3, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to reparse document: %w", err)
	}

	if err := v3.Validate(ctx); err != nil {
		return nil, fmt.Errorf("document failed validation: %w", err)
	}

	return v3, nil
}

// ToV2 converts a document to Swagger 2.0.
func ToV2(ctx context.Context, doc *types.OpenAPI) (*openapi2.T, error) {
	v3, err := ToV3(ctx, doc)
	if err != nil {
		return nil, err
	}

	v2, err := openapi2conv.FromV3(v3)
	if err != nil {
		return nil, fmt.Errorf("failed to convert to Swagger 2.0: %w", err)
	}

	return v2, nil
}

// V2JSON returns the indented Swagger 2.0 JSON rendering of a document.
// The converted model renders through its own marshaler, whose output the
// encoder passes through verbatim, so indentation is applied to the
// rendered bytes.
func V2JSON(ctx context.Context, doc *types.OpenAPI) ([]byte, error) {
	v2, err := ToV2(ctx, doc)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(v2)
	if err != nil {
		return nil, fmt.Errorf("failed to render Swagger 2.0 document: %w", err)
	}

	var buf bytes.Buffer
	if err := stdjson.Indent(&buf, data, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to render Swagger 2.0 document: %w", err)
	}

	return buf.Bytes(), nil
}

// V2YAML returns the Swagger 2.0 YAML rendering of a document. The converted
// model only knows how to marshal itself to JSON, so the output is produced
// by re-encoding that JSON as YAML.
func V2YAML(ctx context.Context, doc *types.OpenAPI) ([]byte, error) {
	v2, err := ToV2(ctx, doc)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(v2)
	if err != nil {
		return nil, fmt.Errorf("failed to render Swagger 2.0 document: %w", err)
	}

	var tree map[string]interface{}
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to re-read Swagger 2.0 document: %w", err)
	}

	out, err := yaml.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("failed to render Swagger 2.0 document: %w", err)
	}

	return out, nil
}
