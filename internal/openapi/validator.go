// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package openapi

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/specforge/specforge/pkg/types"
)

// openapi3Schema is the structural subset of the OpenAPI 3.x object model
// that documents are validated against by default.
//
//go:embed schema.json
var openapi3Schema []byte

// Validator checks API descriptions against a JSON Schema rendering of the
// OpenAPI object model.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator creates a validator using the embedded document schema.
func NewValidator() (*Validator, error) {
	return NewValidatorFromSchema(openapi3Schema)
}

// NewValidatorFromSchema creates a validator from raw JSON Schema bytes.
func NewValidatorFromSchema(schemaJSON []byte) (*Validator, error) {
	raw, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("document.schema.json", raw); err != nil {
		return nil, fmt.Errorf("failed to register schema: %w", err)
	}

	schema, err := compiler.Compile("document.schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &Validator{schema: schema}, nil
}

// NewValidatorFromFile creates a validator from a JSON Schema file,
// overriding the embedded schema.
func NewValidatorFromFile(path string) (*Validator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return NewValidatorFromSchema(data)
}

// Validate checks a document against the schema. The document is rendered
// to JSON first, so what gets validated is exactly what would be written.
func (v *Validator) Validate(doc *types.OpenAPI) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return v.ValidateBytes(data)
}

// ValidateBytes checks a raw JSON document against the schema.
func (v *Validator) ValidateBytes(data []byte) error {
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}

	if err := v.schema.Validate(instance); err != nil {
		return fmt.Errorf("document validation failed: %w", err)
	}

	return nil
}

// validLocations are the parameter locations the object model allows.
var validLocations = map[string]bool{
	types.InQuery:  true,
	types.InHeader: true,
	types.InPath:   true,
	types.InCookie: true,
}

// CheckStructure runs the structural checks that the document schema cannot
// express, plus the basics, so a permissive --schema override still has a
// floor: version and info present, at least one path, paths start with "/",
// parameter locations valid, operation IDs unique. Returns one message per
// problem, in document order.
func CheckStructure(doc *types.OpenAPI) []string {
	if doc == nil {
		return []string{"document is empty"}
	}

	var problems []string
	if doc.OpenAPI == "" {
		problems = append(problems, "missing openapi version")
	}
	if doc.Info.Title == "" {
		problems = append(problems, "missing info.title")
	}
	if doc.Info.Version == "" {
		problems = append(problems, "missing info.version")
	}
	if len(doc.Paths) == 0 {
		problems = append(problems, "document has no paths")
	}

	for _, path := range doc.SortedPaths() {
		if !strings.HasPrefix(path, "/") {
			problems = append(problems, fmt.Sprintf("path %q must start with \"/\"", path))
		}
	}

	firstID := make(map[string]string)
	_ = doc.EachOperation(func(path, method string, op *types.Operation) error {
		where := fmt.Sprintf("%s %s", method, path)

		for i := range op.Parameters {
			p := &op.Parameters[i]
			if !validLocations[p.In] {
				problems = append(problems, fmt.Sprintf("%s: parameter %q has invalid location %q", where, p.Name, p.In))
			}
		}

		if op.OperationID != "" {
			if prev, seen := firstID[op.OperationID]; seen {
				problems = append(problems, fmt.Sprintf("duplicate operationId %q on %s and %s", op.OperationID, prev, where))
			} else {
				firstID[op.OperationID] = where
			}
		}
		return nil
	})

	return problems
}

// CheckRefs returns the local schema references in doc that do not resolve
// to a component schema, sorted and de-duplicated. An empty result means
// every reference resolves.
func CheckRefs(doc *types.OpenAPI) []string {
	if doc == nil {
		return nil
	}

	known := make(map[string]bool)
	if doc.Components != nil {
		for name := range doc.Components.Schemas {
			known["#/components/schemas/"+name] = true
		}
	}

	dangling := make(map[string]bool)
	check := func(s *types.Schema) error {
		return s.Walk(func(node *types.Schema) error {
			if node.Ref == "" || !strings.HasPrefix(node.Ref, "#/components/schemas/") {
				return nil
			}
			if !known[node.Ref] {
				dangling[node.Ref] = true
			}
			return nil
		})
	}

	if doc.Components != nil {
		for _, name := range doc.SortedSchemaNames() {
			_ = check(doc.Components.Schemas[name])
		}
	}

	_ = doc.EachOperation(func(path, method string, op *types.Operation) error {
		for i := range op.Parameters {
			if op.Parameters[i].Schema != nil {
				_ = check(op.Parameters[i].Schema)
			}
		}
		if op.RequestBody != nil {
			for _, mt := range op.RequestBody.Content {
				if mt.Schema != nil {
					_ = check(mt.Schema)
				}
			}
		}
		for _, resp := range op.Responses {
			for _, mt := range resp.Content {
				if mt.Schema != nil {
					_ = check(mt.Schema)
				}
			}
		}
		return nil
	})

	if len(dangling) == 0 {
		return nil
	}
	refs := make([]string, 0, len(dangling))
	for ref := range dangling {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}
