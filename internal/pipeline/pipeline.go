// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package pipeline

import (
	"fmt"
	"sort"

	"github.com/specforge/specforge/pkg/types"
)

// Pipeline applies a registry's filters to documents. Build one with New;
// the zero value is unusable and reports ErrNotConfigured.
type Pipeline struct {
	registry *Registry
}

// New creates a Pipeline backed by the given registry.
func New(registry *Registry) *Pipeline {
	return &Pipeline{registry: registry}
}

// Report summarizes one pipeline run.
type Report struct {
	// DocumentFilters is the number of document-filter invocations.
	DocumentFilters int

	// Operations is the number of operations visited.
	Operations int

	// Schemas is the number of distinct schemas visited.
	Schemas int
}

// Run applies every registered filter to the document in place.
//
// Document filters run first, once each, in registration order. Operation
// filters run next, per operation, paths sorted and methods in canonical
// order. Schema filters run last over every schema reachable from the
// document: component schemas sorted by name, then operation schemas in
// traversal order; each distinct schema object is visited once.
//
// The first filter error aborts the run and is returned wrapped with the
// filter's name and position; the document may be partially transformed
// and must be discarded by the caller.
func (p *Pipeline) Run(doc *types.OpenAPI) (*Report, error) {
	if p == nil || p.registry == nil {
		return nil, ErrNotConfigured
	}
	if doc == nil {
		return nil, ErrNilDocument
	}

	report := &Report{}

	docCtx := &DocumentContext{Document: doc}
	for _, filter := range p.registry.Documents() {
		if err := filter.ApplyDocument(docCtx); err != nil {
			return nil, fmt.Errorf("%w: document filter %q: %w", ErrFilter, filter.Name(), err)
		}
		report.DocumentFilters++
	}

	operationFilters := p.registry.Operations()
	err := doc.EachOperation(func(path, method string, op *types.Operation) error {
		ctx := NewOperationContext(doc, path, method, op)
		for _, filter := range operationFilters {
			if err := filter.ApplyOperation(ctx); err != nil {
				return fmt.Errorf("%w: operation filter %q on %s %s: %w", ErrFilter, filter.Name(), method, path, err)
			}
		}
		report.Operations++
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := p.runSchemaFilters(doc, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (p *Pipeline) runSchemaFilters(doc *types.OpenAPI, report *Report) error {
	filters := p.registry.Schemas()
	if len(filters) == 0 {
		return nil
	}

	seen := make(map[*types.Schema]bool)
	apply := func(location, name string, root *types.Schema) error {
		if root == nil {
			return nil
		}
		return root.Walk(func(node *types.Schema) error {
			if seen[node] {
				return nil
			}
			seen[node] = true

			ctx := &SchemaContext{
				Document: doc,
				Location: location,
				Schema:   node,
			}
			if node == root {
				ctx.Name = name
			}
			for _, filter := range filters {
				if err := filter.ApplySchema(ctx); err != nil {
					return fmt.Errorf("%w: schema filter %q at %s: %w", ErrFilter, filter.Name(), location, err)
				}
			}
			report.Schemas++
			return nil
		})
	}

	for _, name := range doc.SortedSchemaNames() {
		if err := apply("components.schemas."+name, name, doc.Components.Schemas[name]); err != nil {
			return err
		}
	}

	return doc.EachOperation(func(path, method string, op *types.Operation) error {
		prefix := method + " " + path
		for i := range op.Parameters {
			param := &op.Parameters[i]
			if err := apply(prefix+" parameter "+param.Name, "", param.Schema); err != nil {
				return err
			}
		}
		if op.RequestBody != nil {
			for _, mediaType := range sortedKeys(op.RequestBody.Content) {
				mt := op.RequestBody.Content[mediaType]
				if err := apply(prefix+" requestBody", "", mt.Schema); err != nil {
					return err
				}
			}
		}
		for _, code := range sortedResponseCodes(op.Responses) {
			resp := op.Responses[code]
			for _, mediaType := range sortedKeys(resp.Content) {
				mt := resp.Content[mediaType]
				if err := apply(prefix+" response "+code, "", mt.Schema); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func sortedKeys(content map[string]types.MediaType) []string {
	keys := make([]string, 0, len(content))
	for key := range content {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedResponseCodes(responses map[string]types.Response) []string {
	codes := make([]string, 0, len(responses))
	for code := range responses {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
