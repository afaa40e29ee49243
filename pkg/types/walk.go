// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package types

import (
	"sort"
	"strings"
)

// Methods returns the HTTP methods a PathItem can carry, in canonical
// traversal order.
func Methods() []string {
	return []string{"GET", "PUT", "POST", "DELETE", "OPTIONS", "HEAD", "PATCH", "TRACE"}
}

// Operation returns the operation registered for the given HTTP method,
// or nil. The method name is case-insensitive.
func (p *PathItem) Operation(method string) *Operation {
	switch strings.ToUpper(method) {
	case "GET":
		return p.Get
	case "PUT":
		return p.Put
	case "POST":
		return p.Post
	case "DELETE":
		return p.Delete
	case "OPTIONS":
		return p.Options
	case "HEAD":
		return p.Head
	case "PATCH":
		return p.Patch
	case "TRACE":
		return p.Trace
	}
	return nil
}

// Operations returns the item's non-nil operations keyed by canonical
// (upper-case) HTTP method.
func (p *PathItem) Operations() map[string]*Operation {
	ops := make(map[string]*Operation)
	for _, method := range Methods() {
		if op := p.Operation(method); op != nil {
			ops[method] = op
		}
	}
	return ops
}

// SortedPaths returns the document's path strings in sorted order.
func (o *OpenAPI) SortedPaths() []string {
	paths := make([]string, 0, len(o.Paths))
	for path := range o.Paths {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// SortedSchemaNames returns the component schema names in sorted order.
func (o *OpenAPI) SortedSchemaNames() []string {
	if o.Components == nil {
		return nil
	}
	names := make([]string, 0, len(o.Components.Schemas))
	for name := range o.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EachOperation visits every operation in deterministic order: paths
// sorted, methods in canonical order. Traversal stops at the first error.
func (o *OpenAPI) EachOperation(fn func(path, method string, op *Operation) error) error {
	for _, path := range o.SortedPaths() {
		item := o.Paths[path]
		for _, method := range Methods() {
			op := item.Operation(method)
			if op == nil {
				continue
			}
			if err := fn(path, method, op); err != nil {
				return err
			}
		}
	}
	return nil
}

// Walk visits the schema and every schema nested under it, pre-order,
// in deterministic order (properties sorted by name). Cycles are visited
// once. Traversal stops at the first error.
func (s *Schema) Walk(fn func(*Schema) error) error {
	return walkSchema(s, fn, map[*Schema]bool{})
}

func walkSchema(s *Schema, fn func(*Schema) error, seen map[*Schema]bool) error {
	if s == nil || seen[s] {
		return nil
	}
	seen[s] = true

	if err := fn(s); err != nil {
		return err
	}

	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := walkSchema(s.Properties[name], fn, seen); err != nil {
			return err
		}
	}

	if err := walkSchema(s.Items, fn, seen); err != nil {
		return err
	}
	if err := walkSchema(s.AdditionalProperties, fn, seen); err != nil {
		return err
	}
	for _, sub := range s.AllOf {
		if err := walkSchema(sub, fn, seen); err != nil {
			return err
		}
	}
	for _, sub := range s.OneOf {
		if err := walkSchema(sub, fn, seen); err != nil {
			return err
		}
	}
	for _, sub := range s.AnyOf {
		if err := walkSchema(sub, fn, seen); err != nil {
			return err
		}
	}
	return walkSchema(s.Not, fn, seen)
}
