// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

// Package pipeline provides the transformation engine that applies
// registered filters to an API description document.
package pipeline

// Filter is the common interface for all transformation filters.
// A filter participates in one or more application levels by additionally
// implementing DocumentFilter, OperationFilter, or SchemaFilter.
type Filter interface {
	// Name returns the filter identifier (e.g., "exclude-names").
	Name() string
}

// DocumentFilter transforms the document as a whole. Document filters run
// before any operation or schema filter.
type DocumentFilter interface {
	Filter

	// ApplyDocument mutates the document in place.
	ApplyDocument(ctx *DocumentContext) error
}

// OperationFilter transforms one operation at a time.
type OperationFilter interface {
	Filter

	// ApplyOperation mutates the current operation in place.
	ApplyOperation(ctx *OperationContext) error
}

// SchemaFilter transforms one schema at a time.
type SchemaFilter interface {
	Filter

	// ApplySchema mutates the current schema in place.
	ApplySchema(ctx *SchemaContext) error
}

// DocumentFunc adapts a function to a named DocumentFilter.
func DocumentFunc(name string, fn func(*DocumentContext) error) DocumentFilter {
	return &documentFunc{name: name, fn: fn}
}

type documentFunc struct {
	name string
	fn   func(*DocumentContext) error
}

func (f *documentFunc) Name() string                           { return f.name }
func (f *documentFunc) ApplyDocument(ctx *DocumentContext) error { return f.fn(ctx) }

// OperationFunc adapts a function to a named OperationFilter.
func OperationFunc(name string, fn func(*OperationContext) error) OperationFilter {
	return &operationFunc{name: name, fn: fn}
}

type operationFunc struct {
	name string
	fn   func(*OperationContext) error
}

func (f *operationFunc) Name() string                             { return f.name }
func (f *operationFunc) ApplyOperation(ctx *OperationContext) error { return f.fn(ctx) }

// SchemaFunc adapts a function to a named SchemaFilter.
func SchemaFunc(name string, fn func(*SchemaContext) error) SchemaFilter {
	return &schemaFunc{name: name, fn: fn}
}

type schemaFunc struct {
	name string
	fn   func(*SchemaContext) error
}

func (f *schemaFunc) Name() string                       { return f.name }
func (f *schemaFunc) ApplySchema(ctx *SchemaContext) error { return f.fn(ctx) }
