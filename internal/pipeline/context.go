// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package pipeline

import (
	"github.com/specforge/specforge/pkg/types"
)

// DocumentContext is passed to document-level filters.
type DocumentContext struct {
	// Document is the document being transformed.
	Document *types.OpenAPI
}

// ParameterDescription is the engine-side pending view of one parameter.
// The engine seeds one description per rendered parameter; filters that
// add or remove parameters must go through the OperationContext helpers so
// the two lists stay consistent.
type ParameterDescription struct {
	// Name is the parameter name.
	Name string

	// In is the parameter location.
	In string

	// Source carries the parameter's capability tags, shared with the
	// rendered parameter.
	Source *types.ParameterSource
}

// OperationContext is passed to operation-level filters.
type OperationContext struct {
	// Document is the document being transformed.
	Document *types.OpenAPI

	// Path is the operation's path template.
	Path string

	// Method is the canonical (upper-case) HTTP method.
	Method string

	// Operation is the operation being transformed.
	Operation *types.Operation

	// Descriptions is the pending parameter-description list. It mirrors
	// Operation.Parameters entry for entry.
	Descriptions []*ParameterDescription
}

// NewOperationContext builds the context handed to operation filters for
// one operation, seeding the pending descriptions from the operation's
// current parameter list.
func NewOperationContext(doc *types.OpenAPI, path, method string, op *types.Operation) *OperationContext {
	ctx := &OperationContext{
		Document:  doc,
		Path:      path,
		Method:    method,
		Operation: op,
	}
	ctx.Descriptions = make([]*ParameterDescription, 0, len(op.Parameters))
	for i := range op.Parameters {
		p := &op.Parameters[i]
		ctx.Descriptions = append(ctx.Descriptions, &ParameterDescription{
			Name:   p.Name,
			In:     p.In,
			Source: p.Source,
		})
	}
	return ctx
}

// HasParameter reports whether the operation carries a parameter with the
// given name and location.
func (c *OperationContext) HasParameter(name, in string) bool {
	for _, p := range c.Operation.Parameters {
		if p.Name == name && p.In == in {
			return true
		}
	}
	return false
}

// AddParameter appends a parameter to the rendered list and the pending
// description list.
func (c *OperationContext) AddParameter(p types.Parameter) {
	c.Operation.Parameters = append(c.Operation.Parameters, p)
	c.Descriptions = append(c.Descriptions, &ParameterDescription{
		Name:   p.Name,
		In:     p.In,
		Source: p.Source,
	})
}

// RemoveParameters removes every parameter matching the predicate from the
// rendered list and the pending description list, preserving the order of
// the remaining parameters. It returns the number of parameters removed.
func (c *OperationContext) RemoveParameters(match func(types.Parameter) bool) int {
	params := c.Operation.Parameters
	kept := params[:0]
	keptDescs := c.Descriptions[:0]
	removed := 0
	for i := range params {
		if match(params[i]) {
			removed++
			continue
		}
		kept = append(kept, params[i])
		if i < len(c.Descriptions) {
			keptDescs = append(keptDescs, c.Descriptions[i])
		}
	}
	c.Operation.Parameters = kept
	c.Descriptions = keptDescs
	return removed
}

// SchemaContext is passed to schema-level filters.
type SchemaContext struct {
	// Document is the document being transformed.
	Document *types.OpenAPI

	// Name is the component schema name, or "" for inline schemas.
	Name string

	// Location describes where the schema sits in the document, for
	// error reporting (e.g. "GET /widgets response 200").
	Location string

	// Schema is the schema being transformed.
	Schema *types.Schema
}
