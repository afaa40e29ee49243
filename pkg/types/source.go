// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package types

// Well-known vendor extension keys. Keys with the "x-specforge-" prefix are
// input annotations written by upstream generators; LiftAnnotations moves
// them into Source metadata so they never reach serialized output.
const (
	// ExtBinding names the mechanism that bound a parameter
	// (e.g. BindingExcluded for infrastructure-bound parameters).
	ExtBinding = "x-specforge-binding"

	// ExtHidden marks a parameter as excluded from documentation.
	ExtHidden = "x-specforge-hidden"

	// ExtSource carries the declaring type and handler method of an
	// operation as a {"declaringType": ..., "method": ...} mapping.
	ExtSource = "x-specforge-source"

	// ExtEnumNameHint carries explicit enum member names for a schema,
	// in declaration order.
	ExtEnumNameHint = "x-specforge-enum-names"

	// ExtEnumNames is the output key consumed by client generators for
	// enum member names. Written by the enum annotation filter and left
	// in place on serialization.
	ExtEnumNames = "x-enumNames"
)

// BindingExcluded is the binding tag for parameters bound by server-side
// infrastructure rather than request data. Such parameters belong to the
// handler signature, not to the wire contract.
const BindingExcluded = "excluded"

// ParameterSource carries capability tags attached to a parameter at
// description-build time. Filters match on these tags instead of
// inspecting the originating declaration.
type ParameterSource struct {
	// Binding names the mechanism that bound the parameter.
	Binding string

	// Hidden marks the parameter as excluded from documentation.
	Hidden bool
}

// OperationSource identifies the declaration an operation was generated
// from.
type OperationSource struct {
	// DeclaringType is the name of the type declaring the handler.
	DeclaringType string

	// Method is the name of the handler method.
	Method string
}

// SchemaSource carries schema-level build metadata.
type SchemaSource struct {
	// EnumNames lists explicit enum member names in declaration order.
	EnumNames []string
}

// LiftAnnotations moves "x-specforge-" input annotations from extension
// maps into Source metadata across the whole document. Unknown extensions
// are left untouched. Lifting is idempotent: a second call finds nothing
// to move.
func LiftAnnotations(doc *OpenAPI) {
	if doc == nil {
		return
	}

	for _, path := range doc.SortedPaths() {
		item := doc.Paths[path]
		liftParameters(item.Parameters)
		for _, method := range Methods() {
			op := item.Operation(method)
			if op == nil {
				continue
			}
			liftOperation(op)
		}
	}

	seen := map[*Schema]bool{}
	if doc.Components != nil {
		for _, name := range doc.SortedSchemaNames() {
			liftSchemaTree(doc.Components.Schemas[name], seen)
		}
		for name := range doc.Components.Parameters {
			param := doc.Components.Parameters[name]
			liftParameter(&param)
			doc.Components.Parameters[name] = param
			liftSchemaTree(param.Schema, seen)
		}
	}
	_ = doc.EachOperation(func(_, _ string, op *Operation) error {
		for i := range op.Parameters {
			liftSchemaTree(op.Parameters[i].Schema, seen)
		}
		if op.RequestBody != nil {
			for _, mt := range op.RequestBody.Content {
				liftSchemaTree(mt.Schema, seen)
			}
		}
		for _, resp := range op.Responses {
			for _, mt := range resp.Content {
				liftSchemaTree(mt.Schema, seen)
			}
			for _, hdr := range resp.Headers {
				liftSchemaTree(hdr.Schema, seen)
			}
		}
		return nil
	})
}

func liftOperation(op *Operation) {
	if v, ok := op.Extensions[ExtSource]; ok {
		if m, ok := v.(map[string]interface{}); ok {
			src := &OperationSource{}
			if s, ok := m["declaringType"].(string); ok {
				src.DeclaringType = s
			}
			if s, ok := m["method"].(string); ok {
				src.Method = s
			}
			op.Source = src
			delete(op.Extensions, ExtSource)
		}
	}
	if len(op.Extensions) == 0 {
		op.Extensions = nil
	}
	liftParameters(op.Parameters)
}

func liftParameters(params []Parameter) {
	for i := range params {
		liftParameter(&params[i])
	}
}

func liftParameter(p *Parameter) {
	binding, hasBinding := p.Extensions[ExtBinding].(string)
	hidden, hasHidden := p.Extensions[ExtHidden].(bool)
	if !hasBinding && !hasHidden {
		return
	}
	if p.Source == nil {
		p.Source = &ParameterSource{}
	}
	if hasBinding {
		p.Source.Binding = binding
		delete(p.Extensions, ExtBinding)
	}
	if hasHidden {
		p.Source.Hidden = hidden
		delete(p.Extensions, ExtHidden)
	}
	if len(p.Extensions) == 0 {
		p.Extensions = nil
	}
}

func liftSchemaTree(s *Schema, seen map[*Schema]bool) {
	if s == nil || seen[s] {
		return
	}
	_ = s.Walk(func(node *Schema) error {
		if seen[node] {
			return nil
		}
		seen[node] = true
		liftSchema(node)
		return nil
	})
}

func liftSchema(s *Schema) {
	v, ok := s.Extensions[ExtEnumNameHint]
	if !ok {
		return
	}
	names, ok := stringSlice(v)
	if !ok {
		// Malformed hint: leave it in place so it shows up in output.
		return
	}
	if s.Source == nil {
		s.Source = &SchemaSource{}
	}
	s.Source.EnumNames = names
	delete(s.Extensions, ExtEnumNameHint)
	if len(s.Extensions) == 0 {
		s.Extensions = nil
	}
}

func stringSlice(v interface{}) ([]string, bool) {
	switch vv := v.(type) {
	case []string:
		return vv, true
	case []interface{}:
		out := make([]string, 0, len(vv))
		for _, e := range vv {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
