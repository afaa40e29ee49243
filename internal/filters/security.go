// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package filters

import (
	"github.com/specforge/specforge/internal/pipeline"
	"github.com/specforge/specforge/pkg/types"
)

// SchemeInstall publishes a security scheme under the document's
// components, creating the components block if the document has none.
type SchemeInstall struct {
	name   string
	scheme types.SecurityScheme
}

// NewSchemeInstall creates a filter installing scheme under name.
func NewSchemeInstall(name string, scheme types.SecurityScheme) *SchemeInstall {
	return &SchemeInstall{name: name, scheme: scheme}
}

// Name returns the filter identifier.
func (f *SchemeInstall) Name() string {
	return "security-scheme"
}

// ApplyDocument installs the scheme, replacing any scheme already
// published under the same name.
func (f *SchemeInstall) ApplyDocument(ctx *pipeline.DocumentContext) error {
	doc := ctx.Document
	if doc.Components == nil {
		doc.Components = &types.Components{}
	}
	if doc.Components.SecuritySchemes == nil {
		doc.Components.SecuritySchemes = make(map[string]types.SecurityScheme)
	}
	doc.Components.SecuritySchemes[f.name] = f.scheme
	return nil
}

// authFailureResponses are the standard failure outcomes documented on
// every secured operation, in the order they are added.
var authFailureResponses = []struct {
	code        string
	description string
}{
	{"400", "Bad request"},
	{"401", "Unauthorized"},
	{"403", "Forbidden"},
}

// SecurityRequirements documents authentication on every operation: it adds
// the standard 400/401/403 failure responses where the operation does not
// already define those codes, and appends one security requirement
// referencing the configured scheme and scope. The requirement append is
// unconditional, so applying the filter to the same operation twice lists
// the requirement twice; the engine applies each filter once per run.
type SecurityRequirements struct {
	scheme string
	scope  string
}

// NewSecurityRequirements creates a filter referencing scheme and scope.
func NewSecurityRequirements(scheme, scope string) *SecurityRequirements {
	return &SecurityRequirements{scheme: scheme, scope: scope}
}

// Name returns the filter identifier.
func (f *SecurityRequirements) Name() string {
	return "security-requirements"
}

// ApplyOperation adds failure responses and the security requirement.
func (f *SecurityRequirements) ApplyOperation(ctx *pipeline.OperationContext) error {
	op := ctx.Operation
	if op.Responses == nil {
		op.Responses = make(map[string]types.Response, len(authFailureResponses))
	}
	for _, r := range authFailureResponses {
		if _, exists := op.Responses[r.code]; exists {
			continue
		}
		op.Responses[r.code] = types.Response{Description: r.description}
	}
	op.Security = append(op.Security, map[string][]string{
		f.scheme: {f.scope},
	})
	return nil
}
