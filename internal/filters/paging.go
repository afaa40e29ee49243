// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package filters

import (
	"net/http"
	"strings"

	"github.com/specforge/specforge/internal/pipeline"
	"github.com/specforge/specforge/pkg/types"
)

// Paging appends the standard list-query parameters to GET operations
// whose path ends with the configured list suffix. Parameters already
// present on the operation are not added again, so the filter is safe to
// run over an operation that declares its own paging surface.
type Paging struct {
	suffix string
}

// NewPaging creates a filter injecting paging parameters into GET routes
// ending with suffix.
func NewPaging(suffix string) *Paging {
	return &Paging{suffix: suffix}
}

// Name returns the filter identifier.
func (f *Paging) Name() string {
	return "paging-parameters"
}

// pagingParameters builds the injected parameter set. Built fresh on every
// call so operations never share schema pointers.
func pagingParameters() []types.Parameter {
	return []types.Parameter{
		{
			Name:        "count",
			In:          types.InQuery,
			Description: "Whether to include the total count of matching items.",
			Schema:      &types.Schema{Type: "boolean", Default: false, Nullable: true},
		},
		{
			Name:        "skip",
			In:          types.InQuery,
			Description: "Number of items to skip from the start of the result set.",
			Schema:      &types.Schema{Type: "integer", Default: 0, Nullable: true},
		},
		{
			Name:        "top",
			In:          types.InQuery,
			Description: "Maximum number of items to return.",
			Schema:      &types.Schema{Type: "integer", Default: 30, Nullable: true},
		},
		{
			Name:        "filter",
			In:          types.InQuery,
			Description: "Filter expression restricting the returned items.",
			Schema:      &types.Schema{Type: "string", Nullable: true},
		},
		{
			Name:        "orderBy",
			In:          types.InQuery,
			Description: "Ordering expression applied to the returned items.",
			Schema:      &types.Schema{Type: "string", Nullable: true},
		},
		{
			Name:        "apply",
			In:          types.InQuery,
			Description: "Aggregation expression applied to the result set.",
			Schema:      &types.Schema{Type: "string", Nullable: true},
		},
	}
}

// ApplyOperation injects the paging parameters when the operation is a GET
// on a list-query route.
func (f *Paging) ApplyOperation(ctx *pipeline.OperationContext) error {
	if ctx.Method != http.MethodGet || !strings.HasSuffix(ctx.Path, f.suffix) {
		return nil
	}
	for _, p := range pagingParameters() {
		if ctx.HasParameter(p.Name, p.In) {
			continue
		}
		ctx.AddParameter(p)
	}
	return nil
}
