// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package filters

import (
	"github.com/specforge/specforge/internal/pipeline"
	"github.com/specforge/specforge/pkg/types"
)

// BindingExclusion removes parameters whose source binding marks them as
// excluded from the rendered description. Binding tags are attached while
// annotations are lifted from the input document, so the filter matches on
// data rather than inspecting declarations. Running it twice has the same
// effect as running it once.
type BindingExclusion struct {
	binding string
}

// NewBindingExclusion creates a filter removing parameters bound as binding.
func NewBindingExclusion(binding string) *BindingExclusion {
	return &BindingExclusion{binding: binding}
}

// Name returns the filter identifier.
func (f *BindingExclusion) Name() string {
	return "binding-exclusion"
}

// ApplyOperation removes matching parameters from the operation and from
// the pending parameter descriptions.
func (f *BindingExclusion) ApplyOperation(ctx *pipeline.OperationContext) error {
	ctx.RemoveParameters(func(p types.Parameter) bool {
		return p.Source != nil && p.Source.Binding == f.binding
	})
	return nil
}
