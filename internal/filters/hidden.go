// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package filters

import (
	"github.com/specforge/specforge/internal/pipeline"
	"github.com/specforge/specforge/pkg/types"
)

// HiddenExclusion removes parameters whose source declaration carries the
// hidden marker. Removal covers both the rendered parameter list and the
// pending descriptions, matching the behavior of BindingExclusion.
type HiddenExclusion struct{}

// NewHiddenExclusion creates the hidden-parameter exclusion filter.
func NewHiddenExclusion() *HiddenExclusion {
	return &HiddenExclusion{}
}

// Name returns the filter identifier.
func (f *HiddenExclusion) Name() string {
	return "hidden-exclusion"
}

// ApplyOperation removes hidden parameters from the operation.
func (f *HiddenExclusion) ApplyOperation(ctx *pipeline.OperationContext) error {
	ctx.RemoveParameters(func(p types.Parameter) bool {
		return p.Source != nil && p.Source.Hidden
	})
	return nil
}
