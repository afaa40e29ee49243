// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package filters

import (
	"github.com/specforge/specforge/internal/pipeline"
	"github.com/specforge/specforge/pkg/types"
)

// NameExclusion removes parameters by exact name from every operation in
// the document. Matching is case-sensitive; operations without a matching
// parameter are left untouched.
type NameExclusion struct {
	names map[string]struct{}
}

// NewNameExclusion creates a filter removing the given parameter names
// document-wide.
func NewNameExclusion(names []string) *NameExclusion {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return &NameExclusion{names: set}
}

// Name returns the filter identifier.
func (f *NameExclusion) Name() string {
	return "name-exclusion"
}

// ApplyDocument removes matching parameters from every operation.
func (f *NameExclusion) ApplyDocument(ctx *pipeline.DocumentContext) error {
	if len(f.names) == 0 {
		return nil
	}
	return ctx.Document.EachOperation(func(path, method string, op *types.Operation) error {
		if len(op.Parameters) == 0 {
			return nil
		}
		kept := op.Parameters[:0]
		for _, p := range op.Parameters {
			if _, drop := f.names[p.Name]; drop {
				continue
			}
			kept = append(kept, p)
		}
		op.Parameters = kept
		return nil
	})
}
