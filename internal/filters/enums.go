// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package filters

import (
	"fmt"

	"github.com/specforge/specforge/internal/pipeline"
	"github.com/specforge/specforge/pkg/types"
)

// EnumNames annotates enum schemas with the ordered list of member names
// under the x-enumNames extension key. Schemas that already carry the key
// are skipped, so an enum referenced from several places in one document
// is annotated exactly once.
type EnumNames struct{}

// NewEnumNames creates the enum annotation filter.
func NewEnumNames() *EnumNames {
	return &EnumNames{}
}

// Name returns the filter identifier.
func (f *EnumNames) Name() string {
	return "enum-names"
}

// ApplySchema attaches member names to enum schemas.
func (f *EnumNames) ApplySchema(ctx *pipeline.SchemaContext) error {
	s := ctx.Schema
	if len(s.Enum) == 0 {
		return nil
	}
	if _, done := s.Extensions[types.ExtEnumNames]; done {
		return nil
	}

	names := make([]string, 0, len(s.Enum))
	if s.Source != nil && len(s.Source.EnumNames) == len(s.Enum) {
		// A name hint is only trusted when it covers every member.
		names = append(names, s.Source.EnumNames...)
	} else {
		for _, v := range s.Enum {
			names = append(names, fmt.Sprint(v))
		}
	}

	if s.Extensions == nil {
		s.Extensions = make(map[string]interface{})
	}
	s.Extensions[types.ExtEnumNames] = names
	return nil
}
