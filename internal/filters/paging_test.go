// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specforge/specforge/internal/pipeline"
	"github.com/specforge/specforge/pkg/types"
)

func TestPaging_Name(t *testing.T) {
	assert.Equal(t, "paging-parameters", NewPaging(DefaultListSuffix).Name())
}

func TestPaging_InjectsOnListRoutes(t *testing.T) {
	op := &types.Operation{}
	ctx := pipeline.NewOperationContext(&types.OpenAPI{}, "/widgets/odata", "GET", op)

	require.NoError(t, NewPaging("/odata").ApplyOperation(ctx))

	require.Len(t, op.Parameters, 6)

	want := []struct {
		name       string
		schemaType string
		def        interface{}
	}{
		{"count", "boolean", false},
		{"skip", "integer", 0},
		{"top", "integer", 30},
		{"filter", "string", nil},
		{"orderBy", "string", nil},
		{"apply", "string", nil},
	}
	for i, w := range want {
		p := op.Parameters[i]
		assert.Equalf(t, w.name, p.Name, "parameter %d", i)
		assert.Equal(t, types.InQuery, p.In)
		assert.NotEmpty(t, p.Description)
		require.NotNil(t, p.Schema)
		assert.Equal(t, w.schemaType, p.Schema.Type)
		assert.Equal(t, w.def, p.Schema.Default)
		assert.True(t, p.Schema.Nullable)
	}

	assert.Len(t, ctx.Descriptions, 6)
}

func TestPaging_SkipsNonMatchingOperations(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		method string
	}{
		{"POST on list route", "/widgets/odata", "POST"},
		{"GET without suffix", "/widgets", "GET"},
		{"DELETE without suffix", "/widgets/{id}", "DELETE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := &types.Operation{}
			ctx := pipeline.NewOperationContext(&types.OpenAPI{}, tt.path, tt.method, op)

			require.NoError(t, NewPaging("/odata").ApplyOperation(ctx))
			assert.Empty(t, op.Parameters)
		})
	}
}

func TestPaging_DoesNotDuplicateExistingParameters(t *testing.T) {
	op := &types.Operation{
		Parameters: []types.Parameter{
			{Name: "top", In: types.InQuery, Description: "Custom page size.", Schema: &types.Schema{Type: "integer", Default: 100}},
		},
	}
	ctx := pipeline.NewOperationContext(&types.OpenAPI{}, "/widgets/odata", "GET", op)

	f := NewPaging("/odata")
	require.NoError(t, f.ApplyOperation(ctx))

	require.Len(t, op.Parameters, 6)
	assert.Equal(t, "Custom page size.", op.Parameters[0].Description)
	assert.Equal(t, 100, op.Parameters[0].Schema.Default)

	// A second pass finds every parameter already present.
	require.NoError(t, f.ApplyOperation(ctx))
	assert.Len(t, op.Parameters, 6)
}

func TestPaging_SchemasNotShared(t *testing.T) {
	first := &types.Operation{}
	second := &types.Operation{}

	f := NewPaging("/odata")
	require.NoError(t, f.ApplyOperation(pipeline.NewOperationContext(&types.OpenAPI{}, "/a/odata", "GET", first)))
	require.NoError(t, f.ApplyOperation(pipeline.NewOperationContext(&types.OpenAPI{}, "/b/odata", "GET", second)))

	first.Parameters[0].Schema.Default = true
	assert.Equal(t, false, second.Parameters[0].Schema.Default)
}

func TestPaging_CustomSuffix(t *testing.T) {
	op := &types.Operation{}
	ctx := pipeline.NewOperationContext(&types.OpenAPI{}, "/widgets/list", "GET", op)

	require.NoError(t, NewPaging("/list").ApplyOperation(ctx))
	assert.Len(t, op.Parameters, 6)
}
