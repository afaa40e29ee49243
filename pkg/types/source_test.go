// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiftAnnotations_Parameters(t *testing.T) {
	doc := &OpenAPI{
		Paths: map[string]PathItem{
			"/widgets": {
				Get: &Operation{
					Parameters: []Parameter{
						{
							Name: "options",
							In:   InQuery,
							Extensions: map[string]interface{}{
								ExtBinding: BindingExcluded,
							},
						},
						{
							Name: "internal",
							In:   InQuery,
							Extensions: map[string]interface{}{
								ExtHidden:  true,
								"x-custom": "kept",
							},
						},
						{Name: "plain", In: InQuery},
					},
				},
			},
		},
	}

	LiftAnnotations(doc)

	params := doc.Paths["/widgets"].Get.Parameters

	require.NotNil(t, params[0].Source)
	assert.Equal(t, BindingExcluded, params[0].Source.Binding)
	assert.Nil(t, params[0].Extensions)

	require.NotNil(t, params[1].Source)
	assert.True(t, params[1].Source.Hidden)
	assert.Equal(t, map[string]interface{}{"x-custom": "kept"}, params[1].Extensions)

	assert.Nil(t, params[2].Source)
}

func TestLiftAnnotations_OperationSource(t *testing.T) {
	op := &Operation{
		Extensions: map[string]interface{}{
			ExtSource: map[string]interface{}{
				"declaringType": "WidgetController",
				"method":        "List",
			},
		},
	}
	doc := &OpenAPI{Paths: map[string]PathItem{"/widgets": {Get: op}}}

	LiftAnnotations(doc)

	require.NotNil(t, op.Source)
	assert.Equal(t, "WidgetController", op.Source.DeclaringType)
	assert.Equal(t, "List", op.Source.Method)
	assert.Nil(t, op.Extensions)
}

func TestLiftAnnotations_EnumNameHint(t *testing.T) {
	schema := &Schema{
		Type: "integer",
		Enum: []interface{}{0, 1},
		Extensions: map[string]interface{}{
			ExtEnumNameHint: []interface{}{"Off", "On"},
		},
	}
	doc := &OpenAPI{
		Components: &Components{Schemas: map[string]*Schema{"Toggle": schema}},
	}

	LiftAnnotations(doc)

	require.NotNil(t, schema.Source)
	assert.Equal(t, []string{"Off", "On"}, schema.Source.EnumNames)
	assert.Nil(t, schema.Extensions)
}

func TestLiftAnnotations_MalformedHintLeftInPlace(t *testing.T) {
	schema := &Schema{
		Type: "integer",
		Extensions: map[string]interface{}{
			ExtEnumNameHint: []interface{}{"Off", 1},
		},
	}
	doc := &OpenAPI{
		Components: &Components{Schemas: map[string]*Schema{"Toggle": schema}},
	}

	LiftAnnotations(doc)

	assert.Nil(t, schema.Source)
	assert.Contains(t, schema.Extensions, ExtEnumNameHint)
}

func TestLiftAnnotations_NestedSchemas(t *testing.T) {
	nested := &Schema{
		Type: "string",
		Enum: []interface{}{"a", "b"},
		Extensions: map[string]interface{}{
			ExtEnumNameHint: []interface{}{"A", "B"},
		},
	}
	doc := &OpenAPI{
		Paths: map[string]PathItem{
			"/widgets": {
				Get: &Operation{
					Responses: map[string]Response{
						"200": {
							Description: "OK",
							Content: map[string]MediaType{
								"application/json": {
									Schema: &Schema{
										Type:       "object",
										Properties: map[string]*Schema{"kind": nested},
									},
								},
							},
						},
					},
				},
			},
		},
	}

	LiftAnnotations(doc)

	require.NotNil(t, nested.Source)
	assert.Equal(t, []string{"A", "B"}, nested.Source.EnumNames)
}

func TestLiftAnnotations_Idempotent(t *testing.T) {
	param := Parameter{
		Name:       "options",
		In:         InQuery,
		Extensions: map[string]interface{}{ExtBinding: "custom"},
	}
	doc := &OpenAPI{
		Paths: map[string]PathItem{
			"/widgets": {Get: &Operation{Parameters: []Parameter{param}}},
		},
	}

	LiftAnnotations(doc)
	LiftAnnotations(doc)

	got := doc.Paths["/widgets"].Get.Parameters[0]
	require.NotNil(t, got.Source)
	assert.Equal(t, "custom", got.Source.Binding)
	assert.Nil(t, got.Extensions)
}

func TestLiftAnnotations_NilDocument(t *testing.T) {
	assert.NotPanics(t, func() { LiftAnnotations(nil) })
}
