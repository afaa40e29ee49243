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

func TestStandard_MissingTokenURL(t *testing.T) {
	reg, err := Standard(StandardOptions{Title: "Widgets"})

	assert.ErrorIs(t, err, ErrMissingTokenURL)
	assert.Nil(t, reg)
}

func TestStandard_RegistersFullFilterSet(t *testing.T) {
	reg, err := Standard(StandardOptions{TokenURL: "https://auth/token"})
	require.NoError(t, err)

	assert.Equal(t, 8, reg.Count())
	assert.Equal(t, []string{
		"binding-exclusion",
		"enum-names",
		"hidden-exclusion",
		"info-override",
		"name-exclusion",
		"paging-parameters",
		"security-requirements",
		"security-scheme",
	}, reg.List())
}

func TestStandard_RegistrationOrder(t *testing.T) {
	reg, err := Standard(StandardOptions{TokenURL: "https://auth/token"})
	require.NoError(t, err)

	var docs []string
	for _, f := range reg.Documents() {
		docs = append(docs, f.Name())
	}
	assert.Equal(t, []string{"info-override", "security-scheme", "name-exclusion"}, docs)

	var ops []string
	for _, f := range reg.Operations() {
		ops = append(ops, f.Name())
	}
	assert.Equal(t, []string{
		"binding-exclusion",
		"hidden-exclusion",
		"security-requirements",
		"paging-parameters",
	}, ops)

	var schemas []string
	for _, f := range reg.Schemas() {
		schemas = append(schemas, f.Name())
	}
	assert.Equal(t, []string{"enum-names"}, schemas)
}

func TestStandard_EndToEnd(t *testing.T) {
	doc := &types.OpenAPI{
		OpenAPI: "3.0.3",
		Info:    types.Info{Title: "Generated", Version: "0.0.0"},
		Paths: map[string]types.PathItem{
			"/widgets/odata": {
				Get: &types.Operation{
					OperationID: "listWidgets",
					Parameters: []types.Parameter{
						{Name: "secret", In: types.InQuery, Schema: &types.Schema{Type: "string"}},
						{Name: "q", In: types.InQuery, Schema: &types.Schema{Type: "string"}},
					},
					Responses: map[string]types.Response{
						"200": {Description: "OK"},
					},
				},
			},
			"/widgets": {
				Post: &types.Operation{
					OperationID: "createWidget",
					Responses: map[string]types.Response{
						"201": {Description: "Created"},
					},
				},
			},
		},
		Components: &types.Components{
			Schemas: map[string]*types.Schema{
				"WidgetState": {
					Type:   "integer",
					Enum:   []interface{}{0, 1},
					Source: &types.SchemaSource{EnumNames: []string{"Inactive", "Active"}},
				},
			},
		},
	}

	reg, err := Standard(StandardOptions{
		Title:             "Widgets API",
		Version:           "v3",
		Name:              "widgets",
		TokenURL:          "https://auth.example.com/token",
		IgnoredParameters: []string{"secret"},
	})
	require.NoError(t, err)

	report, err := pipeline.New(reg).Run(doc)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Operations)

	// The info block carries the configured identity.
	assert.Equal(t, "Widgets API", doc.Info.Title)
	assert.Equal(t, "v3", doc.Info.Version)

	// The OAuth2 scheme is published once at document level.
	scheme := doc.Components.SecuritySchemes["oauth2"]
	require.NotNil(t, scheme.Flows)
	assert.Equal(t, "https://auth.example.com/token", scheme.Flows.Password.TokenURL)

	get := doc.Paths["/widgets/odata"].Get
	names := make([]string, 0, len(get.Parameters))
	for _, p := range get.Parameters {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"q", "count", "skip", "top", "filter", "orderBy", "apply"}, names)

	assert.Equal(t, "Bad request", get.Responses["400"].Description)
	assert.Equal(t, "Unauthorized", get.Responses["401"].Description)
	assert.Equal(t, "Forbidden", get.Responses["403"].Description)
	assert.Equal(t, "OK", get.Responses["200"].Description)
	require.Len(t, get.Security, 1)
	assert.Equal(t, map[string][]string{"oauth2": {"widgets"}}, get.Security[0])

	post := doc.Paths["/widgets"].Post
	assert.Empty(t, post.Parameters)
	assert.Len(t, post.Responses, 4)
	require.Len(t, post.Security, 1)
	assert.Equal(t, map[string][]string{"oauth2": {"widgets"}}, post.Security[0])

	// Enum schemas picked up their member names.
	state := doc.Components.Schemas["WidgetState"]
	assert.Equal(t, []string{"Inactive", "Active"}, state.Extensions[types.ExtEnumNames])
}
