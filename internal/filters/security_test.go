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

func TestSchemeInstall_CreatesComponents(t *testing.T) {
	doc := &types.OpenAPI{}
	scheme := OAuth2PasswordScheme("https://auth.example.com/token", "widgets")

	f := NewSchemeInstall("oauth2", scheme)
	assert.Equal(t, "security-scheme", f.Name())
	require.NoError(t, f.ApplyDocument(&pipeline.DocumentContext{Document: doc}))

	require.NotNil(t, doc.Components)
	installed, ok := doc.Components.SecuritySchemes["oauth2"]
	require.True(t, ok)
	assert.Equal(t, "oauth2", installed.Type)
	require.NotNil(t, installed.Flows)
	require.NotNil(t, installed.Flows.Password)
	assert.Equal(t, "https://auth.example.com/token", installed.Flows.Password.TokenURL)
	assert.Equal(t, "https://auth.example.com/token", installed.Flows.Password.RefreshURL)
	assert.Equal(t, map[string]string{
		"widgets": "Access to the Widgets API.",
	}, installed.Flows.Password.Scopes)
}

func TestSchemeInstall_ReplacesExistingScheme(t *testing.T) {
	doc := &types.OpenAPI{
		Components: &types.Components{
			SecuritySchemes: map[string]types.SecurityScheme{
				"oauth2": {Type: "http", Scheme: "basic"},
				"apiKey": {Type: "apiKey", Name: "X-Key", In: "header"},
			},
		},
	}

	f := NewSchemeInstall("oauth2", OAuth2PasswordScheme("https://auth/token", "api"))
	require.NoError(t, f.ApplyDocument(&pipeline.DocumentContext{Document: doc}))

	assert.Equal(t, "oauth2", doc.Components.SecuritySchemes["oauth2"].Type)
	// Unrelated schemes survive.
	assert.Equal(t, "apiKey", doc.Components.SecuritySchemes["apiKey"].Type)
}

func TestSecurityRequirements_AddsResponsesAndRequirement(t *testing.T) {
	op := &types.Operation{
		Responses: map[string]types.Response{
			"200": {Description: "OK"},
		},
	}
	ctx := pipeline.NewOperationContext(&types.OpenAPI{}, "/widgets", "GET", op)

	f := NewSecurityRequirements("oauth2", "api")
	assert.Equal(t, "security-requirements", f.Name())
	require.NoError(t, f.ApplyOperation(ctx))

	require.Len(t, op.Responses, 4)
	assert.Equal(t, "Bad request", op.Responses["400"].Description)
	assert.Equal(t, "Unauthorized", op.Responses["401"].Description)
	assert.Equal(t, "Forbidden", op.Responses["403"].Description)
	assert.Equal(t, "OK", op.Responses["200"].Description)

	require.Len(t, op.Security, 1)
	assert.Equal(t, map[string][]string{"oauth2": {"api"}}, op.Security[0])
}

func TestSecurityRequirements_NilResponses(t *testing.T) {
	op := &types.Operation{}
	ctx := pipeline.NewOperationContext(&types.OpenAPI{}, "/widgets", "POST", op)

	require.NoError(t, NewSecurityRequirements("oauth2", "api").ApplyOperation(ctx))

	assert.Len(t, op.Responses, 3)
	assert.Len(t, op.Security, 1)
}

func TestSecurityRequirements_ExistingResponseKept(t *testing.T) {
	op := &types.Operation{
		Responses: map[string]types.Response{
			"401": {Description: "Token expired"},
		},
	}
	ctx := pipeline.NewOperationContext(&types.OpenAPI{}, "/widgets", "GET", op)

	require.NoError(t, NewSecurityRequirements("oauth2", "api").ApplyOperation(ctx))

	// An operation's own response wording wins over the injected default.
	assert.Equal(t, "Token expired", op.Responses["401"].Description)
	assert.Equal(t, "Bad request", op.Responses["400"].Description)
	assert.Equal(t, "Forbidden", op.Responses["403"].Description)
}

func TestSecurityRequirements_DoubleApplicationDuplicates(t *testing.T) {
	op := &types.Operation{}
	ctx := pipeline.NewOperationContext(&types.OpenAPI{}, "/widgets", "GET", op)

	f := NewSecurityRequirements("oauth2", "api")
	require.NoError(t, f.ApplyOperation(ctx))
	require.NoError(t, f.ApplyOperation(ctx))

	// The requirement append is unconditional; the engine is what
	// guarantees a single application per run.
	assert.Len(t, op.Security, 2)
	assert.Len(t, op.Responses, 3)
}
