// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathItem_Operation(t *testing.T) {
	get := &Operation{OperationID: "listWidgets"}
	post := &Operation{OperationID: "createWidget"}
	item := PathItem{Get: get, Post: post}

	assert.Same(t, get, item.Operation("GET"))
	assert.Same(t, get, item.Operation("get"))
	assert.Same(t, post, item.Operation("POST"))
	assert.Nil(t, item.Operation("DELETE"))
	assert.Nil(t, item.Operation("BOGUS"))
}

func TestPathItem_Operations(t *testing.T) {
	item := PathItem{
		Get:    &Operation{OperationID: "get"},
		Delete: &Operation{OperationID: "delete"},
	}

	ops := item.Operations()
	assert.Len(t, ops, 2)
	assert.Contains(t, ops, "GET")
	assert.Contains(t, ops, "DELETE")
}

func TestOpenAPI_EachOperation_Order(t *testing.T) {
	doc := &OpenAPI{
		Paths: map[string]PathItem{
			"/b": {Get: &Operation{}, Post: &Operation{}},
			"/a": {Put: &Operation{}},
		},
	}

	var visited []string
	err := doc.EachOperation(func(path, method string, _ *Operation) error {
		visited = append(visited, method+" "+path)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"PUT /a", "GET /b", "POST /b"}, visited)
}

func TestOpenAPI_SortedPaths(t *testing.T) {
	doc := &OpenAPI{
		Paths: map[string]PathItem{
			"/users":      {},
			"/items":      {},
			"/users/{id}": {},
		},
	}

	assert.Equal(t, []string{"/items", "/users", "/users/{id}"}, doc.SortedPaths())
}

func TestOpenAPI_SortedSchemaNames(t *testing.T) {
	doc := &OpenAPI{}
	assert.Nil(t, doc.SortedSchemaNames())

	doc.Components = &Components{
		Schemas: map[string]*Schema{
			"Widget": {Type: "object"},
			"Error":  {Type: "object"},
		},
	}
	assert.Equal(t, []string{"Error", "Widget"}, doc.SortedSchemaNames())
}

func TestSchema_Walk_Order(t *testing.T) {
	schema := &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"b": {Type: "string"},
			"a": {Type: "array", Items: &Schema{Type: "integer"}},
		},
	}

	var visited []string
	err := schema.Walk(func(s *Schema) error {
		visited = append(visited, s.Type)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"object", "array", "integer", "string"}, visited)
}

func TestSchema_Walk_Cycle(t *testing.T) {
	node := &Schema{Type: "object"}
	node.Properties = map[string]*Schema{"self": node}

	count := 0
	err := node.Walk(func(*Schema) error {
		count++
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 1, count)
}
