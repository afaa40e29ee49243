// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package openapi

import (
	"github.com/specforge/specforge/pkg/types"
)

// SchemaRef creates a reference to a schema in components.
func SchemaRef(schemaName string) *types.Schema {
	return &types.Schema{
		Ref: "#/components/schemas/" + schemaName,
	}
}

// Sample returns a small annotated API description that exercises every
// built-in filter: a list route that receives paging parameters, bound and
// hidden parameters for the exclusion filters, and an enum schema carrying
// member-name hints. The annotations are stored as vendor extensions so the
// document survives a write/read round trip intact.
func Sample() *types.OpenAPI {
	return &types.OpenAPI{
		OpenAPI: "3.0.3",
		Info: types.Info{
			Title:       "Widgets",
			Description: "Sample widget inventory API.",
			Version:     "0.1.0",
		},
		Paths: map[string]types.PathItem{
			"/widgets/odata": {
				Get: &types.Operation{
					Summary:     "List widgets",
					OperationID: "listWidgets",
					Parameters: []types.Parameter{
						{
							Name:        "q",
							In:          types.InQuery,
							Description: "Free-text search over widget names.",
							Schema:      &types.Schema{Type: "string"},
						},
						{
							Name:   "sessionId",
							In:     types.InQuery,
							Schema: &types.Schema{Type: "string"},
						},
						{
							Name:   "connection",
							In:     types.InQuery,
							Schema: &types.Schema{Type: "string"},
							Extensions: map[string]interface{}{
								types.ExtBinding: types.BindingExcluded,
							},
						},
						{
							Name:   "traceId",
							In:     types.InHeader,
							Schema: &types.Schema{Type: "string"},
							Extensions: map[string]interface{}{
								types.ExtHidden: true,
							},
						},
					},
					Responses: map[string]types.Response{
						"200": {
							Description: "Matching widgets",
							Content: map[string]types.MediaType{
								"application/json": {
									Schema: &types.Schema{
										Type:  "array",
										Items: SchemaRef("Widget"),
									},
								},
							},
						},
					},
				},
			},
			"/widgets": {
				Post: &types.Operation{
					Summary:     "Create a widget",
					OperationID: "createWidget",
					RequestBody: &types.RequestBody{
						Required: true,
						Content: map[string]types.MediaType{
							"application/json": {
								Schema: SchemaRef("Widget"),
							},
						},
					},
					Responses: map[string]types.Response{
						"201": {
							Description: "Widget created",
							Content: map[string]types.MediaType{
								"application/json": {
									Schema: SchemaRef("Widget"),
								},
							},
						},
					},
				},
			},
			"/widgets/{id}": {
				Get: &types.Operation{
					Summary:     "Get a widget",
					OperationID: "getWidget",
					Parameters: []types.Parameter{
						{
							Name:     "id",
							In:       types.InPath,
							Required: true,
							Schema:   &types.Schema{Type: "integer", Format: "int64"},
						},
					},
					Responses: map[string]types.Response{
						"200": {
							Description: "The widget",
							Content: map[string]types.MediaType{
								"application/json": {
									Schema: SchemaRef("Widget"),
								},
							},
						},
						"404": {Description: "Not found"},
					},
				},
			},
		},
		Components: &types.Components{
			Schemas: map[string]*types.Schema{
				"Widget": {
					Type: "object",
					Properties: map[string]*types.Schema{
						"id":    {Type: "integer", Format: "int64"},
						"name":  {Type: "string"},
						"state": SchemaRef("WidgetState"),
					},
					Required: []string{"id", "name"},
				},
				"WidgetState": {
					Type: "integer",
					Enum: []interface{}{0, 1, 2},
					Extensions: map[string]interface{}{
						types.ExtEnumNameHint: []interface{}{"Draft", "Active", "Retired"},
					},
				},
			},
		},
	}
}
