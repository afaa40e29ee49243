// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package openapi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/specforge/specforge/pkg/types"
)

// DiffType represents the type of change detected.
type DiffType string

const (
	// DiffTypeAdded indicates a new item was added.
	DiffTypeAdded DiffType = "added"

	// DiffTypeRemoved indicates an item was removed.
	DiffTypeRemoved DiffType = "removed"

	// DiffTypeModified indicates an item was modified.
	DiffTypeModified DiffType = "modified"
)

// OperationChange represents a change to an operation.
type OperationChange struct {
	Type        DiffType
	Path        string
	Method      string
	Description string

	// Details lists the parameter, response, and security changes that
	// made up a modification, one entry per change.
	Details []string

	// Breaking marks a modification that breaks existing consumers, such
	// as a removed parameter or one that is newly required.
	Breaking bool
}

// SchemaChange represents a change to a named component schema.
type SchemaChange struct {
	Type        DiffType
	Name        string
	Description string
}

// DiffResult contains the differences between two documents, typically the
// input and output of a transformation run.
type DiffResult struct {
	// InfoChanges lists document-level changes (title, version, security
	// schemes).
	InfoChanges []string

	// OperationChanges contains all operation changes.
	OperationChanges []OperationChange

	// SchemaChanges contains all schema changes.
	SchemaChanges []SchemaChange

	// HasBreakingChanges indicates if any breaking changes were detected.
	HasBreakingChanges bool

	// Summary provides a human-readable summary of changes.
	Summary string
}

// IsEmpty returns true if there are no differences.
func (d *DiffResult) IsEmpty() bool {
	return len(d.InfoChanges) == 0 && len(d.OperationChanges) == 0 && len(d.SchemaChanges) == 0
}

// Differ compares two API description documents.
type Differ struct{}

// NewDiffer creates a new Differ.
func NewDiffer() *Differ {
	return &Differ{}
}

// Diff compares two documents and returns the differences, with a set out
// as the baseline and b as the candidate.
func (d *Differ) Diff(a, b *types.OpenAPI) (*DiffResult, error) {
	result := &DiffResult{
		OperationChanges: []OperationChange{},
		SchemaChanges:    []SchemaChange{},
	}

	d.diffInfo(a, b, result)
	d.diffPaths(a, b, result)
	d.diffSchemas(a, b, result)

	result.HasBreakingChanges = d.detectBreakingChanges(result)
	result.Summary = generateSummary(result)

	return result, nil
}

// diffInfo compares document-level metadata.
func (d *Differ) diffInfo(a, b *types.OpenAPI, result *DiffResult) {
	if a == nil || b == nil {
		return
	}

	if a.Info.Title != b.Info.Title {
		result.InfoChanges = append(result.InfoChanges,
			fmt.Sprintf("title changed from %q to %q", a.Info.Title, b.Info.Title))
	}
	if a.Info.Version != b.Info.Version {
		result.InfoChanges = append(result.InfoChanges,
			fmt.Sprintf("version changed from %q to %q", a.Info.Version, b.Info.Version))
	}

	aSchemes := securitySchemeNames(a)
	bSchemes := securitySchemeNames(b)
	for _, name := range bSchemes {
		if !contains(aSchemes, name) {
			result.InfoChanges = append(result.InfoChanges,
				fmt.Sprintf("security scheme %q added", name))
		}
	}
	for _, name := range aSchemes {
		if !contains(bSchemes, name) {
			result.InfoChanges = append(result.InfoChanges,
				fmt.Sprintf("security scheme %q removed", name))
		}
	}
}

// securitySchemeNames returns the sorted security scheme names of a document.
func securitySchemeNames(doc *types.OpenAPI) []string {
	if doc == nil || doc.Components == nil {
		return nil
	}
	names := make([]string, 0, len(doc.Components.SecuritySchemes))
	for name := range doc.Components.SecuritySchemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// contains checks if a slice contains a string.
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// diffPaths compares the paths between two documents. Changes come out in
// sorted path order so reports are stable run to run.
func (d *Differ) diffPaths(a, b *types.OpenAPI, result *DiffResult) {
	aPaths := map[string]types.PathItem{}
	bPaths := map[string]types.PathItem{}

	if a != nil && a.Paths != nil {
		aPaths = a.Paths
	}
	if b != nil && b.Paths != nil {
		bPaths = b.Paths
	}

	for _, path := range sortedKeys(aPaths) {
		aItem := aPaths[path]
		bItem, exists := bPaths[path]
		if !exists {
			for _, method := range types.Methods() {
				if aItem.Operation(method) == nil {
					continue
				}
				result.OperationChanges = append(result.OperationChanges, OperationChange{
					Type:        DiffTypeRemoved,
					Path:        path,
					Method:      method,
					Description: fmt.Sprintf("Removed %s %s", method, path),
				})
			}
			continue
		}
		d.diffPathItem(path, aItem, bItem, result)
	}

	for _, path := range sortedKeys(bPaths) {
		if _, exists := aPaths[path]; exists {
			continue
		}
		bItem := bPaths[path]
		for _, method := range types.Methods() {
			if bItem.Operation(method) == nil {
				continue
			}
			result.OperationChanges = append(result.OperationChanges, OperationChange{
				Type:        DiffTypeAdded,
				Path:        path,
				Method:      method,
				Description: fmt.Sprintf("Added %s %s", method, path),
			})
		}
	}
}

// sortedKeys returns the keys of a path map in sorted order.
func sortedKeys(paths map[string]types.PathItem) []string {
	keys := make([]string, 0, len(paths))
	for key := range paths {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// diffPathItem compares operations within a path item.
func (d *Differ) diffPathItem(path string, a, b types.PathItem, result *DiffResult) {
	for _, method := range types.Methods() {
		aOp := a.Operation(method)
		bOp := b.Operation(method)

		switch {
		case aOp == nil && bOp != nil:
			result.OperationChanges = append(result.OperationChanges, OperationChange{
				Type:        DiffTypeAdded,
				Path:        path,
				Method:      method,
				Description: fmt.Sprintf("Added %s %s", method, path),
			})
		case aOp != nil && bOp == nil:
			result.OperationChanges = append(result.OperationChanges, OperationChange{
				Type:        DiffTypeRemoved,
				Path:        path,
				Method:      method,
				Description: fmt.Sprintf("Removed %s %s", method, path),
			})
		case aOp != nil && bOp != nil:
			details, breaking := d.operationDetails(aOp, bOp)
			if len(details) > 0 {
				result.OperationChanges = append(result.OperationChanges, OperationChange{
					Type:        DiffTypeModified,
					Path:        path,
					Method:      method,
					Description: fmt.Sprintf("Modified %s %s", method, path),
					Details:     details,
					Breaking:    breaking,
				})
			}
		}
	}
}

// operationDetails reports the parameter, response, and security changes
// between two versions of an operation. The boolean is true when a change
// breaks existing consumers: a parameter was removed, or a parameter is
// newly required.
func (d *Differ) operationDetails(a, b *types.Operation) ([]string, bool) {
	var details []string
	breaking := false

	aParams := parametersByKey(a.Parameters)
	bParams := parametersByKey(b.Parameters)
	for _, key := range parameterKeys(b.Parameters) {
		aParam, existed := aParams[key]
		bParam := bParams[key]
		switch {
		case !existed && bParam.Required:
			details = append(details, fmt.Sprintf("required parameter %s added", key))
			breaking = true
		case !existed:
			details = append(details, fmt.Sprintf("parameter %s added", key))
		default:
			if detail, breaks := parameterModified(key, aParam, bParam); detail != "" {
				details = append(details, detail)
				breaking = breaking || breaks
			}
		}
	}
	for _, key := range parameterKeys(a.Parameters) {
		if _, exists := bParams[key]; !exists {
			details = append(details, fmt.Sprintf("parameter %s removed", key))
			breaking = true
		}
	}

	for _, code := range sortedResponseCodes(b.Responses) {
		if _, exists := a.Responses[code]; !exists {
			details = append(details, fmt.Sprintf("response %s added", code))
		}
	}
	for _, code := range sortedResponseCodes(a.Responses) {
		if _, exists := b.Responses[code]; !exists {
			details = append(details, fmt.Sprintf("response %s removed", code))
		}
	}

	if len(a.Security) != len(b.Security) {
		details = append(details, fmt.Sprintf("security requirements changed from %d to %d", len(a.Security), len(b.Security)))
	}

	if a.Summary != b.Summary || a.Description != b.Description ||
		a.OperationID != b.OperationID || a.Deprecated != b.Deprecated {
		details = append(details, "operation metadata changed")
	}

	return details, breaking
}

// parameterModified describes what changed between two versions of the same
// parameter, or returns "" when nothing diff-relevant changed. A location
// change shows up as a removal plus an addition instead, because the
// location is part of the parameter's identity. Becoming required is
// breaking.
func parameterModified(key string, a, b types.Parameter) (string, bool) {
	var changes []string
	if a.Required != b.Required {
		if b.Required {
			changes = append(changes, "now required")
		} else {
			changes = append(changes, "no longer required")
		}
	}
	if parameterType(a) != parameterType(b) {
		changes = append(changes, fmt.Sprintf("type changed from %s to %s", parameterType(a), parameterType(b)))
	}
	if len(changes) == 0 {
		return "", false
	}
	return fmt.Sprintf("parameter %s modified (%s)", key, strings.Join(changes, ", ")), !a.Required && b.Required
}

// parameterType names a parameter's schema type for diff messages.
func parameterType(p types.Parameter) string {
	if p.Schema == nil || p.Schema.Type == "" {
		return "unspecified"
	}
	return p.Schema.Type
}

// parameterKeys returns "name (in)" keys for a parameter list, preserving
// declaration order.
func parameterKeys(params []types.Parameter) []string {
	keys := make([]string, 0, len(params))
	for _, p := range params {
		keys = append(keys, fmt.Sprintf("%q in %s", p.Name, p.In))
	}
	return keys
}

// parametersByKey indexes a parameter list by its "name (in)" keys.
func parametersByKey(params []types.Parameter) map[string]types.Parameter {
	byKey := make(map[string]types.Parameter, len(params))
	for i, key := range parameterKeys(params) {
		byKey[key] = params[i]
	}
	return byKey
}

// sortedResponseCodes returns the response codes of an operation in sorted
// order.
func sortedResponseCodes(responses map[string]types.Response) []string {
	codes := make([]string, 0, len(responses))
	for code := range responses {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// diffSchemas compares the component schemas between two documents.
func (d *Differ) diffSchemas(a, b *types.OpenAPI, result *DiffResult) {
	aSchemas := map[string]*types.Schema{}
	bSchemas := map[string]*types.Schema{}

	if a != nil && a.Components != nil && a.Components.Schemas != nil {
		aSchemas = a.Components.Schemas
	}
	if b != nil && b.Components != nil && b.Components.Schemas != nil {
		bSchemas = b.Components.Schemas
	}

	for _, name := range sortedSchemaNames(aSchemas) {
		aSchema := aSchemas[name]
		bSchema, exists := bSchemas[name]
		if !exists {
			result.SchemaChanges = append(result.SchemaChanges, SchemaChange{
				Type:        DiffTypeRemoved,
				Name:        name,
				Description: fmt.Sprintf("Removed schema: %s", name),
			})
		} else if d.schemaModified(aSchema, bSchema) {
			result.SchemaChanges = append(result.SchemaChanges, SchemaChange{
				Type:        DiffTypeModified,
				Name:        name,
				Description: fmt.Sprintf("Modified schema: %s", name),
			})
		}
	}

	for _, name := range sortedSchemaNames(bSchemas) {
		if _, exists := aSchemas[name]; !exists {
			result.SchemaChanges = append(result.SchemaChanges, SchemaChange{
				Type:        DiffTypeAdded,
				Name:        name,
				Description: fmt.Sprintf("Added schema: %s", name),
			})
		}
	}
}

// sortedSchemaNames returns the names of a schema map in sorted order.
func sortedSchemaNames(schemas map[string]*types.Schema) []string {
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// schemaModified checks if a schema was modified.
func (d *Differ) schemaModified(a, b *types.Schema) bool {
	if a == nil || b == nil {
		return a != b
	}

	if a.Type != b.Type ||
		a.Format != b.Format ||
		a.Title != b.Title ||
		a.Description != b.Description ||
		a.Nullable != b.Nullable ||
		a.Deprecated != b.Deprecated {
		return true
	}

	if len(a.Properties) != len(b.Properties) {
		return true
	}

	if len(a.Required) != len(b.Required) {
		return true
	}

	if len(a.Enum) != len(b.Enum) {
		return true
	}

	// Annotation changes (extension keys) count as modifications.
	if len(a.Extensions) != len(b.Extensions) {
		return true
	}

	return false
}

// detectBreakingChanges checks if any changes are breaking: removed
// operations, removed schemas, and operation modifications flagged as
// breaking (removed or newly required parameters).
func (d *Differ) detectBreakingChanges(result *DiffResult) bool {
	for _, change := range result.OperationChanges {
		if change.Type == DiffTypeRemoved || change.Breaking {
			return true
		}
	}

	for _, change := range result.SchemaChanges {
		if change.Type == DiffTypeRemoved {
			return true
		}
	}

	return false
}

// BreakingOnly returns a copy of the result reduced to the changes that
// break existing consumers: removed operations and schemas, and operation
// modifications flagged as breaking. Document-level changes are dropped.
func (d *DiffResult) BreakingOnly() *DiffResult {
	filtered := &DiffResult{
		OperationChanges: []OperationChange{},
		SchemaChanges:    []SchemaChange{},
	}

	for _, change := range d.OperationChanges {
		if change.Type == DiffTypeRemoved || change.Breaking {
			filtered.OperationChanges = append(filtered.OperationChanges, change)
		}
	}
	for _, change := range d.SchemaChanges {
		if change.Type == DiffTypeRemoved {
			filtered.SchemaChanges = append(filtered.SchemaChanges, change)
		}
	}

	filtered.HasBreakingChanges = !filtered.IsEmpty()
	filtered.Summary = generateSummary(filtered)
	return filtered
}

// generateSummary creates a human-readable summary of changes.
func generateSummary(result *DiffResult) string {
	if result.IsEmpty() {
		return "No changes detected"
	}

	opAdded, opRemoved, opModified := 0, 0, 0
	for _, c := range result.OperationChanges {
		switch c.Type {
		case DiffTypeAdded:
			opAdded++
		case DiffTypeRemoved:
			opRemoved++
		case DiffTypeModified:
			opModified++
		}
	}

	schemaAdded, schemaRemoved, schemaModified := 0, 0, 0
	for _, c := range result.SchemaChanges {
		switch c.Type {
		case DiffTypeAdded:
			schemaAdded++
		case DiffTypeRemoved:
			schemaRemoved++
		case DiffTypeModified:
			schemaModified++
		}
	}

	var parts []string

	if len(result.InfoChanges) > 0 {
		parts = append(parts, fmt.Sprintf("%d document-level change(s)", len(result.InfoChanges)))
	}
	if opAdded > 0 {
		parts = append(parts, fmt.Sprintf("%d operation(s) added", opAdded))
	}
	if opRemoved > 0 {
		parts = append(parts, fmt.Sprintf("%d operation(s) removed", opRemoved))
	}
	if opModified > 0 {
		parts = append(parts, fmt.Sprintf("%d operation(s) modified", opModified))
	}
	if schemaAdded > 0 {
		parts = append(parts, fmt.Sprintf("%d schema(s) added", schemaAdded))
	}
	if schemaRemoved > 0 {
		parts = append(parts, fmt.Sprintf("%d schema(s) removed", schemaRemoved))
	}
	if schemaModified > 0 {
		parts = append(parts, fmt.Sprintf("%d schema(s) modified", schemaModified))
	}

	summary := strings.Join(parts, ", ")
	if result.HasBreakingChanges {
		summary += " [BREAKING CHANGES DETECTED]"
	}

	return summary
}

// FormatDiff returns a formatted string representation of the diff.
func FormatDiff(result *DiffResult) string {
	if result.IsEmpty() {
		return "No differences found."
	}

	var sb strings.Builder

	sb.WriteString("=== Description Diff ===\n\n")
	sb.WriteString(result.Summary)
	sb.WriteString("\n\n")

	if len(result.InfoChanges) > 0 {
		sb.WriteString("--- Document Changes ---\n")
		for _, c := range result.InfoChanges {
			sb.WriteString("~ ")
			sb.WriteString(c)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(result.OperationChanges) > 0 {
		sb.WriteString("--- Operation Changes ---\n")

		changes := make([]OperationChange, len(result.OperationChanges))
		copy(changes, result.OperationChanges)
		sort.Slice(changes, func(i, j int) bool {
			if changes[i].Path != changes[j].Path {
				return changes[i].Path < changes[j].Path
			}
			return changes[i].Method < changes[j].Method
		})

		for _, c := range changes {
			symbol := "  "
			switch c.Type {
			case DiffTypeAdded:
				symbol = "+ "
			case DiffTypeRemoved:
				symbol = "- "
			case DiffTypeModified:
				symbol = "~ "
			}
			sb.WriteString(fmt.Sprintf("%s%s %s\n", symbol, c.Method, c.Path))
			for _, detail := range c.Details {
				sb.WriteString(fmt.Sprintf("    %s\n", detail))
			}
		}
		sb.WriteString("\n")
	}

	if len(result.SchemaChanges) > 0 {
		sb.WriteString("--- Schema Changes ---\n")

		changes := make([]SchemaChange, len(result.SchemaChanges))
		copy(changes, result.SchemaChanges)
		sort.Slice(changes, func(i, j int) bool {
			return changes[i].Name < changes[j].Name
		})

		for _, c := range changes {
			symbol := "  "
			switch c.Type {
			case DiffTypeAdded:
				symbol = "+ "
			case DiffTypeRemoved:
				symbol = "- "
			case DiffTypeModified:
				symbol = "~ "
			}
			sb.WriteString(fmt.Sprintf("%s%s\n", symbol, c.Name))
		}
	}

	return sb.String()
}
