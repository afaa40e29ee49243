// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package pipeline

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds filters in registration order, grouped by application
// level. A filter implementing several level interfaces is registered at
// each of its levels. Registration order within a level is the execution
// order and never changes afterwards.
type Registry struct {
	mu         sync.RWMutex
	names      map[string]Filter
	documents  []DocumentFilter
	operations []OperationFilter
	schemas    []SchemaFilter
}

// NewRegistry creates an empty filter registry.
func NewRegistry() *Registry {
	return &Registry{
		names: make(map[string]Filter),
	}
}

// Register adds a filter to the registry.
// It returns an error if the filter is nil, unnamed, already registered,
// or implements no filter level.
func (r *Registry) Register(filter Filter) error {
	if filter == nil {
		return fmt.Errorf("cannot register nil filter")
	}

	name := filter.Name()
	if name == "" {
		return fmt.Errorf("filter name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.names[name]; exists {
		return fmt.Errorf("filter %q is already registered", name)
	}

	registered := false
	if f, ok := filter.(DocumentFilter); ok {
		r.documents = append(r.documents, f)
		registered = true
	}
	if f, ok := filter.(OperationFilter); ok {
		r.operations = append(r.operations, f)
		registered = true
	}
	if f, ok := filter.(SchemaFilter); ok {
		r.schemas = append(r.schemas, f)
		registered = true
	}
	if !registered {
		return fmt.Errorf("filter %q implements no filter level", name)
	}

	r.names[name] = filter
	return nil
}

// MustRegister adds a filter to the registry, panicking on error.
// This is useful when assembling a fixed registry where registration
// failures are programming errors.
func (r *Registry) MustRegister(filter Filter) {
	if err := r.Register(filter); err != nil {
		panic(fmt.Sprintf("failed to register filter: %v", err))
	}
}

// Documents returns the document-level filters in registration order.
func (r *Registry) Documents() []DocumentFilter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]DocumentFilter, len(r.documents))
	copy(out, r.documents)
	return out
}

// Operations returns the operation-level filters in registration order.
func (r *Registry) Operations() []OperationFilter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]OperationFilter, len(r.operations))
	copy(out, r.operations)
	return out
}

// Schemas returns the schema-level filters in registration order.
func (r *Registry) Schemas() []SchemaFilter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]SchemaFilter, len(r.schemas))
	copy(out, r.schemas)
	return out
}

// List returns a sorted list of registered filter names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.names))
	for name := range r.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered filters.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.names)
}

// Has checks if a filter is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.names[name]
	return exists
}
