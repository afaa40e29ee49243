// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nameOnlyFilter implements Filter but no filter level.
type nameOnlyFilter struct {
	name string
}

func (f *nameOnlyFilter) Name() string { return f.name }

// dualLevelFilter participates at both document and operation level.
type dualLevelFilter struct {
	name string
}

func (f *dualLevelFilter) Name() string                              { return f.name }
func (f *dualLevelFilter) ApplyDocument(*DocumentContext) error      { return nil }
func (f *dualLevelFilter) ApplyOperation(*OperationContext) error    { return nil }

func TestRegistry_Register(t *testing.T) {
	tests := []struct {
		name        string
		filter      Filter
		wantErr     bool
		errContains string
	}{
		{
			name:   "register valid filter",
			filter: OperationFunc("test-filter", func(*OperationContext) error { return nil }),
		},
		{
			name:        "register nil filter",
			filter:      nil,
			wantErr:     true,
			errContains: "nil filter",
		},
		{
			name:        "register empty name",
			filter:      OperationFunc("", func(*OperationContext) error { return nil }),
			wantErr:     true,
			errContains: "name cannot be empty",
		},
		{
			name:        "register filter without level",
			filter:      &nameOnlyFilter{name: "levelless"},
			wantErr:     true,
			errContains: "implements no filter level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			err := reg.Register(tt.filter)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				require.NoError(t, err)
				assert.True(t, reg.Has(tt.filter.Name()))
				assert.Equal(t, 1, reg.Count())
			}
		})
	}
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(OperationFunc("dup", func(*OperationContext) error { return nil })))

	err := reg.Register(OperationFunc("dup", func(*OperationContext) error { return nil }))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistry_OrderPreserved(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(OperationFunc("third", func(*OperationContext) error { return nil }))
	reg.MustRegister(OperationFunc("first", func(*OperationContext) error { return nil }))
	reg.MustRegister(OperationFunc("second", func(*OperationContext) error { return nil }))

	ops := reg.Operations()
	require.Len(t, ops, 3)
	assert.Equal(t, "third", ops[0].Name())
	assert.Equal(t, "first", ops[1].Name())
	assert.Equal(t, "second", ops[2].Name())

	// List is sorted, independent of registration order.
	assert.Equal(t, []string{"first", "second", "third"}, reg.List())
}

func TestRegistry_MultiLevelFilter(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(&dualLevelFilter{name: "both"})

	assert.Len(t, reg.Documents(), 1)
	assert.Len(t, reg.Operations(), 1)
	assert.Empty(t, reg.Schemas())
	assert.Equal(t, 1, reg.Count())
}

func TestRegistry_MustRegisterPanics(t *testing.T) {
	reg := NewRegistry()
	assert.Panics(t, func() { reg.MustRegister(nil) })
}
