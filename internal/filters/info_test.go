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

func TestInfoOverride_ReplacesTitleAndVersion(t *testing.T) {
	doc := &types.OpenAPI{
		Info: types.Info{Title: "Generated", Version: "0.0.0", Description: "kept"},
	}

	f := NewInfoOverride("Widgets API", "v2")
	assert.Equal(t, "info-override", f.Name())
	require.NoError(t, f.ApplyDocument(&pipeline.DocumentContext{Document: doc}))

	assert.Equal(t, "Widgets API", doc.Info.Title)
	assert.Equal(t, "v2", doc.Info.Version)
	assert.Equal(t, "kept", doc.Info.Description)
}
