// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specforge/specforge/internal/config"
	"github.com/specforge/specforge/internal/openapi"
)

func resetInitFlags(t *testing.T) {
	t.Helper()
	resetState(t)

	oldForce, oldInteractive := initForce, initInteractive
	oldTitle, oldVersion, oldName := initTitle, initVersion, initName
	oldTokenURL, oldSample := initTokenURL, initSample
	t.Cleanup(func() {
		initForce, initInteractive = oldForce, oldInteractive
		initTitle, initVersion, initName = oldTitle, oldVersion, oldName
		initTokenURL, initSample = oldTokenURL, oldSample
	})

	initForce, initInteractive = false, false
	initTitle, initVersion, initName = "", "", ""
	initTokenURL, initSample = "", false
}

func TestDetectProjectInfo(t *testing.T) {
	tests := []struct {
		name         string
		goModContent string
		wantTitle    string
		wantName     string
		wantModule   string
	}{
		{
			name: "simple module",
			goModContent: `module github.com/user/myapp

go 1.21
`,
			wantTitle:  "Myapp API",
			wantName:   "myapp",
			wantModule: "github.com/user/myapp",
		},
		{
			name: "module with hyphens",
			goModContent: `module github.com/user/my-awesome-api

go 1.21
`,
			wantTitle:  "My Awesome Api API",
			wantName:   "my-awesome-api",
			wantModule: "github.com/user/my-awesome-api",
		},
		{
			name: "module with underscores",
			goModContent: `module github.com/user/my_api_service

go 1.21
`,
			wantTitle:  "My Api Service API",
			wantName:   "my-api-service",
			wantModule: "github.com/user/my_api_service",
		},
		{
			name: "simple name",
			goModContent: `module widgets

go 1.21
`,
			wantTitle:  "Widgets API",
			wantName:   "widgets",
			wantModule: "widgets",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			goModPath := filepath.Join(tmpDir, "go.mod")
			err := os.WriteFile(goModPath, []byte(tt.goModContent), 0o644)
			require.NoError(t, err)

			info := detectProjectInfo(tmpDir)

			assert.Equal(t, tt.wantModule, info.Module)
			assert.Equal(t, tt.wantTitle, info.Title)
			assert.Equal(t, tt.wantName, info.Name)
		})
	}
}

func TestDetectProjectInfo_NoGoMod(t *testing.T) {
	tmpDir := t.TempDir()

	info := detectProjectInfo(tmpDir)

	assert.Empty(t, info.Module)
	assert.Empty(t, info.Title)
	assert.Empty(t, info.Name)
}

func TestDetectInput(t *testing.T) {
	tmpDir := t.TempDir()

	sample := openapi.Sample()
	writer := openapi.NewWriter()
	require.NoError(t, writer.WriteFile(sample, filepath.Join(tmpDir, "api", "openapi.yaml"), "yaml"))
	require.NoError(t, writer.WriteFile(sample, filepath.Join(tmpDir, "api", "v2", "openapi.yaml"), "yaml"))

	// Non-description YAML must not win even at the root
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "values.yaml"), []byte("replicas: 3\n"), 0o644))

	assert.Equal(t, "api/openapi.yaml", detectInput(tmpDir))
}

func TestDetectInput_PrefersShallowest(t *testing.T) {
	tmpDir := t.TempDir()

	sample := openapi.Sample()
	writer := openapi.NewWriter()
	require.NoError(t, writer.WriteFile(sample, filepath.Join(tmpDir, "openapi.yaml"), "yaml"))
	require.NoError(t, writer.WriteFile(sample, filepath.Join(tmpDir, "api", "openapi.yaml"), "yaml"))

	assert.Equal(t, "openapi.yaml", detectInput(tmpDir))
}

func TestDetectInput_Empty(t *testing.T) {
	assert.Equal(t, "", detectInput(t.TempDir()))
}

func TestBuildConfigYAML(t *testing.T) {
	cfg := config.Default()
	cfg.Security.TokenURL = "https://auth.example.com/token"
	cfg.Output = "dist/openapi.yaml"

	content := buildConfigYAML(cfg)

	assert.Contains(t, content, "# specforge configuration file")
	assert.Contains(t, content, "input: openapi.yaml")
	assert.Contains(t, content, "output: dist/openapi.yaml")
	assert.Contains(t, content, "tokenUrl: https://auth.example.com/token")
}

func TestInitCommand_CreatesConfig(t *testing.T) {
	resetInitFlags(t)
	dir := t.TempDir()
	chdir(t, dir)

	goMod := "module github.com/example/widget-service\n\ngo 1.21\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(goMod), 0o644))

	initTokenURL = "https://auth.example.com/token"
	require.NoError(t, runInit(initCmd, nil))

	cfg, err := config.Load(filepath.Join(dir, "specforge.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Widget Service API", cfg.API.Title)
	assert.Equal(t, "widget-service", cfg.API.Name)
	assert.Equal(t, "https://auth.example.com/token", cfg.Security.TokenURL)
}

func TestInitCommand_ExistingConfig(t *testing.T) {
	resetInitFlags(t)
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "specforge.yaml"), []byte("input: x.yaml\n"), 0o644))

	err := runInit(initCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	initForce = true
	assert.NoError(t, runInit(initCmd, nil))
}

func TestInitCommand_FlagOverrides(t *testing.T) {
	resetInitFlags(t)
	dir := t.TempDir()
	chdir(t, dir)

	initTitle = "Gadget API"
	initVersion = "v3"
	initName = "gadgets"
	require.NoError(t, runInit(initCmd, nil))

	cfg, err := config.Load(filepath.Join(dir, "specforge.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Gadget API", cfg.API.Title)
	assert.Equal(t, "v3", cfg.API.Version)
	assert.Equal(t, "gadgets", cfg.API.Name)
}

func TestInitCommand_DetectsExistingDocument(t *testing.T) {
	resetInitFlags(t)
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, openapi.NewWriter().WriteFile(openapi.Sample(), filepath.Join(dir, "api", "openapi.yaml"), "yaml"))

	require.NoError(t, runInit(initCmd, nil))

	cfg, err := config.Load(filepath.Join(dir, "specforge.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "api/openapi.yaml", cfg.Input)
}

func TestInitCommand_Sample(t *testing.T) {
	resetInitFlags(t)
	dir := t.TempDir()
	chdir(t, dir)

	initSample = true
	require.NoError(t, runInit(initCmd, nil))

	doc, err := openapi.ReadFile(filepath.Join(dir, "openapi.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Widgets", doc.Info.Title)
	assert.NotEmpty(t, doc.Paths)
}

func TestInitCommand_SampleKeepsExisting(t *testing.T) {
	resetInitFlags(t)
	dir := t.TempDir()
	chdir(t, dir)

	original := "openapi: \"3.0.3\"\ninfo:\n  title: Mine\n  version: \"1.0\"\npaths: {}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "openapi.yaml"), []byte(original), 0o644))

	initSample = true
	require.NoError(t, runInit(initCmd, nil))

	doc, err := openapi.ReadFile(filepath.Join(dir, "openapi.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Mine", doc.Info.Title)
}
