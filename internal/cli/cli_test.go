// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs a command and returns output and error.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	output, err := executeCommand(rootCmd, "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "specforge")
	assert.Contains(t, output, "publishable OpenAPI documents")
	assert.Contains(t, output, "Available Commands")
	assert.Contains(t, output, "apply")
	assert.Contains(t, output, "init")
	assert.Contains(t, output, "check")
	assert.Contains(t, output, "diff")
	assert.Contains(t, output, "convert")
	assert.Contains(t, output, "watch")
	assert.Contains(t, output, "serve")
	assert.Contains(t, output, "print")
	assert.Contains(t, output, "version")
}

func TestRootCommand_GlobalFlags(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		expected string
	}{
		{
			name:     "config flag short",
			flag:     "-c",
			expected: "config file",
		},
		{
			name:     "config flag long",
			flag:     "--config",
			expected: "config file",
		},
		{
			name:     "output flag short",
			flag:     "-o",
			expected: "output file path",
		},
		{
			name:     "output flag long",
			flag:     "--output",
			expected: "output file path",
		},
		{
			name:     "format flag short",
			flag:     "-f",
			expected: "output format",
		},
		{
			name:     "format flag long",
			flag:     "--format",
			expected: "output format",
		},
		{
			name:     "verbose flag short",
			flag:     "-v",
			expected: "verbose output",
		},
		{
			name:     "verbose flag long",
			flag:     "--verbose",
			expected: "verbose output",
		},
		{
			name:     "quiet flag short",
			flag:     "-q",
			expected: "suppress",
		},
		{
			name:     "quiet flag long",
			flag:     "--quiet",
			expected: "suppress",
		},
	}

	output, err := executeCommand(rootCmd, "--help")
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, output, tt.flag)
			assert.Contains(t, output, tt.expected)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	output, err := executeCommand(rootCmd, "version")
	require.NoError(t, err)

	assert.Contains(t, output, "specforge")
	assert.Contains(t, output, "Commit")
	assert.Contains(t, output, "Build Date")
	assert.Contains(t, output, "Go Version")
	assert.Contains(t, output, "OS/Arch")
}

func TestInitCommand_Help(t *testing.T) {
	output, err := executeCommand(rootCmd, "init", "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "Initialize a new specforge configuration file")
	assert.Contains(t, output, "--force")
	assert.Contains(t, output, "--sample")
	assert.Contains(t, output, "--token-url")
}

func TestApplyCommand_Help(t *testing.T) {
	output, err := executeCommand(rootCmd, "apply", "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "Apply the configured filter pipeline")
	assert.Contains(t, output, "--dry-run")
	assert.Contains(t, output, "--token-url")
	assert.Contains(t, output, "--ignore-param")
}

func TestCheckCommand_Help(t *testing.T) {
	output, err := executeCommand(rootCmd, "check", "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "Check validates the input document")
	assert.Contains(t, output, "--strict")
	assert.Contains(t, output, "--ignore")
	assert.Contains(t, output, "--ci")
	assert.Contains(t, output, "--schema")
}

func TestDiffCommand_Help(t *testing.T) {
	output, err := executeCommand(rootCmd, "diff", "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "Compare two API descriptions")
	assert.Contains(t, output, "--summary")
	assert.Contains(t, output, "--exit-code")
	assert.Contains(t, output, "--breaking-only")
	assert.Contains(t, output, "--ci")
}

func TestConvertCommand_Help(t *testing.T) {
	output, err := executeCommand(rootCmd, "convert", "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "Swagger 2.0")
	assert.Contains(t, output, "--no-transform")
}

func TestWatchCommand_Help(t *testing.T) {
	output, err := executeCommand(rootCmd, "watch", "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "Watch the input document")
	assert.Contains(t, output, "--debounce")
}

func TestServeCommand_Help(t *testing.T) {
	output, err := executeCommand(rootCmd, "serve", "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "Serve the transformed API description")
	assert.Contains(t, output, "--addr")
	assert.Contains(t, output, "--metrics")
	assert.Contains(t, output, "--watch")
	assert.Contains(t, output, "--jwt-secret")
}

func TestPrintCommand_Help(t *testing.T) {
	output, err := executeCommand(rootCmd, "print", "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "Print the transformed API description")
	assert.Contains(t, output, "--raw")
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	assert.Contains(t, info, "specforge")
	assert.Contains(t, info, "commit")
	assert.Contains(t, info, "built")
}
