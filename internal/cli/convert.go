// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/specforge/specforge/internal/bridge"
	"github.com/specforge/specforge/internal/config"
	"github.com/specforge/specforge/internal/openapi"
	"github.com/specforge/specforge/pkg/types"
)

var convertNoTransform bool

var convertCmd = &cobra.Command{
	Use:   "convert [input]",
	Short: "Convert the transformed description to Swagger 2.0",
	Long: `Convert an API description to a Swagger 2.0 document.

The input is run through the filter pipeline first, then serialized and
reparsed through a validating loader before the down-conversion, so the
emitted Swagger 2.0 document always reflects a valid transformed
description. Use --no-transform to convert the input as-is.

Example:
  specforge convert                        # Convert the configured input
  specforge convert -o swagger.json        # Write to a specific file
  specforge convert -f yaml                # Emit YAML instead of JSON
  specforge convert --no-transform         # Skip the filter pipeline`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().BoolVar(&convertNoTransform, "no-transform", false, "convert the input without applying filters")
}

func runConvert(cmd *cobra.Command, args []string) error {
	// Load config
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Apply command-line overrides
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if output != "" {
		cfg.Output = output
	}
	if format != "" {
		cfg.Format = format
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	doc, err := convertSource(cfg)
	if err != nil {
		return err
	}

	var data []byte
	switch cfg.Format {
	case "", "yaml":
		data, err = bridge.V2YAML(ctx, doc)
	case "json":
		data, err = bridge.V2JSON(ctx, doc)
	default:
		return fmt.Errorf("unsupported format: %s", cfg.Format)
	}
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if dir := filepath.Dir(cfg.Output); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(cfg.Output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	printInfo("Wrote %s", cfg.Output)

	return nil
}

// convertSource returns the document to down-convert, transformed unless
// --no-transform was given.
func convertSource(cfg *config.Config) (*types.OpenAPI, error) {
	if convertNoTransform {
		return openapi.ReadFile(cfg.Input)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	doc, _, err := transformFile(cfg, cfg.Input)
	return doc, err
}
