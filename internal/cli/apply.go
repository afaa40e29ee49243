// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/specforge/specforge/internal/config"
	"github.com/specforge/specforge/internal/filters"
	"github.com/specforge/specforge/internal/openapi"
	"github.com/specforge/specforge/internal/pipeline"
	"github.com/specforge/specforge/internal/scanner"
	"github.com/specforge/specforge/pkg/types"
)

var (
	applyDryRun       bool
	applyTokenURL     string
	applyIgnoreParams []string
)

var applyCmd = &cobra.Command{
	Use:   "apply [input]",
	Short: "Apply the filter pipeline to an API description",
	Long: `Apply the configured filter pipeline to an API description document.

The apply command reads the input document, runs every registered filter
over it, and writes the transformed document to the output file. Without
an output file the document is written to standard output.

When the input is a directory, every description document under it is
discovered and transformed, and the tree is mirrored under the output
directory with each document keeping its own format.

Example:
  specforge apply                             # Transform the configured input
  specforge apply api/openapi.yaml            # Transform a specific document
  specforge apply api/ -o public/             # Transform a whole tree
  specforge apply -o public/openapi.yaml      # Write to a specific file
  specforge apply -f json                     # Emit JSON instead of YAML
  specforge apply --dry-run                   # Preview without writing`,
	Args: cobra.MaximumNArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "preview the run without writing the output")
	applyCmd.Flags().StringVar(&applyTokenURL, "token-url", "", "OAuth2 token endpoint injected into the security scheme")
	applyCmd.Flags().StringSliceVar(&applyIgnoreParams, "ignore-param", nil, "additional parameter names removed from every operation")
}

func runApply(cmd *cobra.Command, args []string) error {
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
	if applyTokenURL != "" {
		cfg.Security.TokenURL = applyTokenURL
	}
	if len(applyIgnoreParams) > 0 {
		cfg.Filters.IgnoredParameters = append(cfg.Filters.IgnoredParameters, applyIgnoreParams...)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	printVerbose("Configuration:")
	printVerbose("  Input: %s", cfg.Input)
	printVerbose("  Output: %s", outputName(cfg.Output))
	printVerbose("  Format: %s", cfg.Format)
	printVerbose("  Token URL: %s", cfg.Security.TokenURL)
	if len(cfg.Filters.IgnoredParameters) > 0 {
		printVerbose("  Ignored parameters: %s", strings.Join(cfg.Filters.IgnoredParameters, ", "))
	}

	if info, err := os.Stat(cfg.Input); err == nil && info.IsDir() {
		return applyDirectory(cfg, scanner.Config{BasePath: cfg.Input})
	}

	doc, report, err := transformFile(cfg, cfg.Input)
	if err != nil {
		return err
	}

	printVerbose("Transformed %s: %d filter pass(es), %d operation(s), %d schema(s)",
		cfg.Input, report.DocumentFilters, report.Operations, report.Schemas)

	if applyDryRun {
		printInfo("Dry run mode - no files will be written")
		printInfo("Would write %s (%d operation(s), %d schema(s))",
			outputName(cfg.Output), report.Operations, report.Schemas)
		return nil
	}

	writer := openapi.NewWriter()
	if cfg.Output == "" {
		// The document itself goes to stdout, so no status output here.
		return writer.Write(doc, cmd.OutOrStdout(), cfg.Format)
	}

	if err := writer.WriteFile(doc, cfg.Output, cfg.Format); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	printInfo("Wrote %s", cfg.Output)

	return nil
}

// applyDirectory transforms every description document discovered under the
// input directory and mirrors the tree under the output directory. Each
// document keeps its own serialization format.
func applyDirectory(cfg *config.Config, scan scanner.Config) error {
	if cfg.Output == "" {
		return fmt.Errorf("directory input requires an output directory, set one with --output or in the config file")
	}

	docs, err := scanner.New(scan).Scan()
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", cfg.Input, err)
	}
	if len(docs) == 0 {
		return fmt.Errorf("no description documents found under %s", cfg.Input)
	}

	base, err := filepath.Abs(cfg.Input)
	if err != nil {
		return fmt.Errorf("failed to resolve input directory: %w", err)
	}

	if applyDryRun {
		printInfo("Dry run mode - no files will be written")
	}

	writer := openapi.NewWriter()
	for _, d := range docs {
		rel, err := filepath.Rel(base, d.Path)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", d.Path, err)
		}
		target := filepath.Join(cfg.Output, rel)

		doc, report, err := transformFile(cfg, d.Path)
		if err != nil {
			return fmt.Errorf("%s: %w", rel, err)
		}

		if applyDryRun {
			printInfo("Would write %s (%d operation(s), %d schema(s))",
				target, report.Operations, report.Schemas)
			continue
		}
		if err := writer.WriteFile(doc, target, d.Format); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
		printInfo("Wrote %s", target)
	}

	printVerbose("Transformed %d document(s) from %s", len(docs), cfg.Input)
	return nil
}

// transformFile reads the document at path and applies the standard filter
// set built from the configuration. The document is modified in place.
func transformFile(cfg *config.Config, path string) (*types.OpenAPI, *pipeline.Report, error) {
	doc, err := openapi.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	registry, err := filters.Standard(cfg.FilterOptions())
	if err != nil {
		return nil, nil, err
	}

	report, err := pipeline.New(registry).Run(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("transformation failed: %w", err)
	}

	return doc, report, nil
}

// outputName names the output target for status messages.
func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
