// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/specforge/specforge/internal/config"
	"github.com/specforge/specforge/internal/openapi"
)

var printRaw bool

var printCmd = &cobra.Command{
	Use:   "print [input]",
	Short: "Print the transformed API description to stdout",
	Long: `Print the transformed API description to standard output.

The input document is run through the filter pipeline and the result is
printed. With --raw the input file is printed as-is, without transformation.

This is useful for piping the output to other tools or for quick inspection.

Example:
  specforge print                     # Transform and print the configured input
  specforge print api/openapi.yaml    # Transform and print a specific file
  specforge print -f json             # Print in JSON format
  specforge print --raw               # Print the input without transforming
  specforge print | jq '.paths'       # Pipe to jq for processing`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrint,
}

func init() {
	printCmd.Flags().BoolVar(&printRaw, "raw", false, "print the input document without transforming it")
}

func runPrint(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if format != "" {
		cfg.Format = format
	}

	if printRaw {
		data, err := os.ReadFile(cfg.Input)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	doc, _, err := transformFile(cfg, cfg.Input)
	if err != nil {
		return err
	}

	return openapi.NewWriter().Write(doc, cmd.OutOrStdout(), cfg.Format)
}
