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

var (
	diffSummary      bool
	diffExitCode     bool
	diffBreakingOnly bool
	diffCI           bool
)

var diffCmd = &cobra.Command{
	Use:   "diff [file1] [file2]",
	Short: "Compare two API descriptions",
	Long: `Compare two API descriptions and show the differences.

If two files are provided, they are compared directly. If one file is
provided, it is compared against its own transformed form, showing exactly
what the filter pipeline would change. With no files, the configured input
document is compared against its transformed form.

Example:
  specforge diff                          # Show what apply would change
  specforge diff api/openapi.yaml         # Show changes for a specific file
  specforge diff old.yaml new.yaml        # Compare two files
  specforge diff --summary                # Print only the summary line
  specforge diff --breaking-only          # Show only breaking changes
  specforge diff --exit-code              # Exit 1 when the documents differ
  specforge diff --ci old.yaml new.yaml   # Exit 1 on breaking changes`,
	Args: cobra.MaximumNArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().BoolVar(&diffSummary, "summary", false, "print only the change summary")
	diffCmd.Flags().BoolVar(&diffExitCode, "exit-code", false, "exit with 1 when the documents differ")
	diffCmd.Flags().BoolVar(&diffBreakingOnly, "breaking-only", false, "show only changes that break existing consumers")
	diffCmd.Flags().BoolVar(&diffCI, "ci", false, "CI mode: exit 1 on breaking changes")
}

func runDiff(cmd *cobra.Command, args []string) error {
	var result *openapi.DiffResult
	var err error

	if len(args) == 2 {
		result, err = diffFiles(args[0], args[1])
	} else {
		input := ""
		if len(args) == 1 {
			input = args[0]
		}
		result, err = diffAgainstTransformed(input)
	}
	if err != nil {
		if diffCI {
			printError("%v", err)
			os.Exit(ExitCodeCheckError)
		}
		return err
	}

	breaking := result.HasBreakingChanges
	if diffBreakingOnly {
		result = result.BreakingOnly()
	}

	if diffSummary {
		fmt.Fprintln(cmd.OutOrStdout(), result.Summary)
	} else {
		fmt.Fprint(cmd.OutOrStdout(), openapi.FormatDiff(result))
	}

	if diffCI {
		if breaking {
			os.Exit(ExitCodeDifference)
		}
		os.Exit(ExitCodeMatch)
	}

	if diffExitCode && !result.IsEmpty() {
		return fmt.Errorf("documents differ")
	}

	return nil
}

// diffFiles compares two description files directly.
func diffFiles(pathA, pathB string) (*openapi.DiffResult, error) {
	docA, err := openapi.ReadFile(pathA)
	if err != nil {
		return nil, err
	}
	docB, err := openapi.ReadFile(pathB)
	if err != nil {
		return nil, err
	}

	printVerbose("Comparing %s against %s", pathA, pathB)
	return openapi.NewDiffer().Diff(docA, docB)
}

// diffAgainstTransformed compares a document against the result of running
// the filter pipeline over it.
func diffAgainstTransformed(input string) (*openapi.DiffResult, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if input != "" {
		cfg.Input = input
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// The pipeline mutates in place, so the baseline is a second parse.
	baseline, err := openapi.ReadFile(cfg.Input)
	if err != nil {
		return nil, err
	}
	transformed, _, err := transformFile(cfg, cfg.Input)
	if err != nil {
		return nil, err
	}

	printVerbose("Comparing %s against its transformed form", cfg.Input)
	return openapi.NewDiffer().Diff(baseline, transformed)
}
