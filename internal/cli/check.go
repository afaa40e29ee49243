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
	"github.com/specforge/specforge/internal/openapi"
)

// Exit codes for check command
const (
	ExitCodeMatch      = 0 // Document is valid and the published output is current
	ExitCodeDifference = 1 // Document is invalid or the published output is stale
	ExitCodeCheckError = 2 // Error during analysis
)

var (
	checkStrict bool
	checkIgnore []string
	checkCI     bool
	checkSchema string
)

var checkCmd = &cobra.Command{
	Use:   "check [input]",
	Short: "Check the input document and the published output",
	Long: `Check validates the input document and verifies the published output.

The input is validated against the OpenAPI document schema and checked for
dangling component references. When an output file is configured, the input
is transformed and compared against it, so a stale published document is
caught before it ships. It's useful for CI pipelines.

Exit codes:
  0  Document is valid and the published output is current
  1  Document is invalid or the published output is stale
  2  Error during analysis

Example:
  specforge check                     # Validate input and verify output
  specforge check --strict            # Fail on any difference (default)
  specforge check --ci                # CI mode with appropriate exit codes
  specforge check --ignore "/debug/*" # Ignore matching paths in comparison
  specforge check --schema meta.json  # Validate against a custom schema`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", true, "fail on any difference")
	checkCmd.Flags().StringSliceVar(&checkIgnore, "ignore", nil, "patterns to ignore in comparison (paths, schema names)")
	checkCmd.Flags().BoolVar(&checkCI, "ci", false, "CI mode: use exit codes for status")
	checkCmd.Flags().StringVar(&checkSchema, "schema", "", "JSON Schema file to validate the document against")
}

func runCheck(cmd *cobra.Command, args []string) error {
	// Load config
	cfg, err := config.Load(cfgFile)
	if err != nil {
		if checkCI {
			os.Exit(ExitCodeCheckError)
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Apply command-line overrides
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if output != "" {
		cfg.Output = output
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		if checkCI {
			os.Exit(ExitCodeCheckError)
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	printVerbose("Check configuration:")
	printVerbose("  Strict mode: %t", checkStrict)
	printVerbose("  CI mode: %t", checkCI)
	if len(checkIgnore) > 0 {
		printVerbose("  Ignored patterns: %s", strings.Join(checkIgnore, ", "))
	}
	printVerbose("  Input: %s", cfg.Input)
	printVerbose("  Output: %s", outputName(cfg.Output))

	// Validate the input document against the document schema
	if err := validateDocument(cfg.Input); err != nil {
		printError("%v", err)
		if checkCI {
			os.Exit(ExitCodeDifference)
		}
		return fmt.Errorf("document is not valid: %s", cfg.Input)
	}

	doc, err := openapi.ReadFile(cfg.Input)
	if err != nil {
		if checkCI {
			os.Exit(ExitCodeCheckError)
		}
		return fmt.Errorf("failed to read input document: %w", err)
	}

	// Structural checks the document schema cannot express, and the floor
	// when --schema supplies a permissive override
	if problems := openapi.CheckStructure(doc); len(problems) > 0 {
		printError("Structural problems in %s:", cfg.Input)
		for _, p := range problems {
			printInfo("  - %s", p)
		}
		if checkCI {
			os.Exit(ExitCodeDifference)
		}
		return fmt.Errorf("document has %d structural problem(s)", len(problems))
	}

	// Check for dangling component references
	if dangling := openapi.CheckRefs(doc); len(dangling) > 0 {
		printError("Dangling references in %s:", cfg.Input)
		for _, ref := range dangling {
			printInfo("  - %s", ref)
		}
		if checkCI {
			os.Exit(ExitCodeDifference)
		}
		return fmt.Errorf("document has %d dangling reference(s)", len(dangling))
	}

	// Without a published output there is nothing to compare against
	if cfg.Output == "" {
		printInfo("Document is valid: %s", cfg.Input)
		if checkCI {
			os.Exit(ExitCodeMatch)
		}
		return nil
	}

	// Check if the published output exists
	if _, err := os.Stat(cfg.Output); os.IsNotExist(err) {
		printError("Published document not found: %s", cfg.Output)
		printInfo("Run 'specforge apply' first to create it")
		if checkCI {
			os.Exit(ExitCodeDifference)
		}
		return fmt.Errorf("published document not found: %s", cfg.Output)
	}

	// Read the published document
	published, err := openapi.ReadFile(cfg.Output)
	if err != nil {
		if checkCI {
			os.Exit(ExitCodeCheckError)
		}
		return fmt.Errorf("failed to read published document: %w", err)
	}

	// Transform the input as apply would
	transformed, _, err := transformFile(cfg, cfg.Input)
	if err != nil {
		if checkCI {
			os.Exit(ExitCodeCheckError)
		}
		return err
	}

	// Compare the published document with the fresh transformation
	differ := openapi.NewDiffer()
	diffResult, err := differ.Diff(published, transformed)
	if err != nil {
		if checkCI {
			os.Exit(ExitCodeCheckError)
		}
		return fmt.Errorf("failed to compare documents: %w", err)
	}

	// Apply ignore patterns
	diffResult = applyIgnorePatterns(diffResult, checkIgnore)

	// Report results
	if diffResult.IsEmpty() {
		printInfo("Published document is in sync with %s", cfg.Input)
		if checkCI {
			os.Exit(ExitCodeMatch)
		}
		return nil
	}

	// Print differences
	printInfo("Published document is out of date:\n")
	printInfo(diffResult.Summary)
	printInfo("")

	// Print detailed changes
	if len(diffResult.InfoChanges) > 0 {
		printInfo("Document changes:")
		for _, change := range diffResult.InfoChanges {
			printInfo("  ~ %s", change)
		}
		printInfo("")
	}

	if len(diffResult.OperationChanges) > 0 {
		printInfo("Operation changes:")
		for _, change := range diffResult.OperationChanges {
			symbol := getChangeSymbol(change.Type)
			printInfo("  %s %s %s", symbol, change.Method, change.Path)
		}
		printInfo("")
	}

	if len(diffResult.SchemaChanges) > 0 {
		printInfo("Schema changes:")
		for _, change := range diffResult.SchemaChanges {
			symbol := getChangeSymbol(change.Type)
			printInfo("  %s %s", symbol, change.Name)
		}
		printInfo("")
	}

	if diffResult.HasBreakingChanges {
		printError("Breaking changes detected!")
	}

	printInfo("Run 'specforge apply' to update the published document")

	if checkStrict || (checkCI && !diffResult.IsEmpty()) {
		if checkCI {
			os.Exit(ExitCodeDifference)
		}
		return fmt.Errorf("published document differs from transformed input")
	}

	return nil
}

// validateDocument validates the raw document bytes against the OpenAPI
// document schema, or against the schema given with --schema.
func validateDocument(path string) error {
	var validator *openapi.Validator
	var err error
	if checkSchema != "" {
		validator, err = openapi.NewValidatorFromFile(checkSchema)
	} else {
		validator, err = openapi.NewValidator()
	}
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	// The validator wants JSON; YAML input goes through the parser first.
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		doc, err := openapi.Parse(data, "yaml")
		if err != nil {
			return err
		}
		return validator.Validate(doc)
	default:
		return validator.ValidateBytes(data)
	}
}

// applyIgnorePatterns filters out changes that match ignore patterns.
func applyIgnorePatterns(result *openapi.DiffResult, patterns []string) *openapi.DiffResult {
	if len(patterns) == 0 {
		return result
	}

	filtered := &openapi.DiffResult{
		InfoChanges:      result.InfoChanges,
		OperationChanges: make([]openapi.OperationChange, 0),
		SchemaChanges:    make([]openapi.SchemaChange, 0),
	}

	// Filter operation changes
	for _, change := range result.OperationChanges {
		if !matchesAnyPattern(change.Path, patterns) {
			filtered.OperationChanges = append(filtered.OperationChanges, change)
		}
	}

	// Filter schema changes
	for _, change := range result.SchemaChanges {
		if !matchesAnyPattern(change.Name, patterns) {
			filtered.SchemaChanges = append(filtered.SchemaChanges, change)
		}
	}

	// Recalculate breaking changes
	for _, change := range filtered.OperationChanges {
		if change.Type == openapi.DiffTypeRemoved || change.Breaking {
			filtered.HasBreakingChanges = true
			break
		}
	}
	if !filtered.HasBreakingChanges {
		for _, change := range filtered.SchemaChanges {
			if change.Type == openapi.DiffTypeRemoved {
				filtered.HasBreakingChanges = true
				break
			}
		}
	}

	// Regenerate summary
	filtered.Summary = generateFilteredSummary(filtered)

	return filtered
}

// matchesAnyPattern checks if a string matches any of the given patterns.
func matchesAnyPattern(s string, patterns []string) bool {
	for _, pattern := range patterns {
		// Simple prefix/suffix matching
		if strings.HasPrefix(pattern, "*") {
			if strings.HasSuffix(s, pattern[1:]) {
				return true
			}
		} else if strings.HasSuffix(pattern, "*") {
			if strings.HasPrefix(s, pattern[:len(pattern)-1]) {
				return true
			}
		} else if strings.Contains(pattern, "*") {
			// Use filepath.Match for glob patterns
			if matched, _ := filepath.Match(pattern, s); matched {
				return true
			}
		} else {
			// Exact match
			if s == pattern {
				return true
			}
		}
	}
	return false
}

// generateFilteredSummary generates a summary for filtered results.
func generateFilteredSummary(result *openapi.DiffResult) string {
	if result.IsEmpty() {
		return "No changes detected (after applying filters)"
	}

	var parts []string

	if len(result.InfoChanges) > 0 {
		parts = append(parts, fmt.Sprintf("%d document-level change(s)", len(result.InfoChanges)))
	}

	opAdded, opRemoved, opModified := 0, 0, 0
	for _, c := range result.OperationChanges {
		switch c.Type {
		case openapi.DiffTypeAdded:
			opAdded++
		case openapi.DiffTypeRemoved:
			opRemoved++
		case openapi.DiffTypeModified:
			opModified++
		}
	}

	schemaAdded, schemaRemoved, schemaModified := 0, 0, 0
	for _, c := range result.SchemaChanges {
		switch c.Type {
		case openapi.DiffTypeAdded:
			schemaAdded++
		case openapi.DiffTypeRemoved:
			schemaRemoved++
		case openapi.DiffTypeModified:
			schemaModified++
		}
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

// getChangeSymbol returns a symbol for the change type.
func getChangeSymbol(t openapi.DiffType) string {
	switch t {
	case openapi.DiffTypeAdded:
		return "+"
	case openapi.DiffTypeRemoved:
		return "-"
	case openapi.DiffTypeModified:
		return "~"
	default:
		return " "
	}
}
