// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/specforge/specforge/internal/config"
	"github.com/specforge/specforge/internal/openapi"
	"github.com/specforge/specforge/internal/scanner"
	"github.com/specforge/specforge/internal/watch"
)

var watchDebounce int

var watchCmd = &cobra.Command{
	Use:   "watch [input]",
	Short: "Watch the input document and re-apply on changes",
	Long: `Watch the input document and re-apply the filter pipeline on changes.

This command monitors the input document and rewrites the output whenever
the input is modified. It's useful during development to keep the published
document in sync with the one your tooling generates.

When the input is a directory, every description document under it is
watched and the whole tree is re-applied on changes; the watch.include and
watch.exclude configuration patterns narrow which files count.

Rapid successive changes are coalesced, so a save storm triggers a single
run. A failed run is reported and watching continues.

Example:
  specforge watch                         # Watch the configured input
  specforge watch api/openapi.yaml        # Watch a specific document
  specforge watch api/ -o public/         # Watch and re-apply a whole tree
  specforge watch --debounce 1000         # Wait 1s before re-applying`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&watchDebounce, "debounce", 0, "debounce duration in milliseconds")
}

func runWatch(cmd *cobra.Command, args []string) error {
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
	if watchDebounce > 0 {
		cfg.Watch.Debounce = watchDebounce
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Output == "" {
		return fmt.Errorf("watch requires an output path, set one with --output or in the config file")
	}

	info, err := os.Stat(cfg.Input)
	if err != nil {
		return fmt.Errorf("cannot watch %s: %w", cfg.Input, err)
	}

	printVerbose("Watch configuration:")
	printVerbose("  Input: %s", cfg.Input)
	printVerbose("  Output: %s", cfg.Output)
	printVerbose("  Debounce: %dms", cfg.Watch.Debounce)

	var run func()
	if info.IsDir() {
		scan := scanner.Config{
			BasePath:        cfg.Input,
			IncludePatterns: cfg.Watch.Include,
			ExcludePatterns: cfg.Watch.Exclude,
		}
		run = func() {
			if err := applyDirectory(cfg, scan); err != nil {
				printError("%v", err)
			}
		}
	} else {
		run = func() {
			doc, report, err := transformFile(cfg, cfg.Input)
			if err != nil {
				printError("%v", err)
				return
			}
			if err := openapi.NewWriter().WriteFile(doc, cfg.Output, cfg.Format); err != nil {
				printError("failed to write output: %v", err)
				return
			}
			printInfo("Wrote %s (%d operation(s), %d schema(s))", cfg.Output, report.Operations, report.Schemas)
		}
	}

	// Initial run before watching
	run()

	debounce := time.Duration(cfg.Watch.Debounce) * time.Millisecond
	watcher, err := watch.New(
		[]string{cfg.Input},
		debounce,
		func(paths []string) { run() },
		watch.WithLogf(printVerbose),
		watch.WithIgnore(cfg.Output),
		watch.WithPatterns(cfg.Watch.Include, cfg.Watch.Exclude),
	)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	printInfo("Watching %s for changes", cfg.Input)
	printInfo("Press Ctrl+C to stop")

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watcher.Run(ctx)
}
