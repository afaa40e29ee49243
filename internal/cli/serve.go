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
	"github.com/specforge/specforge/internal/docs"
	"github.com/specforge/specforge/internal/watch"
)

var (
	serveAddr      string
	serveMetrics   bool
	serveWatch     bool
	serveJWTSecret string
)

var serveCmd = &cobra.Command{
	Use:   "serve [input]",
	Short: "Serve the transformed description and interactive documentation",
	Long: `Serve the transformed API description over HTTP.

The input document is transformed once at startup and served from memory.
Endpoints:

  /openapi.yaml   Transformed document as YAML
  /openapi.json   Transformed document as JSON
  /swagger.json   Swagger 2.0 rendering of the transformed document
  /docs           Interactive documentation
  /healthz        Health and staleness status
  /metrics        Prometheus metrics (with --metrics)

With --watch the input document is monitored and the served build is
replaced on changes; a failed rebuild keeps the previous build serving.

Example:
  specforge serve                         # Serve on the configured address
  specforge serve api/openapi.yaml        # Serve a specific document
  specforge serve --addr :9090            # Serve on a specific port
  specforge serve --watch                 # Rebuild when the input changes
  specforge serve --metrics               # Expose Prometheus metrics
  specforge serve --jwt-secret s3cret     # Require bearer tokens`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default: :8080)")
	serveCmd.Flags().BoolVar(&serveMetrics, "metrics", false, "expose Prometheus metrics on /metrics")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "rebuild when the input document changes")
	serveCmd.Flags().StringVar(&serveJWTSecret, "jwt-secret", "", "HMAC secret enabling bearer-token auth for the documentation endpoints")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load config
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Apply command-line overrides
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if serveAddr != "" {
		cfg.Serve.Addr = serveAddr
	}
	if serveMetrics {
		cfg.Serve.Metrics = true
	}
	if serveWatch {
		cfg.Watch.Enabled = true
	}
	if serveJWTSecret != "" {
		cfg.Serve.Auth.Secret = serveJWTSecret
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	printVerbose("Serve configuration:")
	printVerbose("  Input: %s", cfg.Input)
	printVerbose("  Address: %s", cfg.Serve.Addr)
	printVerbose("  Metrics: %t", cfg.Serve.Metrics)
	printVerbose("  Watch: %t", cfg.Watch.Enabled)

	srv, err := docs.New(cfg, docs.WithLogf(printInfo))
	if err != nil {
		return fmt.Errorf("failed to start documentation server: %w", err)
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Watch.Enabled {
		debounce := time.Duration(cfg.Watch.Debounce) * time.Millisecond
		watcher, err := watch.New(
			[]string{cfg.Input},
			debounce,
			func(paths []string) {
				if err := srv.Rebuild(ctx); err != nil {
					printError("rebuild failed: %v", err)
				}
			},
			watch.WithLogf(printVerbose),
		)
		if err != nil {
			return fmt.Errorf("failed to start watcher: %w", err)
		}
		go func() {
			if err := watcher.Run(ctx); err != nil {
				printError("watcher stopped: %v", err)
			}
		}()
		printInfo("Watching %s for changes", cfg.Input)
	}

	return srv.ListenAndServe(ctx)
}
