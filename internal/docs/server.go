// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

// Package docs serves the transformed API description over HTTP. The input
// document is transformed once up front and cached; Rebuild swaps in a new
// build atomically, and a failed rebuild keeps the last good build serving.
package docs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/specforge/specforge/internal/bridge"
	"github.com/specforge/specforge/internal/config"
	"github.com/specforge/specforge/internal/filters"
	"github.com/specforge/specforge/internal/openapi"
	"github.com/specforge/specforge/internal/pipeline"
	"github.com/specforge/specforge/pkg/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNotConfigured is returned when a Server is used before being built
// with New.
var ErrNotConfigured = errors.New("docs: not configured (build with docs.New)")

// build is one immutable rendering of the served artifacts.
type build struct {
	doc      *types.OpenAPI
	yamlBody []byte
	jsonBody []byte
	swagger  []byte
	builtAt  time.Time
}

// Server serves the transformed description, its Swagger 2.0 rendering, and
// a documentation page.
type Server struct {
	cfg      *config.Config
	registry *pipeline.Registry
	logf     func(format string, args ...interface{})
	metrics  *serverMetrics

	mu      sync.RWMutex
	current *build
	lastErr error
}

// Option configures a Server.
type Option func(*Server)

// WithLogf sets the log output callback.
func WithLogf(logf func(format string, args ...interface{})) Option {
	return func(s *Server) {
		s.logf = logf
	}
}

// New creates a server for the given configuration and performs the initial
// build, so a broken input fails startup instead of the first request.
func New(cfg *config.Config, opts ...Option) (*Server, error) {
	registry, err := filters.Standard(cfg.FilterOptions())
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:      cfg,
		registry: registry,
		logf:     func(string, ...interface{}) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	if cfg.Serve.Metrics {
		s.metrics = newServerMetrics()
	}

	if err := s.Rebuild(context.Background()); err != nil {
		return nil, err
	}

	return s, nil
}

// Rebuild reads the input document, transforms it, and swaps the served
// build. On failure the previous build stays in place and the error is
// reported by the health endpoint until a rebuild succeeds.
func (s *Server) Rebuild(ctx context.Context) error {
	if s == nil || s.cfg == nil {
		return ErrNotConfigured
	}

	start := time.Now()
	next, err := s.build(ctx)

	if s.metrics != nil {
		result := "success"
		if err != nil {
			result = "failure"
		}
		s.metrics.rebuilds.WithLabelValues(result).Inc()
		s.metrics.rebuildSeconds.Observe(time.Since(start).Seconds())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err
		s.logf("rebuild failed, keeping previous build: %v", err)
		return err
	}
	s.current = next
	s.lastErr = nil
	s.logf("rebuilt %s from %s", next.doc.Info.Title, s.cfg.Input)
	return nil
}

func (s *Server) build(ctx context.Context) (*build, error) {
	doc, err := openapi.ReadFile(s.cfg.Input)
	if err != nil {
		return nil, err
	}

	if _, err := pipeline.New(s.registry).Run(doc); err != nil {
		return nil, err
	}

	writer := openapi.NewWriter()
	yamlBody, err := writer.ToYAML(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to render YAML: %w", err)
	}
	jsonBody, err := writer.ToJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to render JSON: %w", err)
	}
	swagger, err := bridge.V2JSON(ctx, doc)
	if err != nil {
		return nil, err
	}

	return &build{
		doc:      doc,
		yamlBody: []byte(yamlBody),
		jsonBody: []byte(jsonBody),
		swagger:  swagger,
		builtAt:  time.Now().UTC(),
	}, nil
}

// snapshot returns the current build and the last rebuild error.
func (s *Server) snapshot() (*build, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.lastErr
}

// Handler returns the HTTP handler for all endpoints. Document endpoints
// require a bearer token when an auth secret is configured; the health and
// metrics endpoints stay open.
func (s *Server) Handler() http.Handler {
	protect := func(h http.HandlerFunc) http.HandlerFunc {
		if s.cfg.Serve.Auth.Secret == "" {
			return h
		}
		return bearerAuth(s.cfg.Serve.Auth.Secret, s.cfg.Serve.Auth.Issuer, h)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/openapi.yaml", s.instrument("openapi.yaml", protect(s.handleYAML)))
	mux.HandleFunc("/openapi.json", s.instrument("openapi.json", protect(s.handleJSON)))
	mux.HandleFunc("/swagger.json", s.instrument("swagger.json", protect(s.handleSwagger)))
	mux.HandleFunc("/docs", s.instrument("docs", protect(s.handleDocs)))
	mux.HandleFunc("/healthz", s.instrument("healthz", s.handleHealth))
	if s.metrics != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	}
	mux.HandleFunc("/", s.handleRoot)
	return mux
}

// ListenAndServe serves until the context is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil || s.cfg == nil {
		return ErrNotConfigured
	}

	srv := &http.Server{
		Addr:              s.cfg.Serve.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logf("serving documentation on %s", s.cfg.Serve.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// instrument counts requests per endpoint and status code when metrics are
// enabled.
func (s *Server) instrument(endpoint string, h http.HandlerFunc) http.HandlerFunc {
	if s.metrics == nil {
		return h
	}
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h(rec, r)
		s.metrics.requests.WithLabelValues(endpoint, strconv.Itoa(rec.status)).Inc()
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) handleYAML(w http.ResponseWriter, r *http.Request) {
	s.serveBody(w, r, "application/yaml", func(b *build) []byte { return b.yamlBody })
}

func (s *Server) handleJSON(w http.ResponseWriter, r *http.Request) {
	s.serveBody(w, r, "application/json", func(b *build) []byte { return b.jsonBody })
}

func (s *Server) handleSwagger(w http.ResponseWriter, r *http.Request) {
	s.serveBody(w, r, "application/json", func(b *build) []byte { return b.swagger })
}

func (s *Server) serveBody(w http.ResponseWriter, r *http.Request, contentType string, body func(*build) []byte) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	b, _ := s.snapshot()
	if b == nil {
		http.Error(w, "no build available", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Last-Modified", b.builtAt.Format(http.TimeFormat))
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body(b))
}

// healthResponse is the /healthz payload. Status is "ok" while the served
// build matches the input, "stale" while a failed rebuild leaves an older
// build serving.
type healthResponse struct {
	Status  string    `json:"status"`
	BuiltAt time.Time `json:"builtAt"`
	Error   string    `json:"error,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	b, lastErr := s.snapshot()

	resp := healthResponse{Status: "ok"}
	if b != nil {
		resp.BuiltAt = b.builtAt
	}
	if lastErr != nil {
		resp.Status = "stale"
		resp.Error = lastErr.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/docs", http.StatusFound)
}
