// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

// Package config provides configuration loading and validation for specforge.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/specforge/specforge/internal/filters"
)

// Config represents the specforge configuration.
type Config struct {
	// Input is the path of the API description to transform
	Input string `mapstructure:"input" yaml:"input" json:"input"`

	// Output is the path the transformed description is written to;
	// empty means standard output
	Output string `mapstructure:"output" yaml:"output" json:"output"`

	// Format is the output format (yaml, json)
	Format string `mapstructure:"format" yaml:"format" json:"format"`

	// API contains the published API identity
	API APIConfig `mapstructure:"api" yaml:"api" json:"api"`

	// Security contains OAuth2 security configuration
	Security SecurityConfig `mapstructure:"security" yaml:"security" json:"security"`

	// Filters contains filter behavior configuration
	Filters FiltersConfig `mapstructure:"filters" yaml:"filters" json:"filters"`

	// Watch contains file watching configuration
	Watch WatchConfig `mapstructure:"watch" yaml:"watch" json:"watch"`

	// Serve contains documentation server configuration
	Serve ServeConfig `mapstructure:"serve" yaml:"serve" json:"serve"`
}

// APIConfig contains the published API identity.
type APIConfig struct {
	// Title is the document title
	Title string `mapstructure:"title" yaml:"title" json:"title"`

	// Version is the document version and the generation key
	Version string `mapstructure:"version" yaml:"version" json:"version"`

	// Name is the OAuth2 scope identifier and the name shown in the
	// scope description
	Name string `mapstructure:"name" yaml:"name" json:"name"`
}

// SecurityConfig contains OAuth2 security configuration.
type SecurityConfig struct {
	// Scheme is the identifier the security scheme is published under
	Scheme string `mapstructure:"scheme" yaml:"scheme" json:"scheme"`

	// TokenURL is the OAuth2 password-flow token and refresh endpoint.
	// Required.
	TokenURL string `mapstructure:"tokenUrl" yaml:"tokenUrl" json:"tokenUrl"`
}

// FiltersConfig contains filter behavior configuration.
type FiltersConfig struct {
	// IgnoredParameters is a list of parameter names removed from every
	// operation (exact, case-sensitive match)
	IgnoredParameters []string `mapstructure:"ignoredParameters" yaml:"ignoredParameters" json:"ignoredParameters"`

	// ListSuffix marks GET routes that receive paging parameters
	ListSuffix string `mapstructure:"listSuffix" yaml:"listSuffix" json:"listSuffix"`
}

// WatchConfig contains file watching configuration.
type WatchConfig struct {
	// Enabled determines whether to watch the input for changes
	Enabled bool `mapstructure:"enabled" yaml:"enabled" json:"enabled"`

	// Debounce is the debounce duration in milliseconds
	Debounce int `mapstructure:"debounce" yaml:"debounce" json:"debounce"`

	// Include restricts directory watching to matching paths (doublestar
	// globs, relative to the watched directory); empty admits every
	// document file
	Include []string `mapstructure:"include" yaml:"include" json:"include"`

	// Exclude drops matching paths from directory watching
	Exclude []string `mapstructure:"exclude" yaml:"exclude" json:"exclude"`
}

// ServeConfig contains documentation server configuration.
type ServeConfig struct {
	// Addr is the listen address
	Addr string `mapstructure:"addr" yaml:"addr" json:"addr"`

	// Metrics enables the Prometheus metrics endpoint
	Metrics bool `mapstructure:"metrics" yaml:"metrics" json:"metrics"`

	// Auth contains bearer-token authentication configuration
	Auth AuthConfig `mapstructure:"auth" yaml:"auth" json:"auth"`
}

// AuthConfig contains bearer-token authentication configuration for the
// documentation server.
type AuthConfig struct {
	// Secret is the HMAC secret used to verify bearer tokens; empty
	// disables authentication
	Secret string `mapstructure:"secret" yaml:"secret" json:"secret"`

	// Issuer, when set, must match the token's issuer claim
	Issuer string `mapstructure:"issuer" yaml:"issuer" json:"issuer"`
}

// configFileNames is the list of config file names to search for (in order).
var configFileNames = []string{
	"specforge.yaml",
	"specforge.json",
	".specforge.yaml",
	".specforge.json",
}

// supportedFormats is the list of supported output formats.
var supportedFormats = []string{
	"yaml",
	"json",
}

// ErrConfigNotFound is returned when an explicitly given config file does
// not exist.
var ErrConfigNotFound = errors.New("config file not found")

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("config validation errors:\n")
	for _, err := range e {
		sb.WriteString("  - ")
		sb.WriteString(err.Field)
		sb.WriteString(": ")
		sb.WriteString(err.Message)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Default returns a Config with default values. The security token URL has
// no default and must be supplied before the configuration validates.
func Default() *Config {
	return &Config{
		Input:  "openapi.yaml",
		Output: "",
		Format: "yaml",
		API: APIConfig{
			Title:   filters.DefaultTitle,
			Version: filters.DefaultVersion,
			Name:    filters.DefaultName,
		},
		Security: SecurityConfig{
			Scheme: filters.DefaultScheme,
		},
		Filters: FiltersConfig{
			ListSuffix: filters.DefaultListSuffix,
		},
		Watch: WatchConfig{
			Enabled:  false,
			Debounce: 500,
		},
		Serve: ServeConfig{
			Addr: ":8080",
		},
	}
}

// Load loads the configuration from a file.
// It searches for config files in the following order:
// 1. specforge.yaml
// 2. specforge.json
// 3. .specforge.yaml
// 4. .specforge.json
//
// If configPath is provided, it will use that path instead. Values can also
// be supplied through SPECFORGE_* environment variables, which take
// precedence over file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("SPECFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		v.SetConfigFile(configPath)
	} else {
		for _, name := range configFileNames {
			if _, err := os.Stat(name); err == nil {
				v.SetConfigFile(name)
				break
			}
		}
	}

	// Without a config file the defaults and environment still apply.
	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadFromPath loads the configuration from a specific directory.
func LoadFromPath(dir string) (*Config, error) {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Default(), nil
}

// setDefaults sets the default values for viper. Every key carries a
// default so environment variables are picked up even without a config
// file; the token URL defaults to empty, which Validate rejects.
func setDefaults(v *viper.Viper) {
	v.SetDefault("input", "openapi.yaml")
	v.SetDefault("output", "")
	v.SetDefault("format", "yaml")
	v.SetDefault("api.title", filters.DefaultTitle)
	v.SetDefault("api.version", filters.DefaultVersion)
	v.SetDefault("api.name", filters.DefaultName)
	v.SetDefault("security.scheme", filters.DefaultScheme)
	v.SetDefault("security.tokenUrl", "")
	v.SetDefault("filters.ignoredParameters", []string{})
	v.SetDefault("filters.listSuffix", filters.DefaultListSuffix)
	v.SetDefault("watch.enabled", false)
	v.SetDefault("watch.debounce", 500)
	v.SetDefault("watch.include", []string{})
	v.SetDefault("watch.exclude", []string{})
	v.SetDefault("serve.addr", ":8080")
	v.SetDefault("serve.metrics", false)
	v.SetDefault("serve.auth.secret", "")
	v.SetDefault("serve.auth.issuer", "")
}

// Validate validates the configuration. A missing token URL is fatal; every
// other identity field has a default and only fails when explicitly blanked.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Format != "" && !contains(supportedFormats, c.Format) {
		errs = append(errs, ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("unsupported format %q, must be one of: %s", c.Format, strings.Join(supportedFormats, ", ")),
		})
	}

	if c.Security.TokenURL == "" {
		errs = append(errs, ValidationError{
			Field:   "security.tokenUrl",
			Message: "token URL is required",
		})
	}

	if c.API.Title == "" {
		errs = append(errs, ValidationError{
			Field:   "api.title",
			Message: "title is required",
		})
	}

	if c.API.Version == "" {
		errs = append(errs, ValidationError{
			Field:   "api.version",
			Message: "version is required",
		})
	}

	if c.Watch.Debounce < 0 {
		errs = append(errs, ValidationError{
			Field:   "watch.debounce",
			Message: "debounce must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// FilterOptions maps the configuration onto the standard filter set.
func (c *Config) FilterOptions() filters.StandardOptions {
	return filters.StandardOptions{
		Title:             c.API.Title,
		Version:           c.API.Version,
		Name:              c.API.Name,
		Scheme:            c.Security.Scheme,
		TokenURL:          c.Security.TokenURL,
		IgnoredParameters: c.Filters.IgnoredParameters,
		ListSuffix:        c.Filters.ListSuffix,
	}
}

// ConfigFilePath returns the path of the loaded config file, if any.
func ConfigFilePath() string {
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// contains checks if a slice contains a string.
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
