// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

// Package filters provides the built-in transformations applied to API
// descriptions: parameter exclusion, security-requirement injection,
// paging-parameter injection, and enum annotation.
package filters

import (
	"errors"
	"fmt"

	"github.com/specforge/specforge/internal/pipeline"
	"github.com/specforge/specforge/internal/util"
	"github.com/specforge/specforge/pkg/types"
)

// Defaults applied by Standard when the corresponding option is unset.
const (
	DefaultTitle      = "API"
	DefaultVersion    = "v1"
	DefaultName       = "api"
	DefaultScheme     = "oauth2"
	DefaultListSuffix = "/odata"
)

// ErrMissingTokenURL is returned by Standard when no OAuth2 token endpoint
// is configured. Every other option has a usable default; this one does not.
var ErrMissingTokenURL = errors.New("filters: security token URL is required")

// StandardOptions configures the standard filter set.
type StandardOptions struct {
	// Title and Version replace the document's info block.
	Title   string
	Version string

	// Name identifies the API in OAuth2 scope names and descriptions.
	Name string

	// Scheme is the identifier the security scheme is published under and
	// referenced by in per-operation security requirements.
	Scheme string

	// TokenURL is the OAuth2 password-flow token and refresh endpoint.
	// Required.
	TokenURL string

	// IgnoredParameters lists parameter names removed document-wide.
	// Matching is exact and case-sensitive.
	IgnoredParameters []string

	// ListSuffix marks GET routes that receive paging parameters.
	ListSuffix string
}

// withDefaults fills unset options with their documented defaults.
func (o StandardOptions) withDefaults() StandardOptions {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Version == "" {
		o.Version = DefaultVersion
	}
	if o.Name == "" {
		o.Name = DefaultName
	}
	if o.Scheme == "" {
		o.Scheme = DefaultScheme
	}
	if o.ListSuffix == "" {
		o.ListSuffix = DefaultListSuffix
	}
	return o
}

// Standard builds a registry holding the built-in filter set, bound to the
// given options. Registration order is fixed and documented per level:
// document filters run info override, scheme install, then name exclusion;
// operation filters run binding exclusion, hidden exclusion, security
// requirements, then paging; the enum-names filter is the only schema
// filter. It fails before registering anything if no token URL is set.
func Standard(opts StandardOptions) (*pipeline.Registry, error) {
	if opts.TokenURL == "" {
		return nil, ErrMissingTokenURL
	}
	opts = opts.withDefaults()

	reg := pipeline.NewRegistry()
	for _, f := range []pipeline.Filter{
		NewInfoOverride(opts.Title, opts.Version),
		NewSchemeInstall(opts.Scheme, OAuth2PasswordScheme(opts.TokenURL, opts.Name)),
		NewNameExclusion(opts.IgnoredParameters),
		NewBindingExclusion(types.BindingExcluded),
		NewHiddenExclusion(),
		NewSecurityRequirements(opts.Scheme, opts.Name),
		NewPaging(opts.ListSuffix),
		NewEnumNames(),
	} {
		if err := reg.Register(f); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// OAuth2PasswordScheme builds the password-flow security scheme published
// by the standard filter set. The token endpoint doubles as the refresh
// endpoint, and a single scope named after the API grants access to it.
func OAuth2PasswordScheme(tokenURL, apiName string) types.SecurityScheme {
	return types.SecurityScheme{
		Type: "oauth2",
		Flows: &types.OAuthFlows{
			Password: &types.OAuthFlow{
				TokenURL:   tokenURL,
				RefreshURL: tokenURL,
				Scopes: map[string]string{
					apiName: fmt.Sprintf("Access to the %s API.", util.TitleCase(apiName)),
				},
			},
		},
	}
}
