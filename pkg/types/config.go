// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by every registry client.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero disables it.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "orcid-report/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// RateLimit caps outgoing requests per second. Zero disables pacing.
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit" mapstructure:"rate_limit"`
}

// RegistryConfig holds the base URLs of the person and citation registries.
type RegistryConfig struct {
	// ORCIDBase is the person registry endpoint; the identifier is appended.
	ORCIDBase string `json:"orcid_base" yaml:"orcid_base" mapstructure:"orcid_base"`

	// ORCIDToken is an optional bearer token for the person registry.
	ORCIDToken string `json:"-" yaml:"-" mapstructure:"-"`

	// DOIBase is the DOI resolver; the DOI is appended.
	DOIBase string `json:"doi_base" yaml:"doi_base" mapstructure:"doi_base"`

	// ArxivAPIBase is the arXiv query endpoint.
	ArxivAPIBase string `json:"arxiv_api_base" yaml:"arxiv_api_base" mapstructure:"arxiv_api_base"`
}

// OutputFormat selects how the report is serialized.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatYAML OutputFormat = "yaml"
	FormatJSON OutputFormat = "json"
	FormatCSL  OutputFormat = "csl"
)

// ReportConfig groups everything a report run needs. It is decided once by
// the CLI and passed down explicitly.
type ReportConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	Registries RegistryConfig `json:"registries" yaml:"registries" mapstructure:"registries"`

	// Format selects the report serialization.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`

	// OutputPath is the .txt file the report is written to; empty means stdout.
	OutputPath string `json:"output_path" yaml:"output_path" mapstructure:"output_path"`
}
