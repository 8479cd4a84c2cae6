// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package registry resolves a work's external identifiers against the
// citation registries (the DOI resolver and the arXiv query API) and
// normalizes their XML responses into types.MetadataRecord values.
//
// Resolution never fails: an unreachable registry, an unparsable response or
// an unrecognized DOI vocabulary yields a record with Resolved == false, and
// each absent field yields types.Missing.
package registry

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/pdiddy/orcid-report/internal/httputil"
	"github.com/pdiddy/orcid-report/internal/xmlfield"
	"github.com/pdiddy/orcid-report/pkg/types"
)

// Default registry endpoints.
const (
	DefaultDOIBase      = "https://doi.org/"
	DefaultArxivAPIBase = "http://export.arxiv.org/api/query"
)

// Canonical links written into records. They do not depend on the
// configured fetch endpoints.
const (
	doiLinkBase  = "http://doi.org/"
	arxivPDFBase = "https://arxiv.org/pdf/"
)

// Resolver fetches and normalizes citation-registry records.
type Resolver struct {
	Client       httputil.Getter
	DOIBase      string
	ArxivAPIBase string
	Logger       *zap.Logger
}

// NewResolver builds a Resolver. Empty base URLs in cfg fall back to the
// public registries; a nil logger discards output.
func NewResolver(client httputil.Getter, cfg types.RegistryConfig, logger *zap.Logger) *Resolver {
	r := &Resolver{
		Client:       client,
		DOIBase:      cfg.DOIBase,
		ArxivAPIBase: cfg.ArxivAPIBase,
		Logger:       logger,
	}
	if r.DOIBase == "" {
		r.DOIBase = DefaultDOIBase
	}
	if r.ArxivAPIBase == "" {
		r.ArxivAPIBase = DefaultArxivAPIBase
	}
	if r.Logger == nil {
		r.Logger = zap.NewNop()
	}
	return r
}

// fetchXML retrieves url and parses the body. Transport failures, HTTP
// errors and malformed XML are all returned as errors.
func (r *Resolver) fetchXML(ctx context.Context, url, accept string) (*xmlfield.Node, error) {
	var header http.Header
	if accept != "" {
		header = http.Header{"Accept": {accept}}
	}
	body, err := r.Client.Get(ctx, url, header)
	if err != nil {
		return nil, err
	}
	return xmlfield.ParseBytes(body)
}
