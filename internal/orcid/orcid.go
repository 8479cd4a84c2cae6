// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package orcid fetches a researcher's public record from the ORCID
// registry and reads the person's name and declared works from it.
package orcid

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/orcid-report/internal/httputil"
	"github.com/pdiddy/orcid-report/internal/xmlfield"
	"github.com/pdiddy/orcid-report/pkg/types"
)

// DefaultBase is the public ORCID API; the identifier is appended.
const DefaultBase = "https://pub.orcid.org/"

var (
	// ErrPersonNotFound wraps every failure to obtain a readable person
	// record. Interactive callers re-prompt on it.
	ErrPersonNotFound = errors.New("person record not found")

	// ErrMissingName is returned when the record lacks a given or family name.
	ErrMissingName = errors.New("person record has no name")
)

// Qualified element names in ORCID record XML.
const (
	tagGivenNames  = "personal-details:given-names"
	tagFamilyName  = "personal-details:family-name"
	tagWorkSummary = "work:work-summary"
	tagTitle       = "common:title"
	tagExternalID  = "common:external-id"
	tagIDType      = "common:external-id-type"
	tagIDValue     = "common:external-id-value"
)

// Client fetches person records.
type Client struct {
	HTTP   httputil.Getter
	Base   string
	Token  string
	Logger *zap.Logger
}

// NewClient builds a Client from cfg. An empty base uses DefaultBase.
func NewClient(getter httputil.Getter, cfg types.RegistryConfig, logger *zap.Logger) *Client {
	c := &Client{HTTP: getter, Base: cfg.ORCIDBase, Token: cfg.ORCIDToken, Logger: logger}
	if c.Base == "" {
		c.Base = DefaultBase
	}
	if !strings.HasSuffix(c.Base, "/") {
		c.Base += "/"
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

// Fetch retrieves and parses the record for id. Any transport, HTTP or XML
// failure is reported as ErrPersonNotFound.
func (c *Client) Fetch(ctx context.Context, id string) (*xmlfield.Node, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: empty identifier", ErrPersonNotFound)
	}

	header := http.Header{"Accept": {"application/xml"}}
	if c.Token != "" {
		header.Set("Authorization", "Bearer "+c.Token)
	}

	c.Logger.Debug("fetching person record", zap.String("orcid", id))
	body, err := c.HTTP.Get(ctx, c.Base+id, header)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPersonNotFound, id, err)
	}
	doc, err := xmlfield.ParseBytes(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPersonNotFound, id, err)
	}
	return doc, nil
}

// Lookup fetches and parses the record for id.
func (c *Client) Lookup(ctx context.Context, id string) (types.Person, error) {
	doc, err := c.Fetch(ctx, id)
	if err != nil {
		return types.Person{}, err
	}
	p, err := ParsePerson(doc)
	if err != nil {
		return types.Person{}, err
	}
	p.ORCID = strings.TrimSpace(id)
	c.Logger.Info("person record loaded",
		zap.String("orcid", p.ORCID),
		zap.String("name", p.DisplayName()),
		zap.Int("works", len(p.Works)))
	return p, nil
}

// ParsePerson reads the name and works from a person record. Both name
// parts are required; work fields degrade to types.Missing.
func ParsePerson(doc *xmlfield.Node) (types.Person, error) {
	given, ok := doc.Lookup(tagGivenNames)
	if !ok {
		return types.Person{}, fmt.Errorf("%w: no %s", ErrMissingName, tagGivenNames)
	}
	family, ok := doc.Lookup(tagFamilyName)
	if !ok {
		return types.Person{}, fmt.Errorf("%w: no %s", ErrMissingName, tagFamilyName)
	}

	p := types.Person{GivenName: given, FamilyName: family, Works: []types.Work{}}
	for _, summary := range doc.All(tagWorkSummary) {
		p.Works = append(p.Works, parseWork(summary))
	}
	return p, nil
}

func parseWork(summary *xmlfield.Node) types.Work {
	w := types.Work{
		Title:       summary.Text(tagTitle),
		Identifiers: []types.ExternalIdentifier{},
	}
	for _, ext := range summary.All(tagExternalID) {
		typ, _ := ext.Lookup(tagIDType)
		id := types.ExternalIdentifier{
			Kind:  types.ParseIdentifierKind(typ),
			Type:  typ,
			Value: ext.Text(tagIDValue),
		}
		// Without a value there is nothing to resolve.
		if id.Value == types.Missing {
			id.Kind = types.KindOther
		}
		w.Identifiers = append(w.Identifiers, id)
	}
	return w
}
