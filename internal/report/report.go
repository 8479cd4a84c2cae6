// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report enriches a person's works with citation-registry metadata
// and renders the plain-text report.
package report

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/orcid-report/pkg/types"
)

// Failure sentences for records whose registry could not be read. The arXiv
// sentence has no trailing newline; existing consumers of the report rely
// on that layout.
const (
	doiFailure   = "Nie można pozyskać danych.\n"
	arxivFailure = "Nie można uzyskać danych"
)

// Selector picks and resolves the metadata record for a work's identifiers.
type Selector interface {
	Select(ctx context.Context, ids []types.ExternalIdentifier) *types.MetadataRecord
}

// Builder assembles the report for one person.
type Builder struct {
	Selector Selector
	Logger   *zap.Logger
}

// NewBuilder returns a Builder resolving works through sel.
func NewBuilder(sel Selector, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{Selector: sel, Logger: logger}
}

// Enrich returns a copy of p whose works carry their selected metadata.
// Works are resolved one at a time in document order.
func (b *Builder) Enrich(ctx context.Context, p types.Person) types.Person {
	out := p
	out.Works = make([]types.Work, len(p.Works))
	for i, w := range p.Works {
		w.Metadata = b.Selector.Select(ctx, w.Identifiers)
		if w.Metadata != nil {
			b.Logger.Debug("work resolved",
				zap.Int("index", i),
				zap.String("source", string(w.Metadata.Source)),
				zap.Bool("resolved", w.Metadata.Resolved))
		}
		out.Works[i] = w
	}
	return out
}

// Build enriches p and renders the text report.
func (b *Builder) Build(ctx context.Context, p types.Person) string {
	return Render(b.Enrich(ctx, p))
}

// Render formats an enriched person: the display name, a blank line, then
// the work blocks separated by blank lines.
func Render(p types.Person) string {
	blocks := make([]string, len(p.Works))
	for i, w := range p.Works {
		blocks[i] = AssembleWork(w)
	}
	return p.DisplayName() + "\n\n" + strings.Join(blocks, "\n")
}

// AssembleWork formats one work: title, the last DOI and arXiv identifiers,
// then its metadata when present.
func AssembleWork(w types.Work) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tytuł: %s\n", w.Title)
	if id, ok := w.LastIdentifier(types.KindDOI); ok {
		fmt.Fprintf(&b, "DOI: %s\n", id.Value)
	}
	if id, ok := w.LastIdentifier(types.KindArxiv); ok {
		fmt.Fprintf(&b, "ARXIV: %s\n", id.Value)
	}
	if w.Metadata != nil {
		b.WriteString(RenderMetadata(*w.Metadata))
	}
	return b.String()
}

// RenderMetadata formats a record with the field table of its registry, or
// the registry's failure sentence for an unresolved record.
func RenderMetadata(m types.MetadataRecord) string {
	var b strings.Builder
	switch m.Source {
	case types.SourceArxiv:
		if !m.Resolved {
			return arxivFailure
		}
		fmt.Fprintf(&b, "Data publikacji: %s\n", m.PublicationDate)
		fmt.Fprintf(&b, "Autorzy: %s\n", m.AuthorList())
		fmt.Fprintf(&b, "Link do pracy: %s\n", m.Link)
	default:
		if !m.Resolved {
			return doiFailure
		}
		fmt.Fprintf(&b, "Data publikacji: %s\n", m.PublicationDate)
		fmt.Fprintf(&b, "Czasopismo: %s, numer: %s\n", m.VenueTitle, m.VenueVolume)
		fmt.Fprintf(&b, "Wydawca: %s\n", m.Publisher)
		fmt.Fprintf(&b, "Autorzy: %s\n", m.AuthorList())
		fmt.Fprintf(&b, "Link do pracy: %s\n", m.Link)
	}
	return b.String()
}
