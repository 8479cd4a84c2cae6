// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"context"

	"go.uber.org/zap"

	"github.com/pdiddy/orcid-report/internal/xmlfield"
	"github.com/pdiddy/orcid-report/pkg/types"
)

// venueContainers are tried in order; the first with a title wins.
var venueContainers = []string{"Journal", "Book"}

// ResolveDOI fetches the RDF/XML record for doi and extracts its metadata.
// The link is always the canonical doi.org URL, even for unresolved records.
func (r *Resolver) ResolveDOI(ctx context.Context, doi string) types.MetadataRecord {
	link := doiLinkBase + doi

	doc, err := r.fetchXML(ctx, r.DOIBase+doi, "application/rdf+xml")
	if err != nil {
		r.Logger.Debug("DOI fetch failed", zap.String("doi", doi), zap.Error(err))
		return types.UnresolvedRecord(types.SourceDOI, link)
	}

	variant, err := DetectSchema(doc)
	if err != nil {
		r.Logger.Warn("DOI record not readable", zap.String("doi", doi), zap.Error(err))
		return types.UnresolvedRecord(types.SourceDOI, link)
	}

	return extractDOIRecord(doc, variant, link)
}

// extractDOIRecord reads every field with the tags of a single variant.
func extractDOIRecord(doc *xmlfield.Node, v SchemaVariant, link string) types.MetadataRecord {
	return types.MetadataRecord{
		Source:          types.SourceDOI,
		Resolved:        true,
		PublicationDate: doc.Text(v.date("date")),
		VenueTitle:      venueTitle(doc, v),
		VenueVolume:     doc.Text(v.container("volume")),
		Publisher:       doc.Text(v.date("publisher")),
		Authors:         doc.Texts(v.name("name")),
		Link:            link,
	}
}

// venueTitle returns the title of the first container that has one.
func venueTitle(doc *xmlfield.Node, v SchemaVariant) string {
	for _, kind := range venueContainers {
		container, ok := doc.First(v.container(kind))
		if !ok {
			continue
		}
		if title, ok := container.Lookup(v.date("title")); ok {
			return title
		}
	}
	return types.Missing
}
