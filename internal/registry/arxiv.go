// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/orcid-report/pkg/types"
)

// NormalizeArxivID strips the "arXiv:" prefix the person registry often
// carries (e.g. "arXiv:2301.07041" → "2301.07041").
func NormalizeArxivID(id string) string {
	return strings.TrimPrefix(id, "arXiv:")
}

// ResolveArxiv queries the arXiv API for a single identifier. arXiv only
// supplies the publication date and authors; the venue fields and the
// publisher are always types.Missing.
func (r *Resolver) ResolveArxiv(ctx context.Context, id string) types.MetadataRecord {
	id = NormalizeArxivID(id)
	link := arxivPDFBase + id

	apiURL := fmt.Sprintf("%s?id_list=%s", r.ArxivAPIBase, id)
	doc, err := r.fetchXML(ctx, apiURL, "")
	if err != nil {
		r.Logger.Debug("arXiv fetch failed", zap.String("arxiv", id), zap.Error(err))
		return types.UnresolvedRecord(types.SourceArxiv, link)
	}

	return types.MetadataRecord{
		Source:          types.SourceArxiv,
		Resolved:        true,
		PublicationDate: doc.Text("published"),
		VenueTitle:      types.Missing,
		VenueVolume:     types.Missing,
		Publisher:       types.Missing,
		Authors:         doc.Texts("name"),
		Link:            link,
	}
}
