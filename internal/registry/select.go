// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"context"

	"github.com/pdiddy/orcid-report/pkg/types"
)

// Selection is the outcome of scanning a work's identifiers: the most recent
// DOI and arXiv identifier in document order. Either may be nil.
type Selection struct {
	DOI   *types.ExternalIdentifier
	Arxiv *types.ExternalIdentifier
}

// PickIdentifiers scans ids in document order and keeps the last identifier
// of each actionable kind. Other kinds are ignored.
func PickIdentifiers(ids []types.ExternalIdentifier) Selection {
	var sel Selection
	for i := range ids {
		switch ids[i].Kind {
		case types.KindDOI:
			sel.DOI = &ids[i]
		case types.KindArxiv:
			sel.Arxiv = &ids[i]
		}
	}
	return sel
}

// Select returns the metadata record for a work, or nil when it carries no
// DOI or arXiv identifier. A DOI always wins over arXiv, including when the
// DOI lookup fails: the unresolved DOI record is returned and arXiv is not
// consulted.
func (r *Resolver) Select(ctx context.Context, ids []types.ExternalIdentifier) *types.MetadataRecord {
	sel := PickIdentifiers(ids)
	switch {
	case sel.DOI != nil:
		rec := r.ResolveDOI(ctx, sel.DOI.Value)
		return &rec
	case sel.Arxiv != nil:
		rec := r.ResolveArxiv(ctx, sel.Arxiv.Value)
		return &rec
	default:
		return nil
	}
}
