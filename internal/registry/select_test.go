// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/orcid-report/pkg/types"
)

func doiID(v string) types.ExternalIdentifier {
	return types.ExternalIdentifier{Kind: types.KindDOI, Type: "doi", Value: v}
}

func arxivID(v string) types.ExternalIdentifier {
	return types.ExternalIdentifier{Kind: types.KindArxiv, Type: "arxiv", Value: v}
}

func otherID(typ, v string) types.ExternalIdentifier {
	return types.ExternalIdentifier{Kind: types.KindOther, Type: typ, Value: v}
}

func TestPickIdentifiers(t *testing.T) {
	ids := []types.ExternalIdentifier{
		doiID("10.1/first"),
		arxivID("arXiv:1111.1111"),
		otherID("eid", "2-s2.0-1"),
		doiID("10.1/last"),
		arxivID("arXiv:2222.2222"),
	}

	sel := PickIdentifiers(ids)
	require.NotNil(t, sel.DOI)
	require.NotNil(t, sel.Arxiv)
	assert.Equal(t, "10.1/last", sel.DOI.Value)
	assert.Equal(t, "arXiv:2222.2222", sel.Arxiv.Value)

	empty := PickIdentifiers([]types.ExternalIdentifier{otherID("isbn", "978-0")})
	assert.Nil(t, empty.DOI)
	assert.Nil(t, empty.Arxiv)
}

func TestSelect_DOIPreferred(t *testing.T) {
	g := &fakeGetter{bodies: map[string]string{
		testDOIBase + "10.1/test":             sampleNumberedRDF,
		testArxivBase + "?id_list=1234.5678": sampleArxivFeed,
	}}

	got := newTestResolver(g).Select(context.Background(), []types.ExternalIdentifier{
		arxivID("arXiv:1234.5678"),
		doiID("10.1/test"),
	})

	require.NotNil(t, got)
	assert.Equal(t, types.SourceDOI, got.Source)
	assert.Equal(t, "Journal of Tests", got.VenueTitle)
	assert.Equal(t, []string{testDOIBase + "10.1/test"}, g.calls)
}

func TestSelect_FailedDOISuppressesArxiv(t *testing.T) {
	g := &fakeGetter{bodies: map[string]string{
		testArxivBase + "?id_list=1234.5678": sampleArxivFeed,
	}}

	got := newTestResolver(g).Select(context.Background(), []types.ExternalIdentifier{
		doiID("10.1/gone"),
		arxivID("arXiv:1234.5678"),
	})

	require.NotNil(t, got)
	assert.Equal(t, types.SourceDOI, got.Source)
	assert.False(t, got.Resolved)
	assert.NotContains(t, got.Authors, "Jane Doe")
	for _, call := range g.calls {
		assert.NotContains(t, call, testArxivBase)
	}
}

func TestSelect_LastDOIWins(t *testing.T) {
	g := &fakeGetter{bodies: map[string]string{
		testDOIBase + "10.1/test":    sampleNumberedRDF,
		testDOIBase + "10.2/chapter": sampleBiboBookRDF,
	}}

	got := newTestResolver(g).Select(context.Background(), []types.ExternalIdentifier{
		doiID("10.1/test"),
		doiID("10.2/chapter"),
	})

	require.NotNil(t, got)
	assert.Equal(t, "Handbook of Examples", got.VenueTitle)
	assert.Equal(t, "http://doi.org/10.2/chapter", got.Link)
}

func TestSelect_ArxivFallback(t *testing.T) {
	g := &fakeGetter{bodies: map[string]string{
		testArxivBase + "?id_list=1234.5678": sampleArxivFeed,
	}}

	got := newTestResolver(g).Select(context.Background(), []types.ExternalIdentifier{
		otherID("eid", "2-s2.0-1"),
		arxivID("arXiv:1234.5678"),
	})

	require.NotNil(t, got)
	assert.Equal(t, types.SourceArxiv, got.Source)
	assert.Equal(t, "2020-01-01T00:00:00Z", got.PublicationDate)
}

func TestSelect_NoActionableIdentifier(t *testing.T) {
	g := &fakeGetter{}
	r := newTestResolver(g)

	assert.Nil(t, r.Select(context.Background(), nil))
	assert.Nil(t, r.Select(context.Background(), []types.ExternalIdentifier{
		otherID("DOI", "10.1/uppercase-type"),
		otherID("wosuid", "WOS:1"),
	}))
	assert.Empty(t, g.calls)
}
