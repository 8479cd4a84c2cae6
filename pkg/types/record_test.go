// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIdentifierKind(t *testing.T) {
	tests := []struct {
		in   string
		want IdentifierKind
	}{
		{"doi", KindDOI},
		{"arxiv", KindArxiv},
		{"DOI", KindOther},
		{" doi", KindOther},
		{"eid", KindOther},
		{"", KindOther},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseIdentifierKind(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != KindOther, got.Actionable())
		})
	}
}

func TestLastIdentifier(t *testing.T) {
	w := Work{Identifiers: []ExternalIdentifier{
		{Kind: KindDOI, Type: "doi", Value: "10.1/first"},
		{Kind: KindArxiv, Type: "arxiv", Value: "arXiv:1"},
		{Kind: KindOther, Type: "eid", Value: "x"},
		{Kind: KindDOI, Type: "doi", Value: "10.1/second"},
	}}

	id, ok := w.LastIdentifier(KindDOI)
	assert.True(t, ok)
	assert.Equal(t, "10.1/second", id.Value)

	id, ok = w.LastIdentifier(KindArxiv)
	assert.True(t, ok)
	assert.Equal(t, "arXiv:1", id.Value)

	_, ok = Work{}.LastIdentifier(KindDOI)
	assert.False(t, ok)
}

func TestUnresolvedRecord(t *testing.T) {
	m := UnresolvedRecord(SourceDOI, "http://doi.org/10.1/x")

	assert.False(t, m.Resolved)
	assert.Equal(t, SourceDOI, m.Source)
	for _, f := range []string{m.PublicationDate, m.VenueTitle, m.VenueVolume, m.Publisher} {
		assert.Equal(t, Missing, f)
	}
	assert.NotNil(t, m.Authors)
	assert.Empty(t, m.AuthorList())
	assert.Equal(t, "http://doi.org/10.1/x", m.Link)
}

func TestAuthorList(t *testing.T) {
	assert.Equal(t, "", MetadataRecord{}.AuthorList())
	assert.Equal(t, "Ada", MetadataRecord{Authors: []string{"Ada"}}.AuthorList())
	assert.Equal(t, "Ada, Charles", MetadataRecord{Authors: []string{"Ada", "Charles"}}.AuthorList())
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Josiah Carberry", Person{GivenName: "Josiah", FamilyName: "Carberry"}.DisplayName())
}
