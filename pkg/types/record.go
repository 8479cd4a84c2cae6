// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the orcid-report pipeline:
// the person and works read from the person registry, the external
// identifiers attached to each work, and the bibliographic metadata records
// resolved from the citation registries.
package types

import "strings"

// Missing is the display value for a metadata field the registry did not
// provide. Every field of a MetadataRecord holds real content or Missing.
const Missing = "brak danych"

// IdentifierKind classifies an external identifier attached to a work.
type IdentifierKind string

const (
	KindDOI   IdentifierKind = "doi"
	KindArxiv IdentifierKind = "arxiv"
	KindOther IdentifierKind = "other"
)

// ParseIdentifierKind maps the person registry's identifier type to a kind.
// Matching is exact: "DOI" or " doi" are KindOther.
func ParseIdentifierKind(s string) IdentifierKind {
	switch s {
	case string(KindDOI):
		return KindDOI
	case string(KindArxiv):
		return KindArxiv
	default:
		return KindOther
	}
}

// Actionable reports whether identifiers of this kind can be resolved
// against a citation registry.
func (k IdentifierKind) Actionable() bool {
	return k == KindDOI || k == KindArxiv
}

// ExternalIdentifier is one identifier attached to a work.
type ExternalIdentifier struct {
	// Kind is the identifier type.
	Kind IdentifierKind `json:"kind" yaml:"kind"`

	// Type is the raw type string from the person registry (e.g. "doi", "eid").
	Type string `json:"type" yaml:"type"`

	// Value is the raw identifier value (e.g. "10.1/test", "arXiv:1234.5678").
	Value string `json:"value" yaml:"value"`
}

// RegistrySource identifies the citation registry a metadata record came from.
type RegistrySource string

const (
	SourceDOI   RegistrySource = "doi"
	SourceArxiv RegistrySource = "arxiv"
)

// MetadataRecord holds the bibliographic metadata resolved for one work from
// exactly one citation registry.
type MetadataRecord struct {
	// Source is the registry that produced the record.
	Source RegistrySource `json:"source" yaml:"source"`

	// Resolved is false when the registry could not be reached or its
	// response could not be read. Such a record renders as a single
	// failure sentence.
	Resolved bool `json:"resolved" yaml:"resolved"`

	PublicationDate string `json:"publication_date" yaml:"publication_date"`
	VenueTitle      string `json:"venue_title" yaml:"venue_title"`
	VenueVolume     string `json:"venue_volume" yaml:"venue_volume"`
	Publisher       string `json:"publisher" yaml:"publisher"`

	// Authors lists author names in document order. It may be empty.
	Authors []string `json:"authors" yaml:"authors"`

	// Link is the canonical URL of the work in its registry.
	Link string `json:"link" yaml:"link"`
}

// UnresolvedRecord returns a record whose fields are all Missing. The link
// is kept so structured output can still point at the registry entry.
func UnresolvedRecord(source RegistrySource, link string) MetadataRecord {
	return MetadataRecord{
		Source:          source,
		PublicationDate: Missing,
		VenueTitle:      Missing,
		VenueVolume:     Missing,
		Publisher:       Missing,
		Authors:         []string{},
		Link:            link,
	}
}

// AuthorList joins the author names with ", ". No authors yields "".
func (m MetadataRecord) AuthorList() string {
	return strings.Join(m.Authors, ", ")
}

// Work is one publication attributed to a person.
type Work struct {
	// Title is the work title as declared in the person registry.
	Title string `json:"title" yaml:"title"`

	// Identifiers lists the work's external identifiers in document order.
	Identifiers []ExternalIdentifier `json:"identifiers" yaml:"identifiers"`

	// Metadata is nil when the work carries no actionable identifier.
	Metadata *MetadataRecord `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// LastIdentifier returns the last identifier of the given kind in document
// order.
func (w Work) LastIdentifier(kind IdentifierKind) (ExternalIdentifier, bool) {
	var (
		last  ExternalIdentifier
		found bool
	)
	for _, id := range w.Identifiers {
		if id.Kind == kind {
			last, found = id, true
		}
	}
	return last, found
}

// Person is a researcher looked up in the person registry.
type Person struct {
	// ORCID is the identifier the person was looked up by.
	ORCID string `json:"orcid,omitempty" yaml:"orcid,omitempty"`

	GivenName  string `json:"given_name" yaml:"given_name"`
	FamilyName string `json:"family_name" yaml:"family_name"`

	// Works lists the person's works in document order.
	Works []Work `json:"works" yaml:"works"`
}

// DisplayName joins the given and family names with a single space.
func (p Person) DisplayName() string {
	return p.GivenName + " " + p.FamilyName
}
