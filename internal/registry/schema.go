// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"errors"
	"fmt"

	"github.com/pdiddy/orcid-report/internal/xmlfield"
)

// ErrUnknownSchema is returned by DetectSchema when a DOI response declares
// neither known vocabulary.
var ErrUnknownSchema = errors.New("unrecognized DOI metadata vocabulary")

// SchemaVariant is the set of namespace prefixes one DOI vocabulary uses.
// A record is always read with a single variant.
type SchemaVariant struct {
	Name string

	// DateTag prefixes date, title and publisher elements.
	DateTag string

	// ContainerTag prefixes the Journal/Book containers and volume.
	ContainerTag string

	// NameTag prefixes author name elements.
	NameTag string
}

var (
	// VariantNumbered is the generic numbered-alias vocabulary (xmlns:j.0).
	VariantNumbered = SchemaVariant{Name: "numbered", DateTag: "j.0", ContainerTag: "j.2", NameTag: "j.3"}

	// VariantBibo is the named bibliographic-ontology vocabulary (xmlns:bibo).
	VariantBibo = SchemaVariant{Name: "bibo", DateTag: "dc", ContainerTag: "bibo", NameTag: "foaf"}
)

// Qualified element names per field family.
func (v SchemaVariant) date(local string) string      { return v.DateTag + ":" + local }
func (v SchemaVariant) container(local string) string { return v.ContainerTag + ":" + local }
func (v SchemaVariant) name(local string) string      { return v.NameTag + ":" + local }

// DetectSchema selects the vocabulary from the namespace declarations on the
// rdf:RDF element. The numbered aliases take precedence when both are
// declared.
func DetectSchema(doc *xmlfield.Node) (SchemaVariant, error) {
	root, ok := doc.First("rdf:RDF")
	if !ok {
		return SchemaVariant{}, fmt.Errorf("%w: no rdf:RDF element", ErrUnknownSchema)
	}
	switch {
	case root.HasAttr("xmlns:j.0"):
		return VariantNumbered, nil
	case root.HasAttr("xmlns:bibo"):
		return VariantBibo, nil
	default:
		return SchemaVariant{}, ErrUnknownSchema
	}
}
