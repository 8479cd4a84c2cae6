// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package xmlfield reads text fields out of registry XML responses.
//
// Elements are matched by their qualified name as written in the document
// ("j.0:date", "common:title", "published"), not by resolved namespace URI:
// the registries signal their vocabulary through the prefixes they declare,
// so the prefixes are what callers select on. Lookups never fail for absent
// data; a missing element or an element without text yields types.Missing.
package xmlfield

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"

	"github.com/pdiddy/orcid-report/pkg/types"
)

// ErrNoRoot is returned by Parse for input without a root element.
var ErrNoRoot = errors.New("xml document has no root element")

// Node is an element scope for lookups. The node returned by Parse is the
// document itself, so its descendants include the root element.
type Node struct {
	el *etree.Element
}

// Parse reads an XML document. Malformed XML is the only hard failure.
func Parse(r io.Reader) (*Node, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parsing xml: %w", err)
	}
	if doc.Root() == nil {
		return nil, ErrNoRoot
	}
	return &Node{el: &doc.Element}, nil
}

// ParseBytes is Parse over an in-memory document.
func ParseBytes(data []byte) (*Node, error) {
	return Parse(bytes.NewReader(data))
}

// Name returns the element's qualified name ("rdf:RDF").
func (n *Node) Name() string {
	return n.el.FullTag()
}

// HasAttr reports whether the element declares the attribute, given by its
// qualified name ("xmlns:j.0").
func (n *Node) HasAttr(name string) bool {
	space, key := splitQName(name)
	for _, a := range n.el.Attr {
		if a.Space == space && a.Key == key {
			return true
		}
	}
	return false
}

// Value returns the element's own text, trimmed. It is empty when the
// element's first child is not text.
func (n *Node) Value() string {
	return strings.TrimSpace(n.el.Text())
}

// First returns the first descendant named tag in document order.
func (n *Node) First(tag string) (*Node, bool) {
	var found *etree.Element
	walk(n.el, func(el *etree.Element) bool {
		if el.FullTag() == tag {
			found = el
			return false
		}
		return true
	})
	if found == nil {
		return nil, false
	}
	return &Node{el: found}, true
}

// All returns every descendant named tag in document order.
func (n *Node) All(tag string) []*Node {
	var nodes []*Node
	walk(n.el, func(el *etree.Element) bool {
		if el.FullTag() == tag {
			nodes = append(nodes, &Node{el: el})
		}
		return true
	})
	return nodes
}

// Lookup returns the text of the first descendant named tag. The boolean is
// false when no such element exists or it has no text.
func (n *Node) Lookup(tag string) (string, bool) {
	child, ok := n.First(tag)
	if !ok {
		return "", false
	}
	v := child.Value()
	return v, v != ""
}

// Text is Lookup with absence mapped to types.Missing.
func (n *Node) Text(tag string) string {
	if v, ok := n.Lookup(tag); ok {
		return v
	}
	return types.Missing
}

// Texts returns the text of every descendant named tag, in document order,
// skipping elements without text. No matches yields an empty slice.
func (n *Node) Texts(tag string) []string {
	values := []string{}
	for _, child := range n.All(tag) {
		if v := child.Value(); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// walk visits the descendants of el depth-first in document order until
// visit returns false.
func walk(el *etree.Element, visit func(*etree.Element) bool) bool {
	for _, child := range el.ChildElements() {
		if !visit(child) {
			return false
		}
		if !walk(child, visit) {
			return false
		}
	}
	return true
}

func splitQName(name string) (space, local string) {
	if i := strings.IndexByte(name, ':'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}
