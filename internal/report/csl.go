// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/orcid-report/internal/registry"
	"github.com/pdiddy/orcid-report/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names and structure follow the CSL-JSON/CSL-YAML schema
// so that output is consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Volume         string    `yaml:"volume,omitempty"`
	Publisher      string    `yaml:"publisher,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// issuedLayouts are the date shapes the registries return, most precise first.
var issuedLayouts = []string{time.RFC3339, "2006-01-02", "2006-01", "2006"}

// FormatCSL writes the person's works as a CSL-YAML list to w.
func FormatCSL(p types.Person, w io.Writer) error {
	items := make([]CSLItem, len(p.Works))
	for i, work := range p.Works {
		items[i] = toCSLItem(work, i)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// toCSLItem converts a work and its metadata to a CSLItem. Missing fields
// are left out.
func toCSLItem(w types.Work, index int) CSLItem {
	item := CSLItem{
		ID:    fmt.Sprintf("work-%d", index+1),
		Type:  "article",
		Title: present(w.Title),
	}

	sel := registry.PickIdentifiers(w.Identifiers)
	if sel.DOI != nil {
		item.DOI = sel.DOI.Value
		item.ID = sel.DOI.Value
	} else if sel.Arxiv != nil {
		item.ID = "arxiv:" + registry.NormalizeArxivID(sel.Arxiv.Value)
	}

	m := w.Metadata
	if m == nil || !m.Resolved {
		return item
	}

	for _, a := range m.Authors {
		item.Author = append(item.Author, parseAuthorName(a))
	}
	item.ContainerTitle = present(m.VenueTitle)
	item.Volume = present(m.VenueVolume)
	item.Publisher = present(m.Publisher)
	item.URL = m.Link
	item.Issued = parseIssued(m.PublicationDate)
	if item.ContainerTitle != "" {
		item.Type = "article-journal"
	}
	return item
}

func present(s string) string {
	if s == types.Missing {
		return ""
	}
	return s
}

// parseIssued converts a registry date to CSL date-parts, keeping only the
// precision the registry supplied.
func parseIssued(s string) *CSLDate {
	for _, layout := range issuedLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		parts := []int{t.Year(), int(t.Month()), t.Day()}
		switch layout {
		case "2006-01":
			parts = parts[:2]
		case "2006":
			parts = parts[:1]
		}
		return &CSLDate{DateParts: [][]int{parts}}
	}
	return nil
}

// parseAuthorName splits a full name string into CSL family/given parts.
// It splits on the last space: everything before is given, the last token
// is family. Single-token names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}
