// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"context"
	"errors"
	"net/http"

	"github.com/pdiddy/orcid-report/internal/httputil"
	"github.com/pdiddy/orcid-report/pkg/types"
)

const (
	testDOIBase   = "https://doi.test/"
	testArxivBase = "https://arxiv.test/api/query"
)

// sampleNumberedRDF uses the numbered-alias vocabulary and carries decoy
// elements from the bibo family that must never be read.
const sampleNumberedRDF = `<?xml version="1.0" encoding="UTF-8"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:j.0="http://purl.org/dc/terms/"
         xmlns:j.1="http://prismstandard.org/namespaces/basic/2.1/"
         xmlns:j.2="http://purl.org/ontology/bibo/"
         xmlns:j.3="http://xmlns.com/foaf/0.1/"
         xmlns:bibo="http://purl.org/ontology/bibo/"
         xmlns:dc="http://purl.org/dc/terms/"
         xmlns:foaf="http://xmlns.com/foaf/0.1/">
  <rdf:Description rdf:about="http://dx.doi.org/10.1/test">
    <j.0:title>A Study of Tests</j.0:title>
    <j.0:date>2015-03-02</j.0:date>
    <j.0:isPartOf>
      <j.2:Journal rdf:about="http://id.crossref.org/issn/1234-5678">
        <j.0:title>Journal of Tests</j.0:title>
      </j.2:Journal>
    </j.0:isPartOf>
    <j.2:volume>12</j.2:volume>
    <j.0:publisher>Test Press</j.0:publisher>
    <j.0:creator><j.3:Person><j.3:name>Jane Doe</j.3:name></j.3:Person></j.0:creator>
    <j.0:creator><j.3:Person><j.3:name>John Roe</j.3:name></j.3:Person></j.0:creator>
    <dc:date>1999-01-01</dc:date>
    <bibo:Journal><dc:title>Wrong Journal</dc:title></bibo:Journal>
    <bibo:volume>99</bibo:volume>
    <foaf:name>Wrong Author</foaf:name>
  </rdf:Description>
</rdf:RDF>`

// sampleBiboBookRDF uses the bibo vocabulary with a book container only.
const sampleBiboBookRDF = `<?xml version="1.0" encoding="UTF-8"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:bibo="http://purl.org/ontology/bibo/"
         xmlns:dc="http://purl.org/dc/terms/"
         xmlns:foaf="http://xmlns.com/foaf/0.1/">
  <rdf:Description rdf:about="http://dx.doi.org/10.2/chapter">
    <dc:date>2010</dc:date>
    <dc:isPartOf>
      <bibo:Book><dc:title>Handbook of Examples</dc:title></bibo:Book>
    </dc:isPartOf>
    <dc:publisher>Example House</dc:publisher>
    <dc:creator><foaf:Person><foaf:name>Ada Lovelace</foaf:name></foaf:Person></dc:creator>
  </rdf:Description>
</rdf:RDF>`

// sampleBiboEmptyJournalRDF has a journal without a title ahead of a book
// with one; the book title must be used.
const sampleBiboEmptyJournalRDF = `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:bibo="http://purl.org/ontology/bibo/"
         xmlns:dc="http://purl.org/dc/terms/">
  <bibo:Journal><dc:identifier>1234</dc:identifier></bibo:Journal>
  <bibo:Book><dc:title>Proceedings of Fallbacks</dc:title></bibo:Book>
</rdf:RDF>`

// sampleUnknownRDF declares neither known vocabulary.
const sampleUnknownRDF = `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:dcterms="http://purl.org/dc/terms/">
  <dcterms:date>2001-01-01</dcterms:date>
</rdf:RDF>`

// sampleBareRDF declares the numbered vocabulary but none of its fields.
const sampleBareRDF = `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:j.0="http://purl.org/dc/terms/">
  <rdf:Description/>
</rdf:RDF>`

const sampleArxivFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title type="html">ArXiv Query: id_list=1234.5678</title>
  <entry>
    <id>http://arxiv.org/abs/1234.5678v1</id>
    <published>2020-01-01T00:00:00Z</published>
    <title>An Arxiv Paper</title>
    <author><name>Jane Doe</name></author>
    <author><name>John Roe</name></author>
  </entry>
</feed>`

// fakeGetter serves canned bodies keyed by URL. Unknown URLs return 404.
type fakeGetter struct {
	bodies  map[string]string
	err     error
	calls   []string
	headers []http.Header
}

func (f *fakeGetter) Get(_ context.Context, url string, header http.Header) ([]byte, error) {
	f.calls = append(f.calls, url)
	f.headers = append(f.headers, header)
	if f.err != nil {
		return nil, f.err
	}
	body, ok := f.bodies[url]
	if !ok {
		return nil, &httputil.StatusError{URL: url, StatusCode: http.StatusNotFound}
	}
	return []byte(body), nil
}

var errTransport = errors.New("dial tcp: connection refused")

func newTestResolver(g httputil.Getter) *Resolver {
	return NewResolver(g, types.RegistryConfig{DOIBase: testDOIBase, ArxivAPIBase: testArxivBase}, nil)
}
