// Package etree serializes sitemaps to XML using github.com/beevik/etree.
package etree

import (
	"io"
	"strconv"

	"github.com/beevik/etree"
	"github.com/fwojciec/sitemapgen"
)

// Ensure Encoder implements sitemapgen.SitemapEncoder.
var _ sitemapgen.SitemapEncoder = (*Encoder)(nil)

// Encoder writes sitemaps as sitemaps.org <urlset> documents.
type Encoder struct {
	indent int
}

// NewEncoder creates a new Encoder that indents nested elements by two
// spaces.
func NewEncoder() *Encoder {
	return &Encoder{indent: 2}
}

// Encode writes s to w as a UTF-8 XML document.
func (e *Encoder) Encode(w io.Writer, s *sitemapgen.Sitemap) error {
	doc := e.Document(s)
	_, err := doc.WriteTo(w)
	return err
}

// Document builds the XML tree for s.
func (e *Encoder) Document(s *sitemapgen.Sitemap) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", sitemapgen.SitemapNamespace)

	priority := strconv.FormatFloat(s.Priority, 'f', 1, 64)
	for _, p := range s.Pages {
		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(p.URL)
		u.CreateElement("lastmod").SetText(p.LastModified.Format(sitemapgen.DateFormat))
		u.CreateElement("priority").SetText(priority)
	}

	doc.Indent(e.indent)
	return doc
}
