package sitemapgen

import (
	"context"
	"io"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// IndexFile is the default document served for a directory.
const IndexFile = "index.html"

// DefaultPriority is the <priority> value written for every entry.
const DefaultPriority = 0.8

// Sitemap is an ordered list of pages ready for serialization.
type Sitemap struct {
	Pages    []*Page
	Priority float64
}

// NewSitemap builds a sitemap for the given relative HTML paths. Every page
// is stamped with lastmod. If no page maps to the bare domain, a homepage
// entry is inserted first.
func NewSitemap(domain string, paths []string, lastmod time.Time) *Sitemap {
	s := &Sitemap{
		Pages:    make([]*Page, 0, len(paths)+1),
		Priority: DefaultPriority,
	}
	for _, p := range paths {
		s.Pages = append(s.Pages, &Page{
			Path:         p,
			URL:          PageURL(domain, p),
			LastModified: lastmod,
		})
	}

	if !s.HasHomepage(domain) {
		home := &Page{URL: NormalizeURL(domain + "/"), LastModified: lastmod}
		s.Pages = append([]*Page{home}, s.Pages...)
	}
	return s
}

// HasHomepage reports whether any page URL, with trailing slashes removed,
// equals domain.
func (s *Sitemap) HasHomepage(domain string) bool {
	domain = strings.TrimRight(domain, "/")
	for _, p := range s.Pages {
		if strings.TrimRight(p.URL, "/") == domain {
			return true
		}
	}
	return false
}

// URLs returns the page URLs in order.
func (s *Sitemap) URLs() []string {
	urls := make([]string, len(s.Pages))
	for i, p := range s.Pages {
		urls[i] = p.URL
	}
	return urls
}

// PageURL derives the public URL of an HTML file from its path relative to
// the root. A trailing index.html is dropped so the URL names its directory.
//
// Example: blog/index.html → https://example.com/blog/
func PageURL(domain, relPath string) string {
	p := filepath.ToSlash(relPath)
	if path.Base(p) == IndexFile {
		p = strings.TrimSuffix(p, IndexFile)
	}
	return NormalizeURL(domain + "/" + p)
}

var repeatedSlashes = regexp.MustCompile(`/{2,}`)

// NormalizeURL collapses runs of slashes, leaving the "//" that follows
// the scheme intact.
func NormalizeURL(rawURL string) string {
	prefix, rest := "", rawURL
	if i := strings.Index(rawURL, "://"); i >= 0 {
		prefix, rest = rawURL[:i+3], rawURL[i+3:]
	}
	return prefix + repeatedSlashes.ReplaceAllString(rest, "/")
}

// SitemapEncoder serializes a sitemap as sitemaps.org XML.
type SitemapEncoder interface {
	Encode(w io.Writer, s *Sitemap) error
}

// SitemapWriter persists a sitemap to a file.
type SitemapWriter interface {
	// WriteSitemap replaces the file at path with the encoded sitemap.
	// The file is either fully written or left untouched.
	WriteSitemap(ctx context.Context, path string, s *Sitemap) error
}
