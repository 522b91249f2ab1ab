// Package sitemapgen generates a sitemaps.org XML sitemap for a static site
// by walking its directory tree and listing every HTML file as a URL.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, etree/, slog/).
package sitemapgen

// SitemapFilename is the name of the file written at the traversal root.
const SitemapFilename = "sitemap.xml"

// SitemapNamespace is the XML namespace of the sitemap protocol.
const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// DateFormat is the calendar-date layout used for <lastmod>.
const DateFormat = "2006-01-02"
