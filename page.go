package sitemapgen

import (
	"context"
	"time"
)

// Page represents a single sitemap entry.
type Page struct {
	// Path is the slash-separated file path relative to the root.
	// Empty for the synthesized homepage.
	Path string

	URL          string
	LastModified time.Time
}

// PageFinder discovers HTML files under a root directory.
type PageFinder interface {
	// FindPages returns the slash-separated paths, relative to cfg.Root,
	// of every HTML file under the root, sorted segment by segment.
	// Directories for which cfg.IsIgnoredDir reports true are not visited.
	// Returns ENOTFOUND if the root does not exist and EINVALID if it is
	// not a directory. A symlinked root is followed.
	FindPages(ctx context.Context, cfg *Config) ([]string, error)
}
