// Package generate provides sitemap generation orchestration.
// It coordinates page discovery, URL derivation, and writing of the
// sitemap file.
package generate

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fwojciec/sitemapgen"
)

// Generator builds a sitemap for a directory tree.
type Generator struct {
	Pages    sitemapgen.PageFinder
	Sitemaps sitemapgen.SitemapWriter

	// Now returns the run date stamped on every entry. Defaults to time.Now.
	Now func() time.Time
}

// Result holds the outcome of a generate operation.
type Result struct {
	// Path is the location of the written sitemap.
	Path string

	// URLs is the number of <url> entries written.
	URLs int

	// Synthesized is true when a homepage entry was added because no
	// discovered page maps to the domain root.
	Synthesized bool
}

// Generate discovers HTML files under cfg.Root and writes sitemap.xml there.
func (g *Generator) Generate(ctx context.Context, cfg *sitemapgen.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	paths, err := g.Pages.FindPages(ctx, cfg)
	if err != nil {
		return nil, err
	}

	s := sitemapgen.NewSitemap(cfg.Domain, paths, g.now())

	out := filepath.Join(cfg.Root, sitemapgen.SitemapFilename)
	if err := g.Sitemaps.WriteSitemap(ctx, out, s); err != nil {
		return nil, err
	}

	return &Result{
		Path:        out,
		URLs:        len(s.Pages),
		Synthesized: len(s.Pages) > len(paths),
	}, nil
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}
