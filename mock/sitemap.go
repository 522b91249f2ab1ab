package mock

import (
	"context"
	"io"

	"github.com/fwojciec/sitemapgen"
)

// Compile-time interface verification.
var (
	_ sitemapgen.SitemapEncoder = (*SitemapEncoder)(nil)
	_ sitemapgen.SitemapWriter  = (*SitemapWriter)(nil)
)

// SitemapEncoder is a mock implementation of sitemapgen.SitemapEncoder.
type SitemapEncoder struct {
	EncodeFn func(w io.Writer, s *sitemapgen.Sitemap) error
}

func (e *SitemapEncoder) Encode(w io.Writer, s *sitemapgen.Sitemap) error {
	return e.EncodeFn(w, s)
}

// SitemapWriter is a mock implementation of sitemapgen.SitemapWriter.
type SitemapWriter struct {
	WriteSitemapFn func(ctx context.Context, path string, s *sitemapgen.Sitemap) error
}

func (w *SitemapWriter) WriteSitemap(ctx context.Context, path string, s *sitemapgen.Sitemap) error {
	return w.WriteSitemapFn(ctx, path, s)
}
