package fs

import (
	"context"
	"fmt"

	"github.com/fwojciec/sitemapgen"
	"github.com/google/renameio/v2"
)

// Ensure Writer implements sitemapgen.SitemapWriter at compile time.
var _ sitemapgen.SitemapWriter = (*Writer)(nil)

// Writer writes encoded sitemaps to disk with atomic replace semantics.
// The sitemap is encoded into a temporary file in the target directory,
// then renamed over the target.
type Writer struct {
	encoder sitemapgen.SitemapEncoder
}

// NewWriter creates a new Writer that serializes with the given encoder.
func NewWriter(encoder sitemapgen.SitemapEncoder) *Writer {
	return &Writer{encoder: encoder}
}

// WriteSitemap encodes s and atomically replaces the file at path.
func (w *Writer) WriteSitemap(ctx context.Context, path string, s *sitemapgen.Sitemap) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0644))
	if err != nil {
		return fmt.Errorf("create pending sitemap file: %w", err)
	}
	// No-op once the file has been committed
	defer func() { _ = pending.Cleanup() }()

	if err := w.encoder.Encode(pending, s); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
