package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitemapgen"
)

// Ensure LoggingSitemapWriter implements sitemapgen.SitemapWriter.
var _ sitemapgen.SitemapWriter = (*LoggingSitemapWriter)(nil)

// LoggingSitemapWriter wraps a SitemapWriter with logging.
type LoggingSitemapWriter struct {
	next   sitemapgen.SitemapWriter
	logger *slog.Logger
}

// NewLoggingSitemapWriter creates a new LoggingSitemapWriter.
func NewLoggingSitemapWriter(next sitemapgen.SitemapWriter, logger *slog.Logger) *LoggingSitemapWriter {
	return &LoggingSitemapWriter{next: next, logger: logger}
}

// WriteSitemap delegates to the wrapped writer and logs the operation.
func (w *LoggingSitemapWriter) WriteSitemap(ctx context.Context, path string, s *sitemapgen.Sitemap) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("sitemap write",
			"path", path,
			"count", len(s.Pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteSitemap(ctx, path, s)
}
