// Package slog provides log/slog decorators for sitemapgen services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitemapgen"
)

// Ensure LoggingPageFinder implements sitemapgen.PageFinder.
var _ sitemapgen.PageFinder = (*LoggingPageFinder)(nil)

// LoggingPageFinder wraps a PageFinder with logging.
type LoggingPageFinder struct {
	next   sitemapgen.PageFinder
	logger *slog.Logger
}

// NewLoggingPageFinder creates a new LoggingPageFinder.
func NewLoggingPageFinder(next sitemapgen.PageFinder, logger *slog.Logger) *LoggingPageFinder {
	return &LoggingPageFinder{next: next, logger: logger}
}

// FindPages delegates to the wrapped finder and logs the operation.
func (f *LoggingPageFinder) FindPages(ctx context.Context, cfg *sitemapgen.Config) (paths []string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("page discovery",
			"root", cfg.Root,
			"count", len(paths),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FindPages(ctx, cfg)
}
