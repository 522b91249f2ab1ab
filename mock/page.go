package mock

import (
	"context"

	"github.com/fwojciec/sitemapgen"
)

var _ sitemapgen.PageFinder = (*PageFinder)(nil)

// PageFinder is a mock implementation of sitemapgen.PageFinder.
type PageFinder struct {
	FindPagesFn func(ctx context.Context, cfg *sitemapgen.Config) ([]string, error)
}

func (f *PageFinder) FindPages(ctx context.Context, cfg *sitemapgen.Config) ([]string, error) {
	return f.FindPagesFn(ctx, cfg)
}
