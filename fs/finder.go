// Package fs provides filesystem discovery and storage for sitemaps.
package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fwojciec/sitemapgen"
)

// HTMLExt is the extension of files listed in the sitemap.
const HTMLExt = ".html"

// Ensure Finder implements sitemapgen.PageFinder at compile time.
var _ sitemapgen.PageFinder = (*Finder)(nil)

// Finder discovers HTML files by walking the local filesystem.
type Finder struct{}

// NewFinder creates a new Finder.
func NewFinder() *Finder {
	return &Finder{}
}

// FindPages walks cfg.Root and returns the relative paths of all HTML files.
// A symlinked root is resolved before walking.
func (f *Finder) FindPages(ctx context.Context, cfg *sitemapgen.Config) ([]string, error) {
	root, err := resolveRoot(cfg.Root)
	if err != nil {
		return nil, err
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			// Prune before descending; the root is always visited
			if path != root && cfg.IsIgnoredDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || !strings.HasSuffix(d.Name(), HTMLExt) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", cfg.Root, err)
	}

	SortPaths(paths)
	return paths, nil
}

// resolveRoot follows symlinks in root and checks that it names a directory.
func resolveRoot(root string) (string, error) {
	resolved, err := filepath.EvalSymlinks(root)
	if errors.Is(err, iofs.ErrNotExist) {
		return "", sitemapgen.Errorf(sitemapgen.ENOTFOUND, "root directory %q not found", root)
	} else if err != nil {
		return "", fmt.Errorf("resolving %s: %w", root, err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", root, err)
	}
	if !info.IsDir() {
		return "", sitemapgen.Errorf(sitemapgen.EINVALID, "root %q is not a directory", root)
	}
	return resolved, nil
}

// SortPaths orders slash-separated paths segment by segment, so a
// directory's contents sort by the directory name alone.
//
// Example: a/x.html sorts before a-b.html
func SortPaths(paths []string) {
	slices.SortFunc(paths, func(a, b string) int {
		return slices.Compare(strings.Split(a, "/"), strings.Split(b, "/"))
	})
}
