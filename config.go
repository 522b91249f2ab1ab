package sitemapgen

import (
	"net/url"
	"slices"
	"strings"
)

// DefaultDomain is the base URL used when none is configured.
const DefaultDomain = "https://d1sh1x.github.io/maminhleb"

// DefaultIgnoredDirs lists directory names that are never descended into.
// Directories whose name starts with a dot are skipped regardless.
var DefaultIgnoredDirs = []string{
	// version control
	".git", ".svn", ".hg",
	// dependencies
	"node_modules", "vendor", "bower_components",
	// build output
	"dist", "build", "_site",
	// caches and virtualenvs
	"__pycache__", ".cache", "venv", ".venv",
}

// Config holds the settings for a single generator run.
type Config struct {
	// Domain is the base URL without a trailing slash.
	Domain string

	// Root is the directory searched for HTML files. The sitemap is
	// written here as well.
	Root string

	// IgnoredDirs are directory names pruned during traversal.
	IgnoredDirs []string
}

// NewConfig returns a Config for domain and root with the default ignore set.
// Trailing slashes are removed from domain.
func NewConfig(domain, root string) *Config {
	return &Config{
		Domain:      strings.TrimRight(domain, "/"),
		Root:        root,
		IgnoredDirs: slices.Clone(DefaultIgnoredDirs),
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.Domain == "" {
		return Errorf(EINVALID, "domain required")
	}
	u, err := url.Parse(c.Domain)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Errorf(EINVALID, "domain %q must be an absolute http(s) URL", c.Domain)
	}
	if c.Root == "" {
		return Errorf(EINVALID, "root directory required")
	}
	return nil
}

// IsIgnoredDir reports whether a directory with the given base name should
// be pruned from traversal.
func (c *Config) IsIgnoredDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	return slices.Contains(c.IgnoredDirs, name)
}
