package sitemapgen_test

import (
	"testing"

	"github.com/fwojciec/sitemapgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	t.Run("strips trailing slashes from domain", func(t *testing.T) {
		t.Parallel()

		cfg := sitemapgen.NewConfig("https://example.com//", "/srv/www")

		assert.Equal(t, "https://example.com", cfg.Domain)
		assert.Equal(t, "/srv/www", cfg.Root)
	})

	t.Run("uses default ignore set", func(t *testing.T) {
		t.Parallel()

		cfg := sitemapgen.NewConfig("https://example.com", "/srv/www")

		assert.Equal(t, sitemapgen.DefaultIgnoredDirs, cfg.IgnoredDirs)
	})

	t.Run("does not share ignore set with defaults", func(t *testing.T) {
		t.Parallel()

		cfg := sitemapgen.NewConfig("https://example.com", "/srv/www")
		cfg.IgnoredDirs[0] = "changed"

		assert.Equal(t, ".git", sitemapgen.DefaultIgnoredDirs[0])
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		domain  string
		root    string
		wantErr bool
	}{
		{name: "valid https", domain: "https://example.com", root: "."},
		{name: "valid http with path", domain: "http://example.com/site", root: "."},
		{name: "missing domain", domain: "", root: ".", wantErr: true},
		{name: "relative domain", domain: "example.com", root: ".", wantErr: true},
		{name: "unsupported scheme", domain: "ftp://example.com", root: ".", wantErr: true},
		{name: "missing host", domain: "https://", root: ".", wantErr: true},
		{name: "missing root", domain: "https://example.com", root: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := sitemapgen.NewConfig(tt.domain, tt.root)
			err := cfg.Validate()

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, sitemapgen.EINVALID, sitemapgen.ErrorCode(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestConfig_IsIgnoredDir(t *testing.T) {
	t.Parallel()

	cfg := sitemapgen.NewConfig("https://example.com", ".")

	tests := []struct {
		name string
		want bool
	}{
		{name: ".git", want: true},
		{name: "node_modules", want: true},
		{name: "vendor", want: true},
		{name: "dist", want: true},
		{name: "__pycache__", want: true},
		{name: ".anything", want: true},
		{name: "blog", want: false},
		{name: "docs", want: false},
		{name: "git", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, cfg.IsIgnoredDir(tt.name))
		})
	}
}

func TestDefaultDomain(t *testing.T) {
	t.Parallel()

	cfg := sitemapgen.NewConfig(sitemapgen.DefaultDomain, ".")

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://d1sh1x.github.io/maminhleb", cfg.Domain)
	assert.Equal(t, "https://d1sh1x.github.io/maminhleb/about.html", sitemapgen.PageURL(cfg.Domain, "about.html"))
}
