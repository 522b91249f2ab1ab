package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitemapgen"
	"github.com/fwojciec/sitemapgen/etree"
	"github.com/fwojciec/sitemapgen/fs"
	"github.com/fwojciec/sitemapgen/generate"
	sitemapslog "github.com/fwojciec/sitemapgen/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Getenv looks up environment variables.
	Getenv func(key string) string

	// Executable returns the path of the running binary. The default root
	// is resolved relative to it.
	Executable func() (string, error)

	// Now returns the run date stamped on sitemap entries.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Getenv:     os.Getenv,
		Executable: os.Executable,
		Now:        time.Now,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	// Kong calls Exit after printing help; the run must stop there
	helpShown := false
	parser, err := kong.New(cli,
		kong.Name("sitemapgen"),
		kong.Description("Generate sitemap.xml for the HTML files of a static site"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { helpShown = true }),
		kong.Vars{"default_domain": sitemapgen.DefaultDomain},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}
	if helpShown {
		return nil
	}

	cfg, err := m.config(cli)
	if err != nil {
		return err
	}

	// Wire dependencies
	var pages sitemapgen.PageFinder = fs.NewFinder()
	var sitemaps sitemapgen.SitemapWriter = fs.NewWriter(etree.NewEncoder())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		pages = sitemapslog.NewLoggingPageFinder(pages, logger)
		sitemaps = sitemapslog.NewLoggingSitemapWriter(sitemaps, logger)
	}

	g := &generate.Generator{
		Pages:    pages,
		Sitemaps: sitemaps,
		Now:      m.Now,
	}

	result, err := g.Generate(ctx, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", sitemapgen.ErrorMessage(err))
		return err
	}
	if result.Synthesized {
		logger.Debug("homepage synthesized", "domain", cfg.Domain)
	}

	fmt.Fprintf(stdout, "Wrote %d URLs to %s\n", result.URLs, result.Path)
	return nil
}

// config resolves the run configuration. Flags take precedence over the
// DOMAIN environment variable, which takes precedence over the default.
func (m *Main) config(cli *CLI) (*sitemapgen.Config, error) {
	domain := cli.Domain
	if domain == "" {
		domain = m.Getenv("DOMAIN")
	}
	if domain == "" {
		domain = sitemapgen.DefaultDomain
	}

	root := cli.Root
	if root == "" {
		var err error
		if root, err = m.defaultRoot(); err != nil {
			return nil, err
		}
	}

	return sitemapgen.NewConfig(domain, root), nil
}

// defaultRoot returns the directory two levels above the one holding the
// executable.
func (m *Main) defaultRoot() (string, error) {
	exe, err := m.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "..", ".."), nil
}
