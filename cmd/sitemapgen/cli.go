package main

// CLI defines the command-line interface structure for Kong.
// Every flag is optional; running without arguments uses DOMAIN and the
// executable-relative root.
type CLI struct {
	Domain string `short:"d" help:"Base URL; overrides the DOMAIN environment variable (default: ${default_domain})"`
	Root   string `short:"r" help:"Directory to scan (default: two levels above the executable's directory)"`
	Debug  bool   `help:"Log discovery and write steps to stderr"`
}
