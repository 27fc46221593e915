package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/foragehq/forage"
	"github.com/foragehq/forage/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	DB     *sqlite.DB
	Store  forage.ScrapeStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Scrape ScrapeCmd `cmd:"" help:"Scrape a group and store the results"`
	Posts  PostsCmd  `cmd:"" help:"List stored posts for a group"`
	Export ExportCmd `cmd:"" help:"Export stored results to CSV"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Group string `arg:"" help:"Group URL, numeric id, or slug"`

	Days          int     `default:"7" help:"Collect posts from the last N days"`
	Since         string  `help:"Start date (YYYY-MM-DD), overrides --days"`
	Until         string  `help:"End date (YYYY-MM-DD), defaults to now"`
	Limit         int     `short:"l" help:"Maximum posts to collect (0 = unlimited)"`
	Delay         float64 `default:"2.0" help:"Base delay between page interactions in seconds"`
	DelayVariance float64 `default:"0.5" help:"Random jitter around the base delay in seconds"`
	SkipComments  bool    `help:"Do not extract comments"`
	MinReactions  int     `help:"Drop comments with fewer reactions"`
	TopComments   int     `help:"Keep only the N most-reacted comments per level"`
	Layout        string  `default:"auto" enum:"auto,modern,basic" help:"Document layout to scrape (auto, modern, basic)"`
	Static        bool    `help:"Fetch over plain HTTP without a browser (basic layout only)"`
	Headed        bool    `help:"Run the browser with a visible window"`
	Out           string  `short:"o" help:"Also export the result to this CSV path"`
}

// PostsCmd is the "posts" subcommand.
type PostsCmd struct {
	Group string `arg:"" help:"Group URL, numeric id, or slug"`
	Full  bool   `help:"Show full post content"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Group string `arg:"" help:"Group URL, numeric id, or slug"`
	Out   string `arg:"" help:"Destination CSV path"`
}
