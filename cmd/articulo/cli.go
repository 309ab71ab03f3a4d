package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/articulo"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher articulo.Fetcher
	Feeds   articulo.FeedService

	// Records is nil unless a database was configured.
	Records articulo.RecordService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool          `short:"v" help:"Log debug output, including the content search trace, to stderr"`
	DB      string        `name:"db" env:"ARTICULO_DB" help:"SQLite database storing extracted records"`
	Timeout time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Browser bool          `short:"b" help:"Render pages in headless Chrome before extraction"`

	Extract ExtractCmd `cmd:"" default:"withargs" help:"Extract articles (default command)"`
	Compare CompareCmd `cmd:"" help:"Compare extraction engines on one page"`
	List    ListCmd    `cmd:"" help:"List stored articles"`
	Show    ShowCmd    `cmd:"" help:"Print a stored article"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs        []string `arg:"" optional:"" name:"url" sep:"none" help:"Article URLs"`
	Feed        []string `short:"F" sep:"none" help:"RSS or Atom feed whose items are extracted (repeatable)"`
	Threshold   float64  `default:"0.7" help:"Maximum content loss when narrowing the content region, in [0,1)"`
	Header      []string `short:"H" sep:"none" help:"Request header as 'Name: value' (repeatable)"`
	Engine      string   `short:"e" enum:"articulo,readability,trafilatura" default:"articulo" help:"Content extraction engine (${enum})"`
	Format      string   `short:"f" enum:"html,text,markdown,json" default:"text" help:"Output format (${enum})"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent extraction limit"`
	Rate        float64  `default:"1" help:"Requests per second per domain, 0 for unlimited"`
	Output      string   `short:"o" type:"path" help:"Also write each article as Markdown under this directory"`
}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	URL       string   `arg:"" help:"Article URL"`
	Threshold float64  `default:"0.7" help:"Maximum content loss for the articulo engine"`
	Header    []string `short:"H" sep:"none" help:"Request header as 'Name: value' (repeatable)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Host    string `help:"Only articles from this host"`
	Paywall string `enum:"any,yes,no" default:"any" help:"Filter by paywall (${enum})"`
	Limit   int    `short:"n" default:"20" help:"Maximum number of articles"`
	Offset  int    `help:"Number of articles to skip"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	URL    string `arg:"" help:"Article URL"`
	Format string `short:"f" enum:"html,text,markdown,json" default:"text" help:"Output format (${enum})"`
}
