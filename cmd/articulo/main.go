package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/articulo"
	arthttp "github.com/fwojciec/articulo/http"
	"github.com/fwojciec/articulo/rod"
	logging "github.com/fwojciec/articulo/slog"
	"github.com/fwojciec/articulo/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database opened when --db is given.
	DB *sqlite.DB

	// Services for end-to-end testing. When set they replace the
	// implementations built from flags.
	Fetcher articulo.Fetcher
	Feeds   articulo.FeedService
	Records articulo.RecordService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("articulo"),
		kong.Description("Extract the main content of web articles"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided. Run 'articulo --help' for usage")
	}
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Records = m.Records
	if deps.Records == nil && cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set ARTICULO_DB or --db to use a different database path")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()
		deps.Records = sqlite.NewRecordService(m.DB)
	}

	deps.Feeds = m.Feeds
	if deps.Feeds == nil {
		deps.Feeds = arthttp.NewFeedService(nil)
	}
	deps.Feeds = logging.NewLoggingFeedService(deps.Feeds, deps.Logger)

	command := kongCtx.Command()
	if strings.HasPrefix(command, "extract") || strings.HasPrefix(command, "compare") {
		fetcher, err := m.fetcher(cli, deps.Logger, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()
		deps.Fetcher = logging.NewLoggingFetcher(fetcher, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// fetcher returns the injected fetcher or builds the one selected by flags.
func (m *Main) fetcher(cli *CLI, logger *slog.Logger, stderr io.Writer) (articulo.Fetcher, error) {
	if m.Fetcher != nil {
		return m.Fetcher, nil
	}

	if cli.Browser {
		f, err := rod.NewFetcher(
			rod.WithFetchTimeout(cli.Timeout),
			rod.WithBrowserLogger(logger),
		)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return f, nil
	}
	return arthttp.NewFetcher(arthttp.WithTimeout(cli.Timeout)), nil
}
