package main

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/fwojciec/articulo"
	"github.com/fwojciec/articulo/batch"
	"github.com/fwojciec/articulo/bloom"
	"github.com/fwojciec/articulo/charset"
	"github.com/fwojciec/articulo/fs"
	"github.com/fwojciec/articulo/goquery"
	"github.com/fwojciec/articulo/htmltomarkdown"
	logging "github.com/fwojciec/articulo/slog"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	header, err := parseHeaders(c.Header)
	if err != nil {
		return err
	}
	if c.Threshold < 0 || c.Threshold >= 1 {
		return articulo.Errorf(articulo.EINVALID, "threshold must be in [0,1), got %v", c.Threshold)
	}

	links := append([]string(nil), c.URLs...)
	for _, feed := range c.Feed {
		items, err := deps.Feeds.FeedLinks(deps.Ctx, feed)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", feed, articulo.ErrorMessage(err))
			return err
		}
		links = append(links, items...)
	}
	if len(links) == 0 {
		return articulo.Errorf(articulo.EINVALID, "no article URLs given")
	}

	decoder := charset.NewDecoder()
	parser := newEngineParser(c.Engine, goquery.NewParser(goquery.WithLogger(deps.Logger)), deps.Logger)

	runner := &batch.Runner{
		NewArticle: func(link string) (*articulo.Article, error) {
			return articulo.NewArticle(link, deps.Fetcher, decoder, parser,
				articulo.WithThreshold(c.Threshold),
				articulo.WithHeader(header),
				articulo.WithLogger(deps.Logger),
			)
		},
		Limiter:     batch.NewDomainLimiter(c.Rate),
		Seen:        bloom.NewURLSet(uint(len(links))),
		Writer:      c.writer(deps),
		Concurrency: c.Concurrency,
		Logger:      deps.Logger,
	}

	results, err := runner.Run(deps.Ctx, links, nil)
	if err != nil {
		return err
	}

	var failed, printed int
	for _, res := range results {
		if res.Duplicate {
			continue
		}
		if res.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", res.URL, articulo.ErrorMessage(res.Err))
			continue
		}
		if printed > 0 && c.Format != "json" {
			fmt.Fprintln(deps.Stdout)
		}
		if len(links) > 1 && c.Format != "json" {
			fmt.Fprintf(deps.Stdout, "==> %s <==\n", res.URL)
		}
		if err := printRecord(deps.Stdout, res.Record, c.Format); err != nil {
			return err
		}
		printed++
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d articles failed", failed, failed+printed)
	}
	return nil
}

// writer combines the configured record destinations, or returns nil when
// records are only printed.
func (c *ExtractCmd) writer(deps *Dependencies) articulo.Writer {
	var writers multiWriter
	if c.Output != "" {
		writers = append(writers, fs.NewWriter(c.Output, fs.WithConverter(htmltomarkdown.NewConverter())))
	}
	if deps.Records != nil {
		writers = append(writers, deps.Records)
	}
	if len(writers) == 0 {
		return nil
	}
	return logging.NewLoggingWriter(writers, deps.Logger)
}

// parseHeaders parses curl-style "Name: value" headers.
func parseHeaders(raw []string) (http.Header, error) {
	header := http.Header{}
	for _, h := range raw {
		name, value, ok := strings.Cut(h, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, articulo.Errorf(articulo.EINVALID, "invalid header %q, want 'Name: value'", h)
		}
		header.Add(name, strings.TrimSpace(value))
	}
	return header, nil
}

// siteOf returns the scheme and host of link, which the Markdown converter
// resolves relative links against.
func siteOf(link string) string {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
