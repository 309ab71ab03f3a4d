package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/fwojciec/articulo"
	"github.com/fwojciec/articulo/charset"
	"github.com/fwojciec/articulo/goquery"
	logging "github.com/fwojciec/articulo/slog"
)

// Run executes the compare command. The page is fetched once and every
// engine extracts from the same markup.
func (c *CompareCmd) Run(deps *Dependencies) error {
	header, err := parseHeaders(c.Header)
	if err != nil {
		return err
	}

	resp, err := deps.Fetcher.Fetch(deps.Ctx, c.URL, header)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", c.URL, articulo.ErrorMessage(err))
		return err
	}
	markup, err := charset.NewDecoder().Decode(resp)
	if err != nil {
		return err
	}

	engines := []struct {
		name      string
		extractor articulo.Extractor
	}{
		{"articulo", logging.NewLoggingExtractor(goquery.NewExtractor(c.Threshold, goquery.WithLogger(deps.Logger)), "articulo", deps.Logger)},
		{"readability", newExtractor("readability", c.URL, deps.Logger)},
		{"trafilatura", newExtractor("trafilatura", c.URL, deps.Logger)},
	}

	fmt.Fprintf(deps.Stdout, "%-12s %8s  %s\n", "ENGINE", "CHARS", "TITLE")
	for _, e := range engines {
		result, err := e.extractor.Extract(markup)
		if err != nil {
			fmt.Fprintf(deps.Stdout, "%-12s %8s  error: %s\n", e.name, "-", articulo.ErrorMessage(err))
			continue
		}
		fmt.Fprintf(deps.Stdout, "%-12s %8d  %s\n", e.name, utf8.RuneCountInString(result.ContentText), result.Title)
	}
	return nil
}
