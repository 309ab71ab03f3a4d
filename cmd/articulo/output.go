package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/articulo"
	"github.com/fwojciec/articulo/htmltomarkdown"
)

// printRecord writes rec to w in the given format.
func printRecord(w io.Writer, rec *articulo.Record, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(rec)
	case "html":
		_, err := fmt.Fprintln(w, rec.Markup)
		return err
	case "markdown":
		body := ""
		if strings.TrimSpace(rec.Markup) != "" {
			var err error
			conv := htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(siteOf(rec.URL)))
			if body, err = conv.Convert(rec.Markup); err != nil {
				return fmt.Errorf("converting %s: %w", rec.URL, err)
			}
		}
		_, err := fmt.Fprintf(w, "# %s\n\n%s\n", rec.Title, strings.TrimSpace(body))
		return err
	default:
		_, err := fmt.Fprintf(w, "%s\n\n%s\n", rec.Title, rec.Text)
		return err
	}
}

// multiWriter writes each record to every writer in turn and stops at the
// first failure.
type multiWriter []articulo.Writer

func (m multiWriter) Write(ctx context.Context, rec *articulo.Record) error {
	for _, w := range m {
		if err := w.Write(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}
