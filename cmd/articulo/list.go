package main

import (
	"fmt"

	"github.com/fwojciec/articulo"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	if deps.Records == nil {
		return articulo.Errorf(articulo.EINVALID, "no database configured, set --db or ARTICULO_DB")
	}

	filter := articulo.RecordFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Host != "" {
		filter.Host = &c.Host
	}
	if c.Paywall != "any" {
		paywall := c.Paywall == "yes"
		filter.HasPaywall = &paywall
	}

	recs, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", articulo.ErrorMessage(err))
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'articulo --db PATH URL' to store some.")
		return nil
	}

	for _, rec := range recs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", rec.FetchedAt.Format("2006-01-02"), rec.URL, rec.Title)
	}
	return nil
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	if deps.Records == nil {
		return articulo.Errorf(articulo.EINVALID, "no database configured, set --db or ARTICULO_DB")
	}

	rec, err := deps.Records.FindRecordByURL(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", articulo.ErrorMessage(err))
		return err
	}
	return printRecord(deps.Stdout, rec, c.Format)
}
