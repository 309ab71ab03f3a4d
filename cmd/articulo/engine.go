package main

import (
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/articulo"
	"github.com/fwojciec/articulo/readability"
	logging "github.com/fwojciec/articulo/slog"
	"github.com/fwojciec/articulo/trafilatura"
)

// newExtractor returns the extractor for an alternative engine, or nil for
// the built-in content search.
func newExtractor(engine, link string, logger *slog.Logger) articulo.Extractor {
	pageURL, _ := url.Parse(link)

	var ex articulo.Extractor
	switch engine {
	case "readability":
		ex = readability.NewExtractor(readability.WithPageURL(pageURL))
	case "trafilatura":
		ex = trafilatura.NewExtractor(trafilatura.WithPageURL(pageURL))
	default:
		return nil
	}
	return logging.NewLoggingExtractor(ex, engine, logger)
}

// newEngineParser returns parser unchanged for the built-in engine.
// Otherwise the documents it returns take their title and content from the
// named engine, keeping metadata lookups on the parsed tree.
func newEngineParser(engine string, parser articulo.Parser, logger *slog.Logger) articulo.Parser {
	if engine == "" || engine == "articulo" {
		return parser
	}
	return &engineParser{parser: parser, engine: engine, logger: logger}
}

type engineParser struct {
	parser articulo.Parser
	engine string
	logger *slog.Logger
}

func (p *engineParser) Parse(markup string, link string) (articulo.Document, error) {
	doc, err := p.parser.Parse(markup, link)
	if err != nil {
		return nil, err
	}
	return &engineDocument{
		Document:  doc,
		markup:    markup,
		extractor: newExtractor(p.engine, link, p.logger),
	}, nil
}

type engineDocument struct {
	articulo.Document

	markup    string
	extractor articulo.Extractor

	once   sync.Once
	result *articulo.ExtractResult
	err    error
}

func (d *engineDocument) extract() (*articulo.ExtractResult, error) {
	d.once.Do(func() {
		d.result, d.err = d.extractor.Extract(d.markup)
	})
	return d.result, d.err
}

// Title prefers the engine's title and falls back to the title resolver.
func (d *engineDocument) Title() (string, error) {
	result, err := d.extract()
	if err != nil {
		return "", err
	}
	if title := strings.TrimSpace(result.Title); title != "" {
		return title, nil
	}
	return d.Document.Title()
}

// Content ignores threshold, which only applies to the built-in search.
func (d *engineDocument) Content(threshold float64) (*articulo.Content, error) {
	result, err := d.extract()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(result.ContentHTML) == "" {
		return nil, nil
	}
	return &articulo.Content{Markup: result.ContentHTML, Text: result.ContentText}, nil
}
