// Package readability provides an articulo.Extractor backed by
// go-readability, for comparing its output against the best-parent search.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/articulo"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements articulo.Extractor at compile time.
var _ articulo.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct {
	pageURL *url.URL
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPageURL sets the URL the page was fetched from. Relative links in the
// extracted content are resolved against it.
func WithPageURL(u *url.URL) Option {
	return func(e *Extractor) {
		e.pageURL = u
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*articulo.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, articulo.Errorf(articulo.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.pageURL)
	if err != nil {
		return nil, err
	}

	return &articulo.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
		ContentText: strings.TrimSpace(article.TextContent),
	}, nil
}
