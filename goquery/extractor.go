package goquery

import (
	"github.com/fwojciec/articulo"
)

// Ensure Extractor implements articulo.Extractor at compile time.
var _ articulo.Extractor = (*Extractor)(nil)

// Extractor extracts main content with the best-parent search.
type Extractor struct {
	parser    *Parser
	threshold float64
}

// NewExtractor creates a new Extractor using threshold as the maximum
// content loss coefficient.
func NewExtractor(threshold float64, opts ...Option) *Extractor {
	return &Extractor{
		parser:    NewParser(opts...),
		threshold: threshold,
	}
}

// Extract processes raw HTML and returns the main content.
// Relative URLs are left unresolved.
func (e *Extractor) Extract(rawHTML string) (*articulo.ExtractResult, error) {
	doc, err := e.parser.parse(rawHTML, "")
	if err != nil {
		return nil, err
	}

	title, err := doc.Title()
	if err != nil {
		return nil, err
	}

	content, err := doc.Content(e.threshold)
	if err != nil {
		return nil, err
	}

	result := &articulo.ExtractResult{Title: title}
	if content != nil {
		result.ContentHTML = content.Markup
		result.ContentText = content.Text
	}
	return result, nil
}
