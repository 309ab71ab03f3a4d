// Package goquery implements article extraction on top of goquery:
// title resolution, the best-parent content search, sanitization of the
// chosen region and single-pass metadata lookups.
package goquery

import (
	"bytes"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/articulo"
	"golang.org/x/net/html"
)

// Ensure Parser implements articulo.Parser at compile time.
var _ articulo.Parser = (*Parser)(nil)

// Parser parses markup into Documents.
type Parser struct {
	logger *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger that receives the content search trace.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses markup fetched from link.
func (p *Parser) Parse(markup string, link string) (articulo.Document, error) {
	return p.parse(markup, link)
}

func (p *Parser) parse(markup string, link string) (*Document, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, articulo.Errorf(articulo.ENOHTML, "document %s has no html", link)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, articulo.Errorf(articulo.ENOHTML, "failed to parse html of %s: %v", link, err)
	}
	if doc.Find("html").Length() == 0 {
		return nil, articulo.Errorf(articulo.ENOHTML, "document %s has no html", link)
	}

	var base *url.URL
	if link != "" {
		if base, err = url.Parse(link); err != nil {
			return nil, articulo.Errorf(articulo.EINVALID, "invalid link %q: %v", link, err)
		}
	}

	return &Document{
		doc:    doc,
		link:   link,
		base:   base,
		logger: p.logger,
	}, nil
}

// Ensure Document implements articulo.Document at compile time.
var _ articulo.Document = (*Document)(nil)

// Document is a parsed page. The underlying tree is never modified.
type Document struct {
	doc    *goquery.Document
	link   string
	base   *url.URL
	logger *slog.Logger

	titleOnce sync.Once
	title     *TitleCandidate
	titleErr  error
}

// Title returns the resolved article title.
func (d *Document) Title() (string, error) {
	c, err := d.titleCandidate()
	if err != nil {
		return "", err
	}
	return c.Text, nil
}

// Content finds the content region for threshold and returns it sanitized.
// The empty body check runs first, so a page with a title but no body
// content yields nil rather than an error.
func (d *Document) Content(threshold float64) (*articulo.Content, error) {
	body := d.doc.Find("body").First()
	if body.Length() == 0 || isEmpty(body.Get(0)) {
		return nil, nil
	}

	c, err := d.titleCandidate()
	if err != nil {
		return nil, err
	}

	region, err := FindContentRegion(d.doc, c, threshold, d.logger)
	if err != nil || region == nil {
		return nil, err
	}

	clean := Sanitize(region)
	var buf bytes.Buffer
	if err := html.Render(&buf, clean); err != nil {
		return nil, articulo.Errorf(articulo.EINTERNAL, "failed to render content of %s: %v", d.link, err)
	}

	return &articulo.Content{
		Markup: buf.String(),
		Text:   nodeText(clean),
	}, nil
}

// Description returns the page description.
func (d *Document) Description() string {
	return Description(d.doc)
}

// Preview returns the absolute preview image URL.
func (d *Document) Preview() string {
	return Preview(d.doc, d.base)
}

// Icon returns the absolute URL of the best icon.
func (d *Document) Icon() string {
	return Icon(d.doc, d.base)
}

// Keywords returns the page keywords.
func (d *Document) Keywords() []string {
	return Keywords(d.doc)
}

// RSS returns the absolute feed URL.
func (d *Document) RSS() string {
	return RSS(d.doc, d.base)
}

// HasPaywall reports whether the page declares paywalled content.
func (d *Document) HasPaywall() bool {
	return HasPaywall(d.doc)
}

func (d *Document) titleCandidate() (*TitleCandidate, error) {
	d.titleOnce.Do(func() {
		d.title, d.titleErr = ResolveTitle(d.doc)
		if articulo.ErrorCode(d.titleErr) == articulo.ENOTITLE {
			d.titleErr = articulo.Errorf(articulo.ENOTITLE, "document %s has no appropriate title tag in html", d.link)
		}
	})
	return d.title, d.titleErr
}
