package mock

import "github.com/fwojciec/articulo"

var _ articulo.Parser = (*Parser)(nil)

// Parser is a mock implementation of articulo.Parser.
type Parser struct {
	ParseFn func(markup string, link string) (articulo.Document, error)
}

func (p *Parser) Parse(markup string, link string) (articulo.Document, error) {
	return p.ParseFn(markup, link)
}

var _ articulo.Document = (*Document)(nil)

// Document is a mock implementation of articulo.Document.
type Document struct {
	TitleFn       func() (string, error)
	ContentFn     func(threshold float64) (*articulo.Content, error)
	DescriptionFn func() string
	PreviewFn     func() string
	IconFn        func() string
	KeywordsFn    func() []string
	RSSFn         func() string
	HasPaywallFn  func() bool
}

func (d *Document) Title() (string, error) {
	return d.TitleFn()
}

func (d *Document) Content(threshold float64) (*articulo.Content, error) {
	return d.ContentFn(threshold)
}

func (d *Document) Description() string {
	return d.DescriptionFn()
}

func (d *Document) Preview() string {
	return d.PreviewFn()
}

func (d *Document) Icon() string {
	return d.IconFn()
}

func (d *Document) Keywords() []string {
	return d.KeywordsFn()
}

func (d *Document) RSS() string {
	return d.RSSFn()
}

func (d *Document) HasPaywall() bool {
	return d.HasPaywallFn()
}
