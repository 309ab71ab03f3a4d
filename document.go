package articulo

// Content is the sanitized main content of an article.
type Content struct {
	// Markup is the sanitized content region serialized as HTML.
	Markup string

	// Text is the concatenated text of the sanitized region.
	Text string
}

// Parser turns markup into a Document.
type Parser interface {
	// Parse parses markup fetched from link. Relative URLs found in the
	// document are resolved against link.
	// Returns ENOHTML if markup is empty or has no parseable root.
	Parse(markup string, link string) (Document, error)
}

// Document is a parsed page. Implementations are immutable after parsing.
type Document interface {
	// Title returns the resolved article title.
	// Returns ENOTITLE if the document has no usable title.
	Title() (string, error)

	// Content locates and sanitizes the main content region.
	// Returns nil without error when the document body is empty.
	// Returns EITERATION if the search does not converge.
	Content(threshold float64) (*Content, error)

	// Description returns the page description or "" if absent.
	Description() string

	// Preview returns the absolute URL of the preview image or "" if absent.
	Preview() string

	// Icon returns the absolute URL of the best page icon or "" if absent.
	Icon() string

	// Keywords returns the page keywords. Never nil.
	Keywords() []string

	// RSS returns the absolute URL of the page feed or "" if absent.
	RSS() string

	// HasPaywall reports whether the page declares paywalled content.
	HasPaywall() bool
}
