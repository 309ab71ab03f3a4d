package articulo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// DefaultThreshold is the default maximum content loss tolerated when the
// content search narrows from a parent element to one of its children.
const DefaultThreshold = 0.7

// Option configures an Article.
type Option func(*Article)

// WithThreshold sets the maximum content loss coefficient, in [0,1).
// Defaults to DefaultThreshold.
func WithThreshold(threshold float64) Option {
	return func(a *Article) {
		a.threshold = threshold
	}
}

// WithHeader sets additional headers sent with the page request.
// There are no default headers.
func WithHeader(header http.Header) Option {
	return func(a *Article) {
		a.header = header.Clone()
	}
}

// WithLogger sets the logger used for tracing. Defaults to a logger that
// discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Article) {
		a.logger = logger
	}
}

// Article extracts content from a single web page.
//
// Nothing is fetched on construction. The page is fetched, decoded and
// parsed once, by the first accessor that needs it, and every derived value
// is computed once and cached for the lifetime of the Article, errors
// included, unless the error came from a canceled context.
// Article is safe for concurrent use.
type Article struct {
	link      string
	threshold float64
	header    http.Header
	logger    *slog.Logger

	fetcher Fetcher
	decoder Decoder
	parser  Parser

	mu        sync.Mutex
	doc       lazy[Document]
	fetchedAt time.Time

	title       lazy[string]
	content     lazy[*Content]
	description lazy[string]
	preview     lazy[string]
	icon        lazy[string]
	keywords    lazy[[]string]
	rss         lazy[string]
	paywall     lazy[bool]
}

// NewArticle returns an Article for link. Returns EINVALID if link is empty,
// a collaborator is missing or the threshold is outside [0,1).
func NewArticle(link string, fetcher Fetcher, decoder Decoder, parser Parser, opts ...Option) (*Article, error) {
	a := &Article{
		link:      link,
		threshold: DefaultThreshold,
		fetcher:   fetcher,
		decoder:   decoder,
		parser:    parser,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.link == "" {
		return nil, Errorf(EINVALID, "article link required")
	}
	if a.fetcher == nil || a.decoder == nil || a.parser == nil {
		return nil, Errorf(EINVALID, "article fetcher, decoder and parser required")
	}
	if a.threshold < 0 || a.threshold >= 1 {
		return nil, Errorf(EINVALID, "threshold must be in [0,1), got %v", a.threshold)
	}
	return a, nil
}

// Link returns the article URL.
func (a *Article) Link() string {
	return a.link
}

// Title returns the article title.
// Returns ENOTITLE if the page has no usable title.
func (a *Article) Title(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.title.get(ctx, func() (string, error) {
		doc, err := a.document(ctx)
		if err != nil {
			return "", err
		}
		return doc.Title()
	})
}

// Content returns the sanitized main content of the article, or nil if the
// page body is empty.
func (a *Article) Content(ctx context.Context) (*Content, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.content.get(ctx, func() (*Content, error) {
		doc, err := a.document(ctx)
		if err != nil {
			return nil, err
		}
		return doc.Content(a.threshold)
	})
}

// Markup returns the main content as HTML, or "" if the page body is empty.
func (a *Article) Markup(ctx context.Context) (string, error) {
	c, err := a.Content(ctx)
	if err != nil || c == nil {
		return "", err
	}
	return c.Markup, nil
}

// Text returns the main content text, or "" if the page body is empty.
func (a *Article) Text(ctx context.Context) (string, error) {
	c, err := a.Content(ctx)
	if err != nil || c == nil {
		return "", err
	}
	return c.Text, nil
}

// Description returns the article description or "" if absent.
func (a *Article) Description(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.description.get(ctx, func() (string, error) {
		doc, err := a.document(ctx)
		if err != nil {
			return "", err
		}
		return doc.Description(), nil
	})
}

// Preview returns the absolute URL of the preview image or "" if absent.
func (a *Article) Preview(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.preview.get(ctx, func() (string, error) {
		doc, err := a.document(ctx)
		if err != nil {
			return "", err
		}
		return doc.Preview(), nil
	})
}

// Icon returns the absolute URL of the largest page icon or "" if absent.
func (a *Article) Icon(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.icon.get(ctx, func() (string, error) {
		doc, err := a.document(ctx)
		if err != nil {
			return "", err
		}
		return doc.Icon(), nil
	})
}

// Keywords returns the article keywords, or an empty slice if absent.
func (a *Article) Keywords(ctx context.Context) ([]string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.keywords.get(ctx, func() ([]string, error) {
		doc, err := a.document(ctx)
		if err != nil {
			return nil, err
		}
		return doc.Keywords(), nil
	})
}

// RSS returns the absolute URL of the article feed or "" if absent.
func (a *Article) RSS(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rss.get(ctx, func() (string, error) {
		doc, err := a.document(ctx)
		if err != nil {
			return "", err
		}
		return doc.RSS(), nil
	})
}

// HasPaywall reports whether the page declares paywalled content.
func (a *Article) HasPaywall(ctx context.Context) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.paywall.get(ctx, func() (bool, error) {
		doc, err := a.document(ctx)
		if err != nil {
			return false, err
		}
		return doc.HasPaywall(), nil
	})
}

// Record collects every accessor into a single Record.
func (a *Article) Record(ctx context.Context) (*Record, error) {
	rec := &Record{URL: a.link}

	var err error
	if rec.Title, err = a.Title(ctx); err != nil {
		return nil, err
	}
	content, err := a.Content(ctx)
	if err != nil {
		return nil, err
	}
	if content != nil {
		rec.Markup = content.Markup
		rec.Text = content.Text
	}
	if rec.Description, err = a.Description(ctx); err != nil {
		return nil, err
	}
	if rec.Preview, err = a.Preview(ctx); err != nil {
		return nil, err
	}
	if rec.Icon, err = a.Icon(ctx); err != nil {
		return nil, err
	}
	if rec.Keywords, err = a.Keywords(ctx); err != nil {
		return nil, err
	}
	if rec.RSS, err = a.RSS(ctx); err != nil {
		return nil, err
	}
	if rec.HasPaywall, err = a.HasPaywall(ctx); err != nil {
		return nil, err
	}

	a.mu.Lock()
	rec.FetchedAt = a.fetchedAt
	a.mu.Unlock()

	return rec, nil
}

// document returns the parsed page, loading it on first use.
// Must be called with a.mu held.
func (a *Article) document(ctx context.Context) (Document, error) {
	return a.doc.get(ctx, func() (Document, error) {
		return a.load(ctx)
	})
}

func (a *Article) load(ctx context.Context) (Document, error) {
	a.logger.Debug("loading article", "url", a.link)

	resp, err := a.fetcher.Fetch(ctx, a.link, a.header)
	if err != nil {
		a.logger.Debug("error loading article", "url", a.link, "err", err)
		return nil, fmt.Errorf("fetching %s: %w", a.link, err)
	}

	markup, err := a.decoder.Decode(resp)
	if err != nil {
		return nil, err
	}

	doc, err := a.parser.Parse(markup, a.link)
	if err != nil {
		return nil, err
	}
	a.fetchedAt = time.Now()

	a.logger.Debug("article loaded", "url", a.link, "bytes", len(resp.Body))
	return doc, nil
}

// lazy holds a value computed at most once.
type lazy[T any] struct {
	done  bool
	value T
	err   error
}

// get returns the cached value, computing it on first use. A failure
// caused by the caller abandoning ctx is not cached.
func (l *lazy[T]) get(ctx context.Context, compute func() (T, error)) (T, error) {
	if l.done {
		return l.value, l.err
	}
	value, err := compute()
	if err != nil && ctx.Err() != nil {
		return value, err
	}
	l.value, l.err, l.done = value, err, true
	return value, err
}
