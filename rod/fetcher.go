// Package rod provides an articulo.Fetcher that renders pages in headless
// Chrome, for articles whose content is assembled by JavaScript.
package rod

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/fwojciec/articulo"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout is the default time allowed for loading one page.
const DefaultFetchTimeout = 10 * time.Second

// serializeJS returns the rendered document including open shadow roots,
// which page.HTML leaves out.
const serializeJS = `() => {
	const roots = [];
	const walk = (node) => {
		for (const el of node.querySelectorAll('*')) {
			if (el.shadowRoot) {
				roots.push(el.shadowRoot);
				walk(el.shadowRoot);
			}
		}
	};
	walk(document);
	const root = document.documentElement;
	if (typeof root.getHTML !== 'function') {
		return root.outerHTML;
	}
	return '<html>' + root.getHTML({ shadowRoots: roots }) + '</html>';
}`

// Ensure Fetcher implements articulo.Fetcher at compile time.
var _ articulo.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager  *BrowserManager
	timeout  time.Duration
	maxPages int64
	logger   *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the time allowed for loading one page.
// Defaults to DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRecycleAfter sets how many pages the browser serves before it is
// replaced with a fresh instance. Defaults to DefaultMaxPages.
func WithRecycleAfter(n int64) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// WithBrowserLogger sets the logger that receives browser lifecycle events.
func WithBrowserLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		maxPages: DefaultMaxPages,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager(WithMaxPages(f.maxPages), WithLogger(f.logger))
	if err != nil {
		return nil, err
	}
	f.manager = manager

	return f, nil
}

// Fetch navigates to url, waits for the page to load and returns the
// rendered document. Headers are sent with every request the page makes.
// A non-2xx status of the main document is returned as an
// *articulo.HTTPError.
func (f *Fetcher) Fetch(ctx context.Context, url string, header http.Header) (*articulo.Response, error) {
	if f.manager.closed.Load() {
		return nil, articulo.Errorf(articulo.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	browser := f.manager.Browser()
	if browser == nil {
		return nil, articulo.Errorf(articulo.EINVALID, "fetcher is closed")
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer page.Close()
	defer f.manager.IncrementPageCount()

	page = page.Context(ctx)

	if len(header) > 0 {
		var pairs []string
		for key := range header {
			pairs = append(pairs, key, header.Get(key))
		}
		cleanup, err := page.SetExtraHeaders(pairs)
		if err != nil {
			return nil, err
		}
		defer cleanup()
	}

	var (
		mu     sync.Mutex
		status int
		reason string
	)
	go page.EachEvent(func(e *proto.NetworkResponseReceived) bool {
		if e.Type != proto.NetworkResourceTypeDocument {
			return false
		}
		mu.Lock()
		status, reason = e.Response.Status, e.Response.StatusText
		mu.Unlock()
		return true
	})()

	if err := page.Navigate(url); err != nil {
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	mu.Lock()
	code, text := status, reason
	mu.Unlock()
	if code == 0 {
		code = http.StatusOK
	}
	if text == "" {
		text = http.StatusText(code)
	}
	if code < 200 || code > 299 {
		return nil, &articulo.HTTPError{StatusCode: code, Reason: text}
	}

	res, err := page.Eval(serializeJS)
	if err != nil {
		return nil, err
	}
	body := res.Value.Str()

	info, err := page.Info()
	finalURL := url
	if err == nil && info.URL != "" {
		finalURL = info.URL
	}

	return &articulo.Response{
		URL:        finalURL,
		StatusCode: code,
		Status:     fmt.Sprintf("%d %s", code, text),
		Charset:    "utf-8",
		Body:       []byte(body),
	}, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}

// LauncherPID returns the process ID of the browser launcher.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}
