// Package http provides an HTTP-based implementation of articulo.Fetcher
// for pages that don't require JavaScript rendering, and a FeedService
// that reads RSS and Atom feeds.
package http

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/articulo"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Kept consistent with rod.DefaultFetchTimeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements articulo.Fetcher at compile time.
var _ articulo.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw page bytes using HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithClient sets the underlying HTTP client. The client's own timeout is
// replaced by the fetcher timeout.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{}
	} else {
		c := *f.client
		f.client = &c
	}
	f.client.Timeout = f.timeout

	return f
}

// Fetch requests url with the given headers and returns the raw response.
// Only the caller's headers are sent. A non-2xx status is returned as an
// *articulo.HTTPError. There are no retries.
func (f *Fetcher) Fetch(ctx context.Context, url string, header http.Header) (*articulo.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, articulo.Errorf(articulo.EINVALID, "invalid url %q: %v", url, err)
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &articulo.HTTPError{
			StatusCode: resp.StatusCode,
			Reason:     statusReason(resp),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body of %s: %w", url, err)
	}

	return &articulo.Response{
		URL:        resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Charset:    contentCharset(resp.Header.Get("Content-Type")),
		Body:       body,
	}, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// statusReason returns the reason phrase of the response status line,
// falling back to the standard text for the code.
func statusReason(resp *http.Response) string {
	code := fmt.Sprintf("%d ", resp.StatusCode)
	if reason, ok := strings.CutPrefix(resp.Status, code); ok && reason != "" {
		return reason
	}
	return http.StatusText(resp.StatusCode)
}

// contentCharset returns the charset parameter of a Content-Type header,
// or "" if there is none.
func contentCharset(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(params["charset"]))
}
