package articulo

import (
	"context"
	"net/http"
)

// Response is the raw result of fetching a page.
type Response struct {
	// URL is the final URL after redirects.
	URL string

	StatusCode int

	// Status is the status line without the protocol (e.g., "404 Not Found").
	Status string

	// Charset is the charset declared by the server, if any.
	Charset string

	Body []byte
}

// Fetcher retrieves raw page bytes from URLs.
type Fetcher interface {
	// Fetch retrieves the page at url, sending header in addition to
	// whatever the implementation sends by default.
	// Returns *HTTPError when the server answers with a non-success status.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string, header http.Header) (*Response, error)

	// Close releases resources held by the fetcher.
	Close() error
}

// Decoder converts fetched bytes to markup text.
type Decoder interface {
	// Decode returns the response body as text.
	// Returns EDECODING if no candidate charset can decode the body.
	Decode(resp *Response) (string, error)
}
