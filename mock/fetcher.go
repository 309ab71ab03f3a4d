package mock

import (
	"context"
	"net/http"

	"github.com/fwojciec/articulo"
)

var _ articulo.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of articulo.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string, header http.Header) (*articulo.Response, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string, header http.Header) (*articulo.Response, error) {
	return f.FetchFn(ctx, url, header)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ articulo.Decoder = (*Decoder)(nil)

// Decoder is a mock implementation of articulo.Decoder.
type Decoder struct {
	DecodeFn func(resp *articulo.Response) (string, error)
}

func (d *Decoder) Decode(resp *articulo.Response) (string, error) {
	return d.DecodeFn(resp)
}
