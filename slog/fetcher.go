// Package slog provides log/slog decorators for articulo services.
package slog

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/articulo"
)

// Ensure LoggingFetcher implements articulo.Fetcher.
var _ articulo.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   articulo.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next articulo.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string, header http.Header) (resp *articulo.Response, err error) {
	defer func(begin time.Time) {
		bytes, status := 0, 0
		if resp != nil {
			bytes, status = len(resp.Body), resp.StatusCode
		}
		f.logger.Info("fetch",
			"url", url,
			"status", status,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url, header)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
