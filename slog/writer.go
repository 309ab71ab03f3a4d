package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/articulo"
)

// Ensure LoggingWriter implements articulo.Writer.
var _ articulo.Writer = (*LoggingWriter)(nil)

// LoggingWriter wraps a Writer with logging.
type LoggingWriter struct {
	next   articulo.Writer
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next articulo.Writer, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// Write delegates to the wrapped writer and logs the operation.
func (w *LoggingWriter) Write(ctx context.Context, rec *articulo.Record) (err error) {
	defer func(begin time.Time) {
		url := ""
		if rec != nil {
			url = rec.URL
		}
		w.logger.Info("write",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.Write(ctx, rec)
}
