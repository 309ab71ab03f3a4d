package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/articulo"
)

// Ensure LoggingExtractor implements articulo.Extractor.
var _ articulo.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   articulo.Extractor
	engine string
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. The engine name is
// attached to every log line.
func NewLoggingExtractor(next articulo.Extractor, engine string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, engine: engine, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (result *articulo.ExtractResult, err error) {
	defer func(begin time.Time) {
		title, bytes := "", 0
		if result != nil {
			title, bytes = result.Title, len(result.ContentHTML)
		}
		e.logger.Info("extract",
			"engine", e.engine,
			"title", title,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
