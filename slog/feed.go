package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/articulo"
)

// Ensure LoggingFeedService implements articulo.FeedService.
var _ articulo.FeedService = (*LoggingFeedService)(nil)

// LoggingFeedService wraps a FeedService with logging.
type LoggingFeedService struct {
	next   articulo.FeedService
	logger *slog.Logger
}

// NewLoggingFeedService creates a new LoggingFeedService.
func NewLoggingFeedService(next articulo.FeedService, logger *slog.Logger) *LoggingFeedService {
	return &LoggingFeedService{next: next, logger: logger}
}

// FeedLinks delegates to the wrapped service and logs the operation.
func (s *LoggingFeedService) FeedLinks(ctx context.Context, feedURL string) (links []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("feed",
			"url", feedURL,
			"count", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FeedLinks(ctx, feedURL)
}
