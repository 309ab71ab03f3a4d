package mock

import (
	"context"

	"github.com/fwojciec/articulo"
)

var _ articulo.FeedService = (*FeedService)(nil)

// FeedService is a mock implementation of articulo.FeedService.
type FeedService struct {
	FeedLinksFn func(ctx context.Context, feedURL string) ([]string, error)
}

func (s *FeedService) FeedLinks(ctx context.Context, feedURL string) ([]string, error) {
	return s.FeedLinksFn(ctx, feedURL)
}

var _ articulo.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of articulo.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
