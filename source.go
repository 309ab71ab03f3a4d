package articulo

import "context"

// FeedService lists the article links of an RSS or Atom feed.
type FeedService interface {
	// FeedLinks returns the item links of the feed at feedURL in feed order.
	// Returns an empty slice if the feed has no items.
	FeedLinks(ctx context.Context, feedURL string) ([]string, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// URLSet remembers URLs that were already scheduled.
// Implementations may report false positives but never false negatives.
type URLSet interface {
	Add(url string)
	Test(url string) bool

	// TestAndAdd adds the URL and reports whether it might have been
	// added before.
	TestAndAdd(url string) bool
}
