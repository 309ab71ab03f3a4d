package http

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/articulo"
)

// Ensure FeedService implements articulo.FeedService.
var _ articulo.FeedService = (*FeedService)(nil)

// FeedService reads article links from RSS 2.0, RSS 1.0 and Atom feeds.
type FeedService struct {
	client *http.Client
}

// NewFeedService creates a new FeedService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewFeedService(client *http.Client) *FeedService {
	if client == nil {
		client = http.DefaultClient
	}
	return &FeedService{client: client}
}

// FeedLinks returns the item links of the feed in feed order, resolved
// against feedURL and without duplicates.
// Returns an empty slice (not nil) if the feed has no items.
func (s *FeedService) FeedLinks(ctx context.Context, feedURL string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(feedURL)
	if err != nil {
		return nil, articulo.Errorf(articulo.EINVALID, "invalid feed URL %q: %v", feedURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &articulo.HTTPError{StatusCode: resp.StatusCode, Reason: statusReason(resp)}
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("parsing feed XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, articulo.Errorf(articulo.EINVALID, "empty feed %s", feedURL)
	}

	var raw []string
	switch root.Tag {
	case "rss":
		if channel := root.SelectElement("channel"); channel != nil {
			raw = itemLinks(channel)
		}
	case "RDF":
		raw = itemLinks(root)
	case "feed":
		raw = entryLinks(root)
	default:
		return nil, articulo.Errorf(articulo.EINVALID, "%s is not an RSS or Atom feed", feedURL)
	}

	links := []string{}
	seen := make(map[string]bool)
	for _, link := range raw {
		ref, err := url.Parse(link)
		if err != nil {
			continue
		}
		abs := base.ResolveReference(ref).String()
		if !seen[abs] {
			seen[abs] = true
			links = append(links, abs)
		}
	}
	return links, nil
}

// itemLinks returns the <link> text of every <item> below parent.
func itemLinks(parent *etree.Element) []string {
	var links []string
	for _, item := range parent.SelectElements("item") {
		link := item.SelectElement("link")
		if link == nil {
			continue
		}
		if u := strings.TrimSpace(link.Text()); u != "" {
			links = append(links, u)
		}
	}
	return links
}

// entryLinks returns the alternate link of every Atom <entry>.
func entryLinks(feed *etree.Element) []string {
	var links []string
	for _, entry := range feed.SelectElements("entry") {
		for _, link := range entry.SelectElements("link") {
			rel := link.SelectAttrValue("rel", "alternate")
			href := strings.TrimSpace(link.SelectAttrValue("href", ""))
			if rel == "alternate" && href != "" {
				links = append(links, href)
				break
			}
		}
	}
	return links
}
