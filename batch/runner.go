// Package batch extracts many articles concurrently.
// It deduplicates links, waits on a per-domain rate limit before each fetch,
// and optionally persists every record it extracts.
package batch

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/fwojciec/articulo"
	"github.com/fwojciec/articulo/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of articles extracted at once when
// Runner.Concurrency is not set.
const DefaultConcurrency = 4

// ArticleFunc builds the Article for one link.
type ArticleFunc func(link string) (*articulo.Article, error)

// Runner extracts records for a list of links.
type Runner struct {
	// NewArticle builds the Article for each link. Required.
	NewArticle ArticleFunc

	// Limiter is waited on with the link's host before each extraction.
	Limiter articulo.DomainLimiter

	// Seen pre-filters links already scheduled. Defaults to a Bloom filter
	// sized for the run. A hit is confirmed against the exact links of the
	// run, so false positives never drop a link.
	Seen articulo.URLSet

	// Writer, if set, receives every record extracted without error.
	Writer articulo.Writer

	Concurrency int
	Logger      *slog.Logger
}

// Result is the outcome of one link.
type Result struct {
	URL    string
	Record *articulo.Record
	Err    error

	// Duplicate is set when the link was skipped because an earlier link
	// in the run pointed at the same page.
	Duplicate bool
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting progress.
// It is called from a single goroutine.
type ProgressFunc func(event ProgressEvent)

type job struct {
	position int
	link     string
}

// Run extracts every link and returns one Result per link in input order.
// Per-link failures are reported in Result.Err; Run itself only fails when
// the runner is misconfigured or ctx is canceled, in which case the partial
// results are returned with the error.
func (r *Runner) Run(ctx context.Context, links []string, progress ProgressFunc) ([]Result, error) {
	if r.NewArticle == nil {
		return nil, articulo.Errorf(articulo.EINVALID, "batch runner requires an article factory")
	}

	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	seen := r.Seen
	if seen == nil {
		seen = bloom.NewURLSet(uint(len(links)))
	}
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]Result, len(links))
	scheduled := make(map[string]struct{}, len(links))
	var jobs []job
	for i, link := range links {
		results[i].URL = link
		key := stripFragment(link)
		if seen.TestAndAdd(key) {
			if _, ok := scheduled[key]; ok {
				results[i].Duplicate = true
				logger.Debug("skipping duplicate", "url", link)
				continue
			}
		}
		scheduled[key] = struct{}{}
		jobs = append(jobs, job{position: i, link: link})
	}

	total := len(jobs)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan job, total)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, j := range jobs {
			g.Go(func() error {
				rec, err := r.process(gctx, j.link)
				results[j.position].Record = rec
				results[j.position].Err = err
				resultCh <- j
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var completed atomic.Int64
	for j := range resultCh {
		n := int(completed.Add(1))
		res := results[j.position]
		if res.Err != nil {
			logger.Warn("extraction failed", "url", res.URL, "err", res.Err)
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: n, Total: total, URL: res.URL, Error: res.Err})
			}
			continue
		}
		if progress != nil {
			progress(ProgressEvent{Type: ProgressCompleted, Completed: n, Total: total, URL: res.URL})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

// process extracts and optionally stores the record for one link.
func (r *Runner) process(ctx context.Context, link string) (*articulo.Record, error) {
	article, err := r.NewArticle(link)
	if err != nil {
		return nil, err
	}

	if r.Limiter != nil {
		if err := r.Limiter.Wait(ctx, hostOf(link)); err != nil {
			return nil, err
		}
	}

	rec, err := article.Record(ctx)
	if err != nil {
		return nil, err
	}

	if r.Writer != nil {
		if err := r.Writer.Write(ctx, rec); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// stripFragment drops the fragment so links to sections of one page
// collapse to that page.
func stripFragment(link string) string {
	if idx := strings.Index(link, "#"); idx != -1 {
		return link[:idx]
	}
	return link
}

func hostOf(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
