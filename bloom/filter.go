// Package bloom remembers scheduled article URLs with a Bloom filter.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/articulo"
)

// Compile-time interface verification.
var _ articulo.URLSet = (*Filter)(nil)

// DefaultFalsePositiveRate is used by NewURLSet.
const DefaultFalsePositiveRate = 0.001

// Filter is an articulo.URLSet backed by a Bloom filter.
// It is safe for concurrent use.
type Filter struct {
	mu sync.RWMutex
	f  *bloom.BloomFilter
}

// NewFilter creates a Bloom filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{f: bloom.NewWithEstimates(n, fpRate)}
}

// NewURLSet creates a filter sized for n URLs at DefaultFalsePositiveRate.
func NewURLSet(n uint) *Filter {
	return NewFilter(n, DefaultFalsePositiveRate)
}

// Add adds a URL to the filter.
func (f *Filter) Add(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.f.AddString(url)
}

// Test reports whether the URL might have been added.
func (f *Filter) Test(url string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.f.TestString(url)
}

// TestAndAdd adds the URL and reports whether it might have been added
// before, in one step.
func (f *Filter) TestAndAdd(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestAndAddString(url)
}
