package mock

import "github.com/fwojciec/articulo"

var _ articulo.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of articulo.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*articulo.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*articulo.ExtractResult, error) {
	return e.ExtractFn(html)
}
