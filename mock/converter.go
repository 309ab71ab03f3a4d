package mock

import "github.com/fwojciec/articulo"

var _ articulo.Converter = (*Converter)(nil)

// Converter is a mock implementation of articulo.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
