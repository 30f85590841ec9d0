package mock

import "github.com/fwojciec/rndocs"

var _ rndocs.Converter = (*Converter)(nil)

// Converter is a mock implementation of rndocs.Converter.
type Converter struct {
	ConvertFn func(markup string) string
}

func (c *Converter) Convert(markup string) string {
	return c.ConvertFn(markup)
}
