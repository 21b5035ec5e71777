package mock

import "github.com/fwojciec/yoola"

var _ yoola.Converter = (*Converter)(nil)

// Converter is a mock implementation of yoola.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
