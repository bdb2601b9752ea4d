package asset

import "github.com/tomz197/ufostrike/internal/draw"

// Lookup returns the named sprite as a draw.Mask.
func (c *Catalog) Lookup(name string) (draw.Mask, bool) {
	s, ok := c.sprites[name]
	if !ok {
		return nil, false
	}
	return s, true
}
