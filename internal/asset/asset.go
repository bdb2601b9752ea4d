// Package asset loads the sprite catalog. Sprites are ASCII masks where '#'
// marks a set pixel; anything else is transparent.
package asset

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/charmbracelet/log"
)

//go:embed sprites/*.txt
var embedded embed.FS

// Names lists every sprite the game asks for, in load order.
var Names = []string{
	"player", "laser",
	"ufo1", "ufo2", "ufo3", "ufo4", "ufo5", "ufo6", "ufo7", "ufo8",
	"ufo900",
	"bg1", "bg2", "bg3",
}

// Sprite is a parsed mask. It satisfies draw.Mask.
type Sprite struct {
	cols, rows int
	bits       []bool
}

// Size returns the mask dimensions.
func (s *Sprite) Size() (cols, rows int) {
	return s.cols, s.rows
}

// At reports whether the cell is set. Out-of-range cells are unset.
func (s *Sprite) At(col, row int) bool {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return false
	}
	return s.bits[row*s.cols+col]
}

// Parse reads a mask. Short lines are padded with transparent cells.
func Parse(text string) (*Sprite, error) {
	var lines []string
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty sprite")
	}

	s := &Sprite{rows: len(lines)}
	for _, l := range lines {
		s.cols = max(s.cols, len(l))
	}
	s.bits = make([]bool, s.cols*s.rows)
	for r, l := range lines {
		for c := 0; c < len(l); c++ {
			s.bits[r*s.cols+c] = l[c] == '#'
		}
	}
	return s, nil
}

// Catalog holds the sprites that loaded successfully.
type Catalog struct {
	sprites map[string]*Sprite
}

// Load reads every name in Names from dir inside fsys. A sprite that fails
// to load is skipped; callers draw a fallback shape for it. Missing files
// are expected and logged at Debug, broken ones at Warn.
func Load(fsys fs.FS, dir string, logger *log.Logger) *Catalog {
	c := &Catalog{sprites: make(map[string]*Sprite, len(Names))}
	for _, name := range Names {
		data, err := fs.ReadFile(fsys, path.Join(dir, name+".txt"))
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("Sprite not shipped, using fallback", "name", name)
			continue
		}
		if err != nil {
			logger.Warn("Sprite unavailable, using fallback", "name", name, "err", err)
			continue
		}
		s, err := Parse(string(data))
		if err != nil {
			logger.Warn("Sprite unreadable, using fallback", "name", name, "err", err)
			continue
		}
		c.sprites[name] = s
	}
	logger.Debug("Sprites loaded", "count", len(c.sprites), "wanted", len(Names))
	return c
}

// Default loads the sprites compiled into the binary.
func Default(logger *log.Logger) *Catalog {
	return Load(embedded, "sprites", logger)
}

// Available reports whether name loaded. Renderers draw a plain shape
// for anything that did not.
func (c *Catalog) Available(name string) bool {
	_, ok := c.sprites[name]
	return ok
}

// Sprite returns the named sprite, or nil when it is not Available.
func (c *Catalog) Sprite(name string) *Sprite {
	return c.sprites[name]
}
