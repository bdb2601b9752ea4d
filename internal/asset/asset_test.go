package asset

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestParsePadsShortLines(t *testing.T) {
	s, err := Parse("#.#\n#\n\n.##\n")
	require.NoError(t, err)

	cols, rows := s.Size()
	assert.Equal(t, 3, cols)
	assert.Equal(t, 3, rows)
	assert.True(t, s.At(0, 0))
	assert.False(t, s.At(1, 0))
	assert.False(t, s.At(2, 1))
	assert.True(t, s.At(2, 2))
	assert.False(t, s.At(5, 5))
}

func TestParseRejectsEmpty(t *testing.T) {
	_, err := Parse("\n  \n")
	assert.Error(t, err)
}

func TestLoadSkipsFailures(t *testing.T) {
	fsys := fstest.MapFS{
		"s/player.txt": {Data: []byte("##\n##\n")},
		"s/laser.txt":  {Data: []byte("\n")},
	}
	c := Load(fsys, "s", quietLogger())

	assert.True(t, c.Available("player"))
	assert.False(t, c.Available("laser"))
	assert.False(t, c.Available("ufo1"))
	assert.Nil(t, c.Sprite("ufo1"))

	m, ok := c.Lookup("player")
	require.True(t, ok)
	cols, rows := m.Size()
	assert.Equal(t, 2, cols)
	assert.Equal(t, 2, rows)
}

func TestLoadLogsOnlyBrokenSprites(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel})
	fsys := fstest.MapFS{
		"s/player.txt": {Data: []byte("##\n")},
		"s/ufo1.txt":   {Data: []byte("\n\n")},
	}

	c := Load(fsys, "s", logger)

	assert.True(t, c.Available("player"))
	assert.False(t, c.Available("laser"))
	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "\n"), out)
	assert.Contains(t, out, "ufo1")
	assert.NotContains(t, out, "laser")
}

func TestDefaultCatalogIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	Default(log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel}))
	assert.Empty(t, buf.String())
}

func TestDefaultCatalog(t *testing.T) {
	c := Default(quietLogger())
	for _, name := range []string{"player", "laser", "ufo1", "ufo5", "ufo900", "bg1"} {
		assert.True(t, c.Available(name), name)
	}
	// Not shipped: the renderer falls back to plain shapes.
	assert.False(t, c.Available("ufo4"))
	assert.False(t, c.Available("bg3"))
}
