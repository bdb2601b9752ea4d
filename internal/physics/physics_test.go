package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"left of", Rect{X: -6, Y: 0, W: 5, H: 5}, false},
		{"above", Rect{X: 0, Y: -6, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, a))
		})
	}
}

func TestCenterDistance(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 30, Y: 40, W: 10, H: 10}
	assert.InDelta(t, 50.0, CenterDistance(a, b), 1e-9)
}

func TestRectCenter(t *testing.T) {
	x, y := Rect{X: 4, Y: 6, W: 10, H: 4}.Center()
	assert.Equal(t, 9.0, x)
	assert.Equal(t, 8.0, y)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3, 0, 10))
	assert.Equal(t, 10.0, Clamp(12, 0, 10))
	assert.Equal(t, 4.0, Clamp(4, 0, 10))
}
