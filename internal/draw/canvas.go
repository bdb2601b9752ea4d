// Package draw renders logical-space shapes to a terminal using half-block
// characters, two vertical sub-pixels per cell.
package draw

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
	BlockEmpty     = ' '
)

// Mask is a monochrome bitmap that can be stretched over a rectangle.
type Mask interface {
	Size() (cols, rows int)
	At(col, row int) bool
}

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
type Canvas struct {
	termWidth      int    // Terminal columns used by the canvas
	termHeight     int    // Terminal rows used by the canvas
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x]

	// prev holds the rune last written to each cell; only changed cells are
	// re-sent on Render. Zero means "unknown", forcing a write.
	prev []rune

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // subPixelHeight / logicalHeight

	// 0-based terminal offsets for centering the render area.
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]bool, c.subPixelHeight*termWidth)
		c.prev = make([]rune, termWidth*termHeight)
	}
	c.scaleX = float64(c.termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.ForceRedraw()
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ForceRedraw makes the next Render write every cell.
func (c *Canvas) ForceRedraw() {
	clear(c.prev)
}

// MarkTextDirty records that text overwrote n cells starting at the given
// 1-based canvas position, so the canvas repaints them next frame.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	r := row - 1
	if r < 0 || r >= c.termHeight {
		return
	}
	for i := 0; i < n; i++ {
		x := col - 1 + i
		if x >= 0 && x < c.termWidth {
			c.prev[r*c.termWidth+x] = 0
		}
	}
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Pixel reports whether the sub-pixel at terminal coordinates is set.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

// SetFloat sets a pixel using float logical coordinates (applies scaling).
func (c *Canvas) SetFloat(x, y float64) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)))
}

// pixelSpan converts a logical interval to an inclusive pixel range,
// always covering at least one pixel.
func pixelSpan(start, length, scale float64) (int, int) {
	p0 := int(math.Floor(start * scale))
	p1 := int(math.Ceil((start+length)*scale)) - 1
	if p1 < p0 {
		p1 = p0
	}
	return p0, p1
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// FillRect fills a logical rectangle.
func (c *Canvas) FillRect(x, y, w, h float64) {
	px0, px1 := pixelSpan(x, w, c.scaleX)
	py0, py1 := pixelSpan(y, h, c.scaleY)
	for py := py0; py <= py1; py++ {
		for px := px0; px <= px1; px++ {
			c.setPixel(px, py)
		}
	}
}

// Blit stretches mask over a logical rectangle, setting pixels where the
// mask is set.
func (c *Canvas) Blit(x, y, w, h float64, mask Mask) {
	cols, rows := mask.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	px0, px1 := pixelSpan(x, w, c.scaleX)
	py0, py1 := pixelSpan(y, h, c.scaleY)
	pw := px1 - px0 + 1
	ph := py1 - py0 + 1
	for py := py0; py <= py1; py++ {
		row := (py - py0) * rows / ph
		for px := px0; px <= px1; px++ {
			col := (px - px0) * cols / pw
			if mask.At(col, row) {
				c.setPixel(px, py)
			}
		}
	}
}

// StrokeCircle draws the outline of a logical circle. Unequal axis scales
// make it an ellipse in pixel space.
func (c *Canvas) StrokeCircle(cx, cy, r float64) {
	if r <= 0 {
		return
	}
	rx := r * c.scaleX
	ry := r * c.scaleY
	steps := int(2*math.Pi*math.Max(rx, ry)) + 8
	for i := 0; i < steps; i++ {
		a := float64(i) * 2 * math.Pi / float64(steps)
		c.setPixel(
			int(math.Round(cx*c.scaleX+math.Cos(a)*rx)),
			int(math.Round(cy*c.scaleY+math.Sin(a)*ry)),
		)
	}
}

// FillCircle fills a logical circle. Circles smaller than a pixel still
// set the pixel under their centre.
func (c *Canvas) FillCircle(cx, cy, r float64) {
	if r <= 0 {
		return
	}
	pcx := cx * c.scaleX
	pcy := cy * c.scaleY
	rx := r * c.scaleX
	ry := r * c.scaleY

	c.setPixel(int(math.Round(pcx)), int(math.Round(pcy)))

	for py := int(math.Floor(pcy - ry)); py <= int(math.Ceil(pcy+ry)); py++ {
		dy := (float64(py) - pcy) / ry
		for px := int(math.Floor(pcx - rx)); px <= int(math.Ceil(pcx+rx)); px++ {
			dx := (float64(px) - pcx) / rx
			if dx*dx+dy*dy <= 1 {
				c.setPixel(px, py)
			}
		}
	}
}

// cellRune returns the half-block character for a terminal cell.
func (c *Canvas) cellRune(col, row int) rune {
	top := c.pixels[row*2*c.termWidth+col]
	bottom := c.pixels[(row*2+1)*c.termWidth+col]
	switch {
	case top && bottom:
		return BlockFull
	case top:
		return BlockUpperHalf
	case bottom:
		return BlockLowerHalf
	default:
		return BlockEmpty
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
const maxChunkSize = 1400

// Render writes every cell that changed since the previous Render.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	for row := 0; row < c.termHeight; row++ {
		cursorCol := -1
		for col := 0; col < c.termWidth; col++ {
			ch := c.cellRune(col, row)
			idx := row*c.termWidth + col
			if c.prev[idx] == ch {
				continue
			}
			c.prev[idx] = ch

			// Consecutive changed cells share one cursor move.
			if cursorCol != col {
				c.renderBuf.WriteString("\033[")
				c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row+1+c.offsetRow), 10))
				c.renderBuf.WriteByte(';')
				c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col+1+c.offsetCol), 10))
				c.renderBuf.WriteByte('H')
			}
			c.renderBuf.WriteRune(ch)
			cursorCol = col + 1
		}
	}

	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

// LogicalWidth returns the logical width (target resolution).
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// TerminalWidth returns the canvas width in terminal columns.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas height in terminal rows.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
