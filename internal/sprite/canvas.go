package sprite

import "github.com/vovakirdan/pixel-dash/internal/core"

// Canvas is a low-resolution raster the games draw onto. Each pixel holds a
// color; core.ColorNone means unlit. The platform renderer converts the
// raster to terminal cells (two pixel rows per character row).
type Canvas struct {
	size   core.Size
	origin core.Pos
	pixels []core.Color
}

// NewCanvas creates an empty canvas of the given pixel size.
func NewCanvas(size core.Size) *Canvas {
	return &Canvas{
		size:   size,
		pixels: make([]core.Color, size.Width*size.Height),
	}
}

// Size returns the canvas extent in pixels.
func (c *Canvas) Size() core.Size {
	return c.size
}

// SetOrigin places the game-coordinate origin on the canvas: origin.X is the
// canvas column of game x = 0 and origin.Y the canvas row of game y = 0
// (game y points up, canvas rows grow down).
func (c *Canvas) SetOrigin(origin core.Pos) {
	c.origin = origin
}

// Resize reallocates the raster for a new viewport size and clears it.
func (c *Canvas) Resize(size core.Size) {
	if size == c.size {
		return
	}
	c.size = size
	c.pixels = make([]core.Color, size.Width*size.Height)
}

// Clear unsets every pixel.
func (c *Canvas) Clear() {
	for i := range c.pixels {
		c.pixels[i] = core.ColorNone
	}
}

// Paint lights a single pixel. Out-of-bounds coordinates are silently
// ignored; Draw pre-clips, so this only guards direct callers.
func (c *Canvas) Paint(x, y int, color core.Color) {
	if x < 0 || x >= c.size.Width || y < 0 || y >= c.size.Height {
		return
	}
	c.pixels[y*c.size.Width+x] = color
}

// At returns the pixel color at canvas coordinates (x, y).
// Returns core.ColorNone for out-of-bounds coordinates.
func (c *Canvas) At(x, y int) core.Color {
	if x < 0 || x >= c.size.Width || y < 0 || y >= c.size.Height {
		return core.ColorNone
	}
	return c.pixels[y*c.size.Width+x]
}

// Draw projects the sprite through the canvas origin, clips it, and paints
// the visible pixels. Fully off-canvas sprites are skipped.
func (c *Canvas) Draw(s Sprite) {
	rect, ok := s.Rect(c.origin, c.size)
	if !ok {
		return
	}
	rect.Paint(c)
}

// Painter receives individual lit pixels from a DrawRect.
type Painter interface {
	Paint(x, y int, color core.Color)
}

// Paint walks the clipped image region and emits every set bit to the
// painter, row by row. The row mask is pre-shifted by the x image offset so
// bit 0 corresponds to the first visible column.
func (d DrawRect) Paint(p Painter) {
	imageY := d.ImageOffset.Y

	for y := d.Rect.Y.Start; y < d.Rect.Y.End; y++ {
		bits := d.Image.Rows[imageY] >> uint(d.ImageOffset.X)

		for x := d.Rect.X.Start; x < d.Rect.X.End; x++ {
			if bits&1 == 1 {
				p.Paint(x, y, d.Image.Color)
			}
			bits >>= 1
		}

		imageY++
	}
}
