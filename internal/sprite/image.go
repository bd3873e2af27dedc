// Package sprite implements the bitmap sprite and pixel collision engine.
// Images are bit-plane bitmaps: each row is a uint32 mask where bit i is
// column i (least-significant bit first). Sprites position an image on the
// game's pixel grid and support exact bit-level collision and clipped
// projection onto a raster canvas.
package sprite

import "github.com/vovakirdan/pixel-dash/internal/core"

// MaxImageWidth is the widest representable image in pixels. Rows are uint32
// bitmasks, so images beyond 32 columns cannot be expressed.
const MaxImageWidth = 32

// Image is an immutable bitmap: bit-per-pixel rows, a declared width, and a
// display color. Height is the row count. Images are static constant data;
// they are never mutated after construction.
type Image struct {
	Rows  []uint32
	Width int
	Color core.Color
}

// Height returns the number of pixel rows.
func (img Image) Height() int {
	return len(img.Rows)
}

// Animation is an ordered, non-empty sequence of images cycled by frame
// number. It is stateless: frame selection is pure modular arithmetic.
type Animation []Image

// Frame returns images[n mod len]. The cycle is infinite in both the frame
// counter and the image sequence.
func (a Animation) Frame(n int) Image {
	return a[n%len(a)]
}
