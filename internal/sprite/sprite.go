package sprite

import "github.com/vovakirdan/pixel-dash/internal/core"

// Origin selects which edge of a sprite's bounding box is anchored to its
// stored position. With OriginMax the anchor is the high edge (inclusive),
// which keeps e.g. a jumping character's feet fixed while its sprite height
// changes across animation frames.
type Origin uint8

const (
	OriginMin Origin = iota
	OriginMax
)

// Anchor is the per-axis origin of a sprite.
type Anchor struct {
	X, Y Origin
}

// MinMin anchors both axes at the low edge.
func MinMin() Anchor { return Anchor{X: OriginMin, Y: OriginMin} }

// MinMax anchors x at the low edge and y at the high edge (feet on anchor).
func MinMax() Anchor { return Anchor{X: OriginMin, Y: OriginMax} }

// MaxMax anchors both axes at the high edge.
func MaxMax() Anchor { return Anchor{X: OriginMax, Y: OriginMax} }

// Sprite is a transient value combining an image, an anchor position, and a
// per-axis origin. Sprites are created fresh every frame and own no state.
type Sprite struct {
	Image    Image
	Position core.Pos
	Origin   Anchor
}

// BoundingBox derives the sprite's axis-aligned extent in game coordinates.
// Min-origin boxes extend forward from the anchor; Max-origin boxes extend
// backward, ending just past the anchor so the anchor row/column is included.
func (s Sprite) BoundingBox() core.Rect {
	x, y := s.Position.X, s.Position.Y
	w := s.Image.Width
	h := s.Image.Height()

	var box core.Rect

	switch s.Origin.X {
	case OriginMin:
		box.X = core.NewLine(x, x+w)
	case OriginMax:
		box.X = core.NewLine(x-w+1, x+1)
	}

	switch s.Origin.Y {
	case OriginMin:
		box.Y = core.NewLine(y, y+h)
	case OriginMax:
		box.Y = core.NewLine(y-h+1, y+1)
	}

	return box
}

// DrawRect is a positioned, clipped draw command: the visible part of an
// image projected into canvas coordinates. Produced by Sprite.Rect and
// consumed by the canvas painter.
type DrawRect struct {
	Image       Image
	ImageOffset core.Pos // rows/columns of the image to skip (off-canvas part)
	Rect        core.Rect
}

// clip computes the visible slice of one axis: the image-space offset to skip
// when the sprite starts before the canvas origin, and the destination range
// clamped to the canvas extent. ok is false when nothing is visible.
func clip(window int, rng core.Line) (imageOffset int, pos core.Line, ok bool) {
	if rng.End <= 0 || window <= rng.Start {
		return 0, core.Line{}, false
	}

	return core.Max(-rng.Start, 0),
		core.NewLine(core.Max(rng.Start, 0), core.Min(rng.End, window)),
		true
}

// Rect projects the sprite into canvas coordinates and clips it against the
// canvas bounds. The game's y axis points up while the canvas rasters top
// down, so the y extent is reflected about the canvas origin (origin.Y is the
// canvas row of game y = 0). ok is false when the sprite is entirely
// off-canvas, which is a normal outcome and simply skips the draw.
func (s Sprite) Rect(origin core.Pos, canvas core.Size) (DrawRect, bool) {
	box := s.BoundingBox()

	xOffset, xPos, ok := clip(canvas.Width, box.X.Translate(origin.X))
	if !ok {
		return DrawRect{}, false
	}

	// Reflect the y extent: the box spans rows around Position.Y, shifting by
	// origin.Y - 2*Position.Y lands the anchor at row origin.Y - Position.Y.
	yOffset, yPos, ok := clip(canvas.Height, box.Y.Translate(origin.Y-s.Position.Y*2))
	if !ok {
		return DrawRect{}, false
	}

	return DrawRect{
		Image:       s.Image,
		ImageOffset: core.NewPos(xOffset, yOffset),
		Rect:        core.Rect{X: xPos, Y: yPos},
	}, true
}

// Collide reports whether two sprites share at least one opaque pixel.
// Bounding boxes are intersected first; within the overlap the corresponding
// bit rows are column-aligned by right-shifting the row that starts further
// left, then tested with a bitwise AND. Overlapping boxes with disjoint
// bitmasks do not collide.
func (s Sprite) Collide(other Sprite) bool {
	boxA := s.BoundingBox()
	boxB := other.BoundingBox()

	intersection, ok := boxA.Intersect(boxB)
	if !ok {
		return false
	}

	for y := intersection.Y.Start; y < intersection.Y.End; y++ {
		rowA := s.Image.Rows[y-boxA.Y.Start]
		rowB := other.Image.Rows[y-boxB.Y.Start]

		if boxA.X.Start < boxB.X.Start {
			rowA >>= uint(boxB.X.Start - boxA.X.Start)
		} else {
			rowB >>= uint(boxA.X.Start - boxB.X.Start)
		}

		if rowA&rowB != 0 {
			return true
		}
	}

	return false
}
