// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Pos is a 2D integer coordinate. Copied by value everywhere it appears.
type Pos struct {
	X, Y int
}

// NewPos creates a position at (x, y).
func NewPos(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// Add returns the component-wise sum of two positions.
func (p Pos) Add(other Pos) Pos {
	return Pos{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the component-wise difference of two positions.
func (p Pos) Sub(other Pos) Pos {
	return Pos{X: p.X - other.X, Y: p.Y - other.Y}
}

// Size describes canvas or viewport extents in pixels.
type Size struct {
	Width, Height int
}

// NewSize creates a size with the given dimensions.
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// Line is a half-open interval [Start, End). A line is non-degenerate only
// when End exceeds Start.
type Line struct {
	Start int
	End   int // exclusive
}

// NewLine creates the interval [start, end).
func NewLine(start, end int) Line {
	return Line{Start: start, End: end}
}

// Len returns End - Start.
func (l Line) Len() int {
	return l.End - l.Start
}

// Translate shifts both endpoints by amount.
func (l Line) Translate(amount int) Line {
	return Line{Start: l.Start + amount, End: l.End + amount}
}

// Intersect returns the overlap of two intervals. ok is false when the
// overlap is empty; adjacency does not count as overlap.
func (l Line) Intersect(other Line) (Line, bool) {
	start := Max(l.Start, other.Start)
	end := Min(l.End, other.End)
	if start >= end {
		return Line{}, false
	}
	return Line{Start: start, End: end}, true
}

// Rect is an axis-aligned rectangle stored as its x and y extents.
type Rect struct {
	X, Y Line
}

// Intersect returns the overlapping rectangle. ok is false when either axis
// has no overlap.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	x, ok := r.X.Intersect(other.X)
	if !ok {
		return Rect{}, false
	}
	y, ok := r.Y.Intersect(other.Y)
	if !ok {
		return Rect{}, false
	}
	return Rect{X: x, Y: y}, true
}

// Size returns the rectangle's extents.
func (r Rect) Size() Size {
	return Size{Width: r.X.Len(), Height: r.Y.Len()}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
