// Package gfx provides the integer pixel-space geometry primitives shared
// by the widget tree, hit testing, and the tooltip placement engine.
package gfx

// Point is a position in pixel space.
type Point struct {
	X, Y int
}

// Add returns the point translated by p2.
func (p Point) Add(p2 Point) Point {
	return Point{p.X + p2.X, p.Y + p2.Y}
}

// Size is a width/height pair in pixels.
type Size struct {
	W, H int
}

// IsEmpty returns true if either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.W <= 0 || s.H <= 0
}

// Union grows the size to cover s2 in both dimensions.
func (s Size) Union(s2 Size) Size {
	if s2.W > s.W {
		s.W = s2.W
	}
	if s2.H > s.H {
		s.H = s2.H
	}
	return s
}

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	X, Y, W, H int
}

// RectFromSize returns a rectangle at origin with the given size.
func RectFromSize(s Size) Rect {
	return Rect{0, 0, s.W, s.H}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{r.X, r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{r.W, r.H}
}

// IsEmpty returns true if the rectangle covers no pixels.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{r.X + r.W/2, r.Y + r.H/2}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W &&
		p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects reports whether the two rectangles overlap by at least one
// pixel. Empty rectangles intersect nothing.
func (r Rect) Intersects(r2 Rect) bool {
	if r.IsEmpty() || r2.IsEmpty() {
		return false
	}
	return r.X < r2.X+r2.W && r2.X < r.X+r.W &&
		r.Y < r2.Y+r2.H && r2.Y < r.Y+r.H
}

// Offset returns the rectangle translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{r.X + dx, r.Y + dy, r.W, r.H}
}

// Inflate returns the rectangle grown by the given margins on every side.
func (r Rect) Inflate(dx, dy int) Rect {
	return Rect{r.X - dx, r.Y - dy, r.W + 2*dx, r.H + 2*dy}
}

// Clamp constrains v to the inclusive range [lo, hi]. If hi < lo the lower
// bound wins, which keeps a popup pinned to the origin when it is larger
// than the viewport.
func Clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
