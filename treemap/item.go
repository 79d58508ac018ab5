// Package treemap lays out a weighted tree into nested pixel rectangles and
// rasterizes it with an incremental cushion-shading model.
package treemap

// Debug makes Draw run CheckTree on the item tree before every draw, an
// invariant check too expensive for a release build.
var Debug = false

// Rectangle is an integer rectangle in render-area coordinates, half-open on
// the right and bottom edges: a point (x, y) is inside iff
// X0 <= x < X1 && Y0 <= y < Y1.
type Rectangle struct {
	X0, Y0, X1, Y1 int
}

// Sentinel marks an item that was not laid out: zero size, or clipped by a
// prior sibling absorbing the remaining space.
var Sentinel = Rectangle{-1, -1, -1, -1}

// IsSentinel reports whether r is the sentinel rectangle.
func (r Rectangle) IsSentinel() bool {
	return r == Sentinel
}

// Width returns the rectangle's width. Negative for an inverted rectangle.
func (r Rectangle) Width() int { return r.X1 - r.X0 }

// Height returns the rectangle's height.
func (r Rectangle) Height() int { return r.Y1 - r.Y0 }

// Empty reports whether the rectangle has non-positive width or height.
func (r Rectangle) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Contains reports whether p lies inside r, using the half-open convention
// (closed on the top/left edges, open on the bottom/right edges), matching
// Win32's PtInRect semantics that the original control relies on for hit
// testing.
func (r Rectangle) Contains(p Point) bool {
	if r.IsSentinel() {
		return false
	}
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

// Item is the external capability set the treemap core needs from a node in
// the caller's weighted tree. The core owns no item storage: it reads Size,
// IsLeaf, ChildCount, Child and Color, and writes back Rectangle via
// SetRectangle during each draw.
//
// Invariant relied upon by the layout algorithms: Children must be sorted by
// Size descending, and for an internal node Size() must equal the sum of its
// children's Size(). Violating this is only checked when Debug is true; in
// release builds the behavior is whatever falls out of the arithmetic
// (matching the original's debug-only WEAK_ASSERTs).
type Item interface {
	Size() uint64
	IsLeaf() bool
	ChildCount() int
	Child(i int) Item
	Rectangle() Rectangle
	SetRectangle(r Rectangle)
	Color() GraphColor
}
