package shape

import (
	"fmt"
)

// Rect is an axis-aligned rectangle, stored as origin and size. Width and
// height may be negative; use [Rect.Abs] to normalize.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect returns the rectangle with origin (x, y) and the given size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1,
// ensuring that width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{
		X:      min(p0.X, p1.X),
		Y:      min(p0.Y, p1.Y),
		Width:  max(p0.X, p1.X) - min(p0.X, p1.X),
		Height: max(p0.Y, p1.Y) - min(p0.Y, p1.Y),
	}
}

// NewRectFromCenter returns a rectangle of the given size centered around the
// center point.
func NewRectFromCenter(center Point, size Size) Rect {
	return Rect{
		X:      center.X - 0.5*size.Width,
		Y:      center.Y - 0.5*size.Height,
		Width:  size.Width,
		Height: size.Height,
	}
}

// UnitRect returns the unit rect centered at the origin. It is the bounding
// box of every canonical path stored by a shape.
func UnitRect() Rect {
	return Rect{X: -0.5, Y: -0.5, Width: 1, Height: 1}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", r.X, r.Y, r.Width, r.Height)
}

// Abs returns a new rectangle with the same extents as r, but ensuring that
// width and height are non-negative.
func (r Rect) Abs() Rect {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

func (r Rect) MinX() float64 { return min(r.X, r.X+r.Width) }
func (r Rect) MaxX() float64 { return max(r.X, r.X+r.Width) }
func (r Rect) MinY() float64 { return min(r.Y, r.Y+r.Height) }
func (r Rect) MaxY() float64 { return max(r.Y, r.Y+r.Height) }

// Origin returns the rectangle's origin. For a non-negative size this is the
// top left corner in a y-down space.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

func (r Rect) Center() Point {
	return Point{
		X: r.X + 0.5*r.Width,
		Y: r.Y + 0.5*r.Height,
	}
}

// Corners of a normalized rectangle, in a y-down space.
func (r Rect) TopLeft() Point     { return Pt(r.MinX(), r.MinY()) }
func (r Rect) TopRight() Point    { return Pt(r.MaxX(), r.MinY()) }
func (r Rect) BottomLeft() Point  { return Pt(r.MinX(), r.MaxY()) }
func (r Rect) BottomRight() Point { return Pt(r.MaxX(), r.MaxY()) }

// IsDegenerate reports whether the rectangle has zero width or height.
func (r Rect) IsDegenerate() bool {
	return r.Width == 0 || r.Height == 0
}

// Union returns the smallest rectangle enclosing r and o. Both inputs must be
// normalized.
func (r Rect) Union(o Rect) Rect {
	x0 := min(r.X, o.X)
	y0 := min(r.Y, o.Y)
	x1 := max(r.X+r.Width, o.X+o.Width)
	y1 := max(r.Y+r.Height, o.Y+o.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// UnionPoint computes the union with one point. This includes the perimeter
// of zero-area rectangles, so a succession of UnionPoint operations on a
// series of points yields their enclosing rectangle. r must be normalized.
func (r Rect) UnionPoint(pt Point) Rect {
	x0 := min(r.X, pt.X)
	y0 := min(r.Y, pt.Y)
	x1 := max(r.X+r.Width, pt.X)
	y1 := max(r.Y+r.Height, pt.Y)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
