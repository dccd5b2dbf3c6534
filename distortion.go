package shape

// Distortion is a quadrilateral warp: it maps the canonical unit rect onto
// the quadrilateral described by its four corners, by bilinear interpolation.
// It is applied to the canonical path before the shape's affine transform.
//
// The zero value is not useful; start from [NewDistortionFromRect] (the
// identity warp for the unit rect) and move corners from there.
type Distortion struct {
	TopLeft     Point
	TopRight    Point
	BottomRight Point
	BottomLeft  Point
}

// NewDistortion returns the distortion with the given corners, in canonical
// space.
func NewDistortion(tl, tr, br, bl Point) Distortion {
	return Distortion{TopLeft: tl, TopRight: tr, BottomRight: br, BottomLeft: bl}
}

// NewDistortionFromRect returns the identity distortion for r: each corner
// maps to itself.
func NewDistortionFromRect(r Rect) Distortion {
	return Distortion{
		TopLeft:     r.TopLeft(),
		TopRight:    r.TopRight(),
		BottomRight: r.BottomRight(),
		BottomLeft:  r.BottomLeft(),
	}
}

// IsIdentity reports whether the distortion maps the unit rect's corners to
// themselves.
func (d Distortion) IsIdentity() bool {
	u := UnitRect()
	return d.TopLeft == u.TopLeft() &&
		d.TopRight == u.TopRight() &&
		d.BottomRight == u.BottomRight() &&
		d.BottomLeft == u.BottomLeft()
}

// Transform maps a point expressed in canonical coordinates through the
// warp. Points outside the unit rect extrapolate.
func (d Distortion) Transform(pt Point) Point {
	u := pt.X + 0.5
	v := pt.Y + 0.5
	top := d.TopLeft.Lerp(d.TopRight, u)
	bottom := d.BottomLeft.Lerp(d.BottomRight, u)
	return top.Lerp(bottom, v)
}

// TransformPath maps every control point of the path through the warp.
func (d Distortion) TransformPath(p Path) Path {
	out := make(Path, len(p))
	for i, el := range p {
		switch el.Kind {
		case MoveToKind, LineToKind:
			el.P0 = d.Transform(el.P0)
		case QuadToKind:
			el.P0 = d.Transform(el.P0)
			el.P1 = d.Transform(el.P1)
		case CubicToKind:
			el.P0 = d.Transform(el.P0)
			el.P1 = d.Transform(el.P1)
			el.P2 = d.Transform(el.P2)
		}
		out[i] = el
	}
	return out
}

// Corner returns the corner addressed by a distortion part code, or false
// for any other code.
func (d Distortion) Corner(pc PartCode) (Point, bool) {
	switch pc {
	case TopLeftDistort:
		return d.TopLeft, true
	case TopRightDistort:
		return d.TopRight, true
	case BottomRightDistort:
		return d.BottomRight, true
	case BottomLeftDistort:
		return d.BottomLeft, true
	default:
		return Point{}, false
	}
}

// WithCorner returns a copy of the distortion with the corner addressed by
// the part code replaced. Non-distortion codes return d unchanged.
func (d Distortion) WithCorner(pc PartCode, pt Point) Distortion {
	switch pc {
	case TopLeftDistort:
		d.TopLeft = pt
	case TopRightDistort:
		d.TopRight = pt
	case BottomRightDistort:
		d.BottomRight = pt
	case BottomLeftDistort:
		d.BottomLeft = pt
	}
	return d
}
