package shape

import (
	"fmt"
	"math"
	"slices"
)

// PathElementKind identifies the kind of a path element.
type PathElementKind int

const (
	MoveToKind PathElementKind = iota + 1
	LineToKind
	QuadToKind
	CubicToKind
	ClosePathKind
)

// PathElement is a single drawing command. Depending on the kind, between
// zero and three of the points are used.
type PathElement struct {
	Kind       PathElementKind
	P0, P1, P2 Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case QuadToKind:
		return fmt.Sprintf("QuadTo(%s, %s)", el.P0, el.P1)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", el.P0, el.P1, el.P2)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return fmt.Sprintf("PathElement(%d)", el.Kind)
	}
}

// Transform applies the affine transform to all of the element's points.
func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind, LineToKind:
		el.P0 = el.P0.Transform(aff)
	case QuadToKind:
		el.P0 = el.P0.Transform(aff)
		el.P1 = el.P1.Transform(aff)
	case CubicToKind:
		el.P0 = el.P0.Transform(aff)
		el.P1 = el.P1.Transform(aff)
		el.P2 = el.P2.Transform(aff)
	}
	return el
}

// EndPoint returns the end point of the path element, or false if none
// exists. It exists for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// Path is a sequence of path elements describing lines and quadratic and
// cubic Béziers.
type Path []PathElement

// Push adds an element to the path.
func (p *Path) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *Path) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *Path) LineTo(pt Point) { p.Push(LineTo(pt)) }

// QuadTo pushes a "quad to" element onto the path.
func (p *Path) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

// CubicTo pushes a "curve to" element onto the path.
func (p *Path) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath pushes a "close path" element onto the path.
func (p *Path) ClosePath() { p.Push(ClosePath()) }

// Clone returns a copy of the path.
func (p Path) Clone() Path {
	return slices.Clone(p)
}

// Transform returns a new path with an affine transformation applied to the
// path.
func (p Path) Transform(aff Affine) Path {
	els := make(Path, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// HasSegments reports whether the path contains any segments. A path that
// consists only of MoveTo and ClosePath elements has no segments.
func (p Path) HasSegments() bool {
	for i := range p {
		if p[i].Kind != MoveToKind && p[i].Kind != ClosePathKind {
			return true
		}
	}
	return false
}

// Subpaths partitions the path into its subpaths. A subpath is a run of
// elements delineated by a "move to" element. A path with a single subpath
// yields a single-element result.
func (p Path) Subpaths() []Path {
	var out []Path
	var cur Path
	for _, el := range p {
		if el.Kind == MoveToKind && len(cur) > 0 {
			out = append(out, cur)
			cur = nil
		}
		cur = append(cur, el)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// ControlBox returns a rectangle that conservatively encloses the path.
//
// Unlike [Path.BoundingBox], this uses control points directly rather than
// computing tight bounds for curve elements.
func (p Path) ControlBox() Rect {
	first := true
	var cbox Rect
	addPt := func(pt Point) {
		if first {
			first = false
			cbox = NewRectFromPoints(pt, pt)
		} else {
			cbox = cbox.UnionPoint(pt)
		}
	}
	for i := range p {
		el := p[i]
		switch el.Kind {
		case MoveToKind, LineToKind:
			addPt(el.P0)
		case QuadToKind:
			addPt(el.P0)
			addPt(el.P1)
		case CubicToKind:
			addPt(el.P0)
			addPt(el.P1)
			addPt(el.P2)
		case ClosePathKind:
		}
	}
	return cbox
}

// BoundingBox returns the tight bounding box of the path, evaluating curve
// extrema exactly. A bare "move to" with no following segment does not
// contribute to the box.
func (p Path) BoundingBox() Rect {
	first := true
	var bbox Rect
	addPt := func(pt Point) {
		if first {
			first = false
			bbox = NewRectFromPoints(pt, pt)
		} else {
			bbox = bbox.UnionPoint(pt)
		}
	}
	var cur, start Point
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			cur = el.P0
			start = el.P0
		case LineToKind:
			addPt(cur)
			addPt(el.P0)
			cur = el.P0
		case QuadToKind:
			addPt(cur)
			addPt(el.P1)
			quadExtremaInto(addPt, cur, el.P0, el.P1)
			cur = el.P1
		case CubicToKind:
			addPt(cur)
			addPt(el.P2)
			cubicExtremaInto(addPt, cur, el.P0, el.P1, el.P2)
			cur = el.P2
		case ClosePathKind:
			cur = start
		}
	}
	return bbox
}

// quadExtremaInto adds the interior extrema of the quadratic Bézier
// (p0, p1, p2) to the bounding box accumulator.
func quadExtremaInto(addPt func(Point), p0, p1, p2 Point) {
	oneCoord := func(d0, d1 float64) (float64, bool) {
		// The derivative is 2((d1−d0)t + d0); it vanishes at t = d0/(d0−d1).
		den := d0 - d1
		if den == 0 {
			return 0, false
		}
		t := d0 / den
		return t, t > 0 && t < 1
	}
	d0 := p1.Sub(p0)
	d1 := p2.Sub(p1)
	if t, ok := oneCoord(d0.X, d1.X); ok {
		addPt(quadEval(p0, p1, p2, t))
	}
	if t, ok := oneCoord(d0.Y, d1.Y); ok {
		addPt(quadEval(p0, p1, p2, t))
	}
}

// cubicExtremaInto adds the interior extrema of the cubic Bézier
// (p0, p1, p2, p3) to the bounding box accumulator.
func cubicExtremaInto(addPt func(Point), p0, p1, p2, p3 Point) {
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := solveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0 && t < 1 {
				addPt(cubicEval(p0, p1, p2, p3, t))
			}
		}
	}
	d0 := p1.Sub(p0)
	d1 := p2.Sub(p1)
	d2 := p3.Sub(p2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
}

func quadEval(p0, p1, p2 Point, t float64) Point {
	mt := 1 - t
	return Pt(
		p0.X*mt*mt+2*p1.X*mt*t+p2.X*t*t,
		p0.Y*mt*mt+2*p1.Y*mt*t+p2.Y*t*t,
	)
}

func cubicEval(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	return Pt(
		p0.X*mt*mt*mt+3*p1.X*mt*mt*t+3*p2.X*mt*t*t+p3.X*t*t*t,
		p0.Y*mt*mt*mt+3*p1.Y*mt*mt*t+3*p2.Y*mt*t*t+p3.Y*t*t*t,
	)
}

// RectPath returns a closed rectangular path tracing r clockwise in a y-down
// space, starting at the top left corner.
func RectPath(r Rect) Path {
	var p Path
	p.MoveTo(r.TopLeft())
	p.LineTo(r.TopRight())
	p.LineTo(r.BottomRight())
	p.LineTo(r.BottomLeft())
	p.ClosePath()
	return p
}

// ovalArmLength is the control arm length for approximating a quarter circle
// of radius 1 with a single cubic Bézier.
//
// Solution from http://spencermortensen.com/articles/bezier-circle/
const ovalArmLength = 0.551915024494

// OvalPath returns a closed path approximating the oval inscribed in r, as
// four cubic Béziers starting at the middle of the right edge.
func OvalPath(r Rect) Path {
	c := r.Center()
	rx := 0.5 * r.Width
	ry := 0.5 * r.Height
	a := ovalArmLength
	var p Path
	p.MoveTo(Pt(c.X+rx, c.Y))
	const deltaTh = math.Pi / 2
	for ix := 1; ix <= 4; ix++ {
		th1 := deltaTh * float64(ix)
		th0 := th1 - deltaTh
		s0, c0 := math.Sincos(th0)
		var s1, c1 float64
		if ix == 4 {
			s1, c1 = 0.0, 1.0
		} else {
			s1, c1 = math.Sincos(th1)
		}
		p.CubicTo(
			Pt(c.X+rx*(c0-a*s0), c.Y+ry*(s0+a*c0)),
			Pt(c.X+rx*(c1+a*s1), c.Y+ry*(s1-a*c1)),
			Pt(c.X+rx*c1, c.Y+ry*s1),
		)
	}
	p.ClosePath()
	return p
}
