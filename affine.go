package shape

import (
	"math"
)

// Affine describes an affine transform via the standard 2D 6-tuple
// (a, b, c, d, tx, ty).
//
// The resulting transformation represents this augmented matrix:
//
//	| a c tx |
//	| b d ty |
//	| 0 0  1 |
//
// This is consistent with the Wikipedia formulation of affine transformation
// as augmented matrix. The idea is that (A * B) * v == A * (B * v).
type Affine struct {
	A, B, C, D, TX, TY float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing rotation.
//
// The convention for rotation is that a positive angle rotates a positive X
// direction into positive Y. Thus, in a Y-down coordinate system (as is
// common for graphics), it is a clockwise rotation, and in Y-up (traditional
// for math), it is anti-clockwise.
//
// The angle th is expressed in radians.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout creates an affine transform representing a rotation of th
// radians about center.
//
// See [Rotate] for more info.
func RotateAbout(th float64, center Point) Affine {
	c := Vec2(center)
	return Translate(c.Negate()).ThenRotate(th).ThenTranslate(c)
}

// Coefficients returns the coefficients of the transform in
// (a, b, c, d, tx, ty) order.
func (aff Affine) Coefficients() [6]float64 {
	return [6]float64{aff.A, aff.B, aff.C, aff.D, aff.TX, aff.TY}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.A*o.A + aff.C*o.B,
		aff.B*o.A + aff.D*o.B,
		aff.A*o.C + aff.C*o.D,
		aff.B*o.C + aff.D*o.D,
		aff.A*o.TX + aff.C*o.TY + aff.TX,
		aff.B*o.TX + aff.D*o.TY + aff.TY,
	}
}

// PreRotate creates a rotation by th followed by aff.
//
// Equivalent to "aff * Rotate(th)"
func (aff Affine) PreRotate(th float64) Affine {
	return aff.Mul(Rotate(th))
}

// ThenRotate creates aff followed by a rotation of th.
//
// Equivalent to "Rotate(th) * aff"
func (aff Affine) ThenRotate(th float64) Affine {
	return Rotate(th).Mul(aff)
}

// PreScale creates a scale by (x, y) followed by aff.
//
// Equivalent to "aff * Scale(x, y)"
func (aff Affine) PreScale(x, y float64) Affine {
	return aff.Mul(Scale(x, y))
}

// ThenScale creates aff followed by a scale of (x, y).
//
// Equivalent to "Scale(x, y) * aff"
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// PreTranslate creates a translation of v followed by aff.
//
// Equivalent to "aff * Translate(v)"
func (aff Affine) PreTranslate(v Vec2) Affine {
	return aff.Mul(Translate(v))
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.TX += v.X
	aff.TY += v.Y
	return aff
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.A*aff.D - aff.B*aff.C
}

// Invert computes the inverse transform.
//
// Returns [ErrDegenerateTransform] if the determinant is zero or not finite.
func (aff Affine) Invert() (Affine, error) {
	det := aff.Determinant()
	if det == 0 || math.IsInf(det, 0) || math.IsNaN(det) {
		return Affine{}, ErrDegenerateTransform
	}
	invDet := 1 / det
	return Affine{
		+invDet * aff.D,
		-invDet * aff.B,
		-invDet * aff.C,
		+invDet * aff.A,
		+invDet * (aff.C*aff.TY - aff.D*aff.TX),
		+invDet * (aff.B*aff.TX - aff.A*aff.TY),
	}, nil
}

// Translation returns the translation component of this affine
// transformation.
func (aff Affine) Translation() Vec2 {
	return Vec2{
		X: aff.TX,
		Y: aff.TY,
	}
}

// TransformRectBoundingBox computes the bounding box of a transformed
// rectangle.
//
// Returns the minimal [Rect] that encloses the given rectangle after affine
// transformation. If the transform is axis-aligned, then this bounding box is
// "tight", in other words the returned rectangle is the transformed
// rectangle.
//
// The returned rectangle always has non-negative width and height.
func (aff Affine) TransformRectBoundingBox(rect Rect) Rect {
	r := rect.Abs()
	p00 := r.TopLeft().Transform(aff)
	p01 := r.BottomLeft().Transform(aff)
	p10 := r.TopRight().Transform(aff)
	p11 := r.BottomRight().Transform(aff)
	return NewRectFromPoints(p00, p01).Union(NewRectFromPoints(p10, p11))
}

// IsNaN reports whether any coefficient is NaN.
func (aff Affine) IsNaN() bool {
	return math.IsNaN(aff.A) ||
		math.IsNaN(aff.B) ||
		math.IsNaN(aff.C) ||
		math.IsNaN(aff.D) ||
		math.IsNaN(aff.TX) ||
		math.IsNaN(aff.TY)
}
