package shape

// Transform returns the affine transform representing the shape's
// parameters: it converts the canonical path to its final form in drawing
// space. The composition is, in application order: translate by −offset,
// scale, rotate, translate to the location.
//
// This transform is local, i.e. it does not factor in any parent's
// transform. It is a pure function of the parameters and safe to call from
// multiple concurrent readers.
func (s *Shape) Transform() Affine {
	return Translate(Vec2(s.location)).
		PreRotate(s.angle).
		PreScale(s.scale.Width, s.scale.Height).
		PreTranslate(s.offset.AsVec2().Negate())
}

// TransformIncludingParent composes the shape's transform with the transform
// of a containing group or layer, applied after the local transform.
func (s *Shape) TransformIncludingParent(parent Affine) Affine {
	return parent.Mul(s.Transform())
}

// InverseTransform returns the inverse of [Shape.Transform], converting the
// final path back to canonical form. If either scale component is zero there
// is no valid inverse and [ErrDegenerateTransform] is returned.
func (s *Shape) InverseTransform() (Affine, error) {
	if s.scale.IsDegenerate() {
		return Affine{}, ErrDegenerateTransform
	}
	return s.Transform().Invert()
}
