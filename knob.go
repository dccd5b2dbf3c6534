package shape

import (
	"math"
)

// KnobPosition returns the current drawing-space position of a knob: the
// transformed canonical corner or edge midpoint for sizing knobs, the
// transformed rotation reference point for the rotation knob, and the
// transformed stage corner for distortion knobs.
func (s *Shape) KnobPosition(pc PartCode) Point {
	if pc == OriginTarget {
		return s.location
	}
	rp, ok := pc.canonicalPosition()
	if !ok {
		return s.location
	}
	return s.ConvertPointFromRelativeLocation(rp)
}

// RotationKnobPoint returns the position of the rotation knob. Factored
// separately to allow override for special uses.
func (s *Shape) RotationKnobPoint() Point {
	return s.ConvertPointFromRelativeLocation(rotationKnobOffset)
}

// SetDragAnchorToPart prepares the interactive dragging of a knob: it saves
// the current offset and scale and moves the logical offset to the canonical
// position of the given handle, preserving the shape's appearance. The
// handle passed is the anchor — the one that stays fixed, typically the
// [PartCode.Opposite] of the knob being dragged. Subsequent [Shape.MoveKnob]
// calls are performed relative to it. [Shape.FinishDrag] restores the saved
// offset.
func (s *Shape) SetDragAnchorToPart(pc PartCode) {
	s.savedOffset = s.offset
	s.dragScale = s.scale
	s.dragging = true
	if rp, ok := pc.canonicalPosition(); ok {
		s.SetOffsetPreservingAppearance(Sz(rp.X, rp.Y))
	}
}

// FinishDrag ends a drag sequence started by [Shape.SetDragAnchorToPart],
// restoring the saved logical offset without changing the shape's
// appearance. A drag abandoned without calling FinishDrag leaves the shape
// consistent; only the offset remains at the anchor.
func (s *Shape) FinishDrag() {
	if !s.dragging {
		return
	}
	s.SetOffsetPreservingAppearance(s.savedOffset)
	s.dragging = false
}

// MoveKnob interactively changes the shape's parameters by moving the given
// knob to the point p.
//
// If the knob is the rotation knob — or any sizing knob while allowRotate is
// set — the rotation angle is recomputed from the angle between the location
// and p; constrain then rounds it to a multiple of the configured angular
// constraint. A sizing knob recomputes the scale relative to the drag
// anchor, flipping sign when dragged past it; constrain preserves the aspect
// ratio captured at the start of the drag. In a distortion operation mode,
// distortion knobs update the corresponding stage corner and leave the
// parameters untouched. Moves of knobs excluded by the configured knob mask
// are ignored.
//
// Every call fully recomputes its result from the anchor and p, so a call is
// idempotent and replaying a drag sequence is deterministic.
func (s *Shape) MoveKnob(pc PartCode, p Point, allowRotate, constrain bool) {
	if s.cfg.KnobMask&pc == 0 {
		return
	}
	switch {
	case pc == RotationHandle || (allowRotate && pc.IsSizingKnob()):
		s.rotateByKnob(pc, p, constrain)
	case s.mode != ModeStandard && pc.IsDistortKnob():
		s.moveDistortionKnob(pc, p)
	case pc.IsSizingKnob():
		s.resizeByKnob(pc, p, constrain)
	case pc == ObjectCenter:
		delta := p.Sub(s.KnobPosition(ObjectCenter))
		s.SetLocation(s.location.Translate(delta))
	case pc == OriginTarget:
		inv, err := s.InverseTransform()
		if err != nil {
			return
		}
		c := p.Transform(inv)
		s.SetOffsetPreservingAppearance(Sz(c.X, c.Y))
	}
}

// RotateToPoint interactively rotates the shape based on dragging a point.
// The angle is computed from the line between p and the shape's location,
// allowing for the position of the rotation knob, so that dragging the knob
// to p makes the shape's "up" direction point at p. p is typically the mouse
// position while dragging the rotation knob.
func (s *Shape) RotateToPoint(p Point, constrain bool) {
	s.rotateByKnob(RotationHandle, p, constrain)
}

func (s *Shape) rotateByKnob(pc PartCode, p Point, constrain bool) {
	rp, ok := pc.canonicalPosition()
	if !ok {
		rp = rotationKnobOffset
	}
	// The knob's own angular offset from the 0° reference, at the current
	// scale and before rotation.
	ref := Vec(
		(rp.X-s.offset.Width)*s.scale.Width,
		(rp.Y-s.offset.Height)*s.scale.Height,
	)
	th := p.Sub(s.location).Angle() - ref.Angle()
	if constrain && s.cfg.AngularConstraint != 0 {
		th = math.Round(th/s.cfg.AngularConstraint) * s.cfg.AngularConstraint
	}
	s.angle = normalizeAngle(th)
	s.bounds.clear()
}

func (s *Shape) resizeByKnob(pc PartCode, p Point, constrain bool) {
	rp, ok := pc.canonicalPosition()
	if !ok {
		return
	}
	// p relative to the anchor, in the unrotated, unscaled frame.
	d := p.Sub(s.location).Rotate(-s.angle)
	newScale := s.scale
	left, top, right, bottom := pc.Edges()
	if left || right {
		if den := rp.X - s.offset.Width; den != 0 {
			newScale.Width = d.X / den
		}
	}
	if top || bottom {
		if den := rp.Y - s.offset.Height; den != 0 {
			newScale.Height = d.Y / den
		}
	}
	if constrain {
		ref := s.dragScale
		if !s.dragging {
			ref = s.scale
		}
		var f float64
		switch {
		case (left || right) && ref.Width != 0:
			f = newScale.Width / ref.Width
		case (top || bottom) && ref.Height != 0:
			f = newScale.Height / ref.Height
		default:
			f = 1
		}
		newScale = Sz(ref.Width*f, ref.Height*f)
	}
	s.scale = newScale
	s.bounds.clear()
}

// verticalPartner returns the distortion corner sharing pc's vertical edge.
func verticalPartner(pc PartCode) PartCode {
	switch pc {
	case TopLeftDistort:
		return BottomLeftDistort
	case BottomLeftDistort:
		return TopLeftDistort
	case TopRightDistort:
		return BottomRightDistort
	case BottomRightDistort:
		return TopRightDistort
	default:
		return NoPart
	}
}

func (s *Shape) moveDistortionKnob(pc PartCode, p Point) {
	d, ok := s.distortion.get()
	if !ok {
		d = NewDistortionFromRect(UnitRect())
	}
	inv, err := s.InverseTransform()
	if err != nil {
		return
	}
	c := p.Transform(inv)
	cur, ok := d.Corner(pc)
	if !ok {
		return
	}
	delta := c.Sub(cur)

	switch s.mode {
	case ModeHorizontalShear:
		// move the dragged corner's row horizontally
		if pc == TopLeftDistort || pc == TopRightDistort {
			d.TopLeft.X += delta.X
			d.TopRight.X += delta.X
		} else {
			d.BottomLeft.X += delta.X
			d.BottomRight.X += delta.X
		}
	case ModeVerticalShear:
		// move the dragged corner's column vertically
		if pc == TopLeftDistort || pc == BottomLeftDistort {
			d.TopLeft.Y += delta.Y
			d.BottomLeft.Y += delta.Y
		} else {
			d.TopRight.Y += delta.Y
			d.BottomRight.Y += delta.Y
		}
	case ModePerspective:
		d = d.WithCorner(pc, c)
		partner := verticalPartner(pc)
		if pcur, ok := d.Corner(partner); ok {
			d = d.WithCorner(partner, Pt(pcur.X+delta.X, pcur.Y-delta.Y))
		}
	default:
		d = d.WithCorner(pc, c)
	}

	s.distortion.set(d)
	s.bounds.clear()
}

// UndoActionName returns the name of the user action that manipulating the
// given knob causes, for use by the undo manager and the knob-drawing
// collaborator.
func (s *Shape) UndoActionName(pc PartCode) string {
	switch {
	case pc == RotationHandle:
		return "Rotate"
	case pc == ObjectCenter || pc == OriginTarget:
		return "Move"
	case pc.IsDistortKnob():
		switch s.mode {
		case ModeHorizontalShear, ModeVerticalShear:
			return "Shear Shape"
		case ModePerspective:
			return "Change Perspective"
		default:
			return "Distort Shape"
		}
	case pc.IsSizingKnob():
		return "Change Size"
	default:
		return "Move"
	}
}

// normalizeAngle wraps an angle to [−π, π).
func normalizeAngle(th float64) float64 {
	th = math.Mod(th+math.Pi, 2*math.Pi)
	if th < 0 {
		th += 2 * math.Pi
	}
	return th - math.Pi
}
