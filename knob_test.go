package shape

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnobPositions(t *testing.T) {
	s := NewRectShape(NewRect(10, 10, 100, 50))

	assertNear(t, s.KnobPosition(TopLeftHandle), Pt(10, 10), 1e-9)
	assertNear(t, s.KnobPosition(TopRightHandle), Pt(110, 10), 1e-9)
	assertNear(t, s.KnobPosition(BottomLeftHandle), Pt(10, 60), 1e-9)
	assertNear(t, s.KnobPosition(BottomRightHandle), Pt(110, 60), 1e-9)
	assertNear(t, s.KnobPosition(LeftHandle), Pt(10, 35), 1e-9)
	assertNear(t, s.KnobPosition(RightHandle), Pt(110, 35), 1e-9)
	assertNear(t, s.KnobPosition(TopHandle), Pt(60, 10), 1e-9)
	assertNear(t, s.KnobPosition(BottomHandle), Pt(60, 60), 1e-9)
	assertNear(t, s.KnobPosition(ObjectCenter), Pt(60, 35), 1e-9)
	assertNear(t, s.KnobPosition(OriginTarget), Pt(60, 35), 1e-9)
	assertNear(t, s.KnobPosition(RotationHandle), Pt(60, -2.5), 1e-9)
	assertNear(t, s.RotationKnobPoint(), Pt(60, -2.5), 1e-9)
}

func TestDragResizeWithAnchor(t *testing.T) {
	s := NewRectShape(NewRect(0, 0, 100, 50))

	// drag the top right handle; the bottom left corner is the anchor
	s.SetDragAnchorToPart(BottomLeftHandle)
	assertNear(t, s.Location(), Pt(0, 50), 1e-9)

	s.MoveKnob(TopRightHandle, Pt(80, -10), false, false)
	assert.InDelta(t, 80, s.Scale().Width, 1e-9)
	assert.InDelta(t, 60, s.Scale().Height, 1e-9)
	// the anchor corner has not moved
	assertNear(t, s.KnobPosition(BottomLeftHandle), Pt(0, 50), 1e-9)
	assertNear(t, s.KnobPosition(TopRightHandle), Pt(80, -10), 1e-9)

	s.FinishDrag()
	assert.Equal(t, Size{}, s.Offset())
	assertNear(t, s.Location(), Pt(40, 20), 1e-9)
	assertRectNear(t, NewRect(0, -10, 80, 60), s.Bounds(), 1e-9)
}

func TestDragResizeConstrained(t *testing.T) {
	s := NewRectShape(NewRect(0, 0, 100, 50))

	s.SetDragAnchorToPart(BottomLeftHandle)
	s.MoveKnob(TopRightHandle, Pt(80, -10), false, true)
	s.FinishDrag()

	// the aspect ratio captured at drag start wins; the factor comes from the
	// horizontal axis of a corner drag
	assert.InDelta(t, 80, s.Scale().Width, 1e-9)
	assert.InDelta(t, 40, s.Scale().Height, 1e-9)
	assertNear(t, s.KnobPosition(BottomLeftHandle), Pt(0, 50), 1e-9)
	assertRectNear(t, NewRect(0, 10, 80, 40), s.Bounds(), 1e-9)
}

func TestDragPastAnchorFlips(t *testing.T) {
	s := NewRectShape(NewRect(0, 0, 100, 50))

	s.SetDragAnchorToPart(LeftHandle)
	s.MoveKnob(RightHandle, Pt(-40, 25), false, false)
	assert.InDelta(t, -40, s.Scale().Width, 1e-9)
	assert.InDelta(t, 50, s.Scale().Height, 1e-9)

	s.FinishDrag()
	assertNear(t, s.Location(), Pt(-20, 25), 1e-9)
	assertRectNear(t, NewRect(-40, 0, 40, 50), s.Bounds(), 1e-9)
}

func TestDragIsIdempotent(t *testing.T) {
	s := NewRectShape(NewRect(0, 0, 100, 50))

	s.SetDragAnchorToPart(TopLeftHandle)
	s.MoveKnob(BottomRightHandle, Pt(60, 80), false, false)
	first := s.Scale()
	s.MoveKnob(BottomRightHandle, Pt(120, 40), false, false)
	s.MoveKnob(BottomRightHandle, Pt(60, 80), false, false)
	assert.Equal(t, first, s.Scale())
	s.FinishDrag()
}

func TestResizeRotatedShape(t *testing.T) {
	s := NewRectShape(NewRect(0, 0, 100, 50))
	s.SetAngle(math.Pi / 2)

	// at 90° the right handle points down in drawing space
	assertNear(t, s.KnobPosition(RightHandle), Pt(50, 75), 1e-9)

	// an unanchored drag resizes about the centre
	s.MoveKnob(RightHandle, Pt(50, 95), false, false)
	assert.InDelta(t, 140, s.Scale().Width, 1e-9)
	assert.InDelta(t, 50, s.Scale().Height, 1e-9)
}

func TestRotateToPoint(t *testing.T) {
	s := NewRectShape(NewRect(10, 10, 100, 50))

	// dragging the rotation knob due left of the location turns the shape's
	// "up" direction to the left
	s.RotateToPoint(Pt(0, 35), false)
	assert.InDelta(t, -math.Pi/2, s.Angle(), 1e-9)

	// straight up is angle zero
	s.RotateToPoint(Pt(60, -100), false)
	assert.InDelta(t, 0, s.Angle(), 1e-9)
}

func TestRotateConstrained(t *testing.T) {
	s := NewRectShape(NewRect(10, 10, 100, 50))
	// raw angle ≈ 84.3°, rounds to 90° with the default 15° step
	s.RotateToPoint(Pt(160, 25), true)
	assert.InDelta(t, math.Pi/2, s.Angle(), 1e-9)
}

func TestRotateViaSizingKnob(t *testing.T) {
	s := NewRectShape(NewRect(0, 0, 100, 100))
	// with allowRotate set a corner handle rotates instead of resizing
	before := s.Scale()
	s.MoveKnob(BottomRightHandle, Pt(50, 150), true, false)
	assert.Equal(t, before, s.Scale())
	// the corner's reference direction (45° down-right) now points straight
	// down
	assert.InDelta(t, math.Pi/4, s.Angle(), 1e-9)
}

func TestMoveByCenterKnob(t *testing.T) {
	s := NewRectShape(NewRect(10, 10, 100, 50))
	s.MoveKnob(ObjectCenter, Pt(100, 100), false, false)
	assertNear(t, s.Location(), Pt(100, 100), 1e-9)
	assertRectNear(t, NewRect(50, 75, 100, 50), s.Bounds(), 1e-9)
}

func TestMoveOriginTarget(t *testing.T) {
	s := NewRectShape(NewRect(10, 10, 100, 50))
	s.MoveKnob(OriginTarget, Pt(10, 10), false, false)

	assert.InDelta(t, -0.5, s.Offset().Width, 1e-9)
	assert.InDelta(t, -0.5, s.Offset().Height, 1e-9)
	assertNear(t, s.KnobPosition(OriginTarget), Pt(10, 10), 1e-9)
	// moving the origin target never moves the shape
	assertRectNear(t, NewRect(10, 10, 100, 50), s.Bounds(), 1e-9)

	// rotation now happens about the top left corner
	s.RotateToPoint(Pt(-100, 10), false)
	assertNear(t, s.KnobPosition(TopLeftHandle), Pt(10, 10), 1e-9)
}

func TestMaskedKnobIgnored(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KnobMask = AllKnobs &^ RotationHandle
	s := NewShape(cfg)
	s.SetLocation(Pt(50, 50))
	s.SetSize(Sz(100, 50))

	s.MoveKnob(RotationHandle, Pt(0, 50), false, false)
	assert.Equal(t, 0.0, s.Angle())

	cfg.KnobMask = AllKnobs &^ AllSizeKnobs
	s.SetConfig(cfg)
	s.MoveKnob(RightHandle, Pt(200, 50), false, false)
	assert.Equal(t, Sz(100, 50), s.Scale())
}

func TestFreeDistortKnob(t *testing.T) {
	s := NewRectShape(NewRect(0, 0, 100, 100))
	s.SetOperationMode(ModeFreeDistort)

	s.MoveKnob(TopLeftDistort, Pt(-10, -10), false, false)
	d, ok := s.Distortion()
	require.True(t, ok)
	assertNear(t, d.TopLeft, Pt(-0.6, -0.6), 1e-9)

	// the knob now sits where it was dragged to, and the parameters are
	// untouched
	assertNear(t, s.KnobPosition(TopLeftDistort), Pt(-10, -10), 1e-9)
	assert.Equal(t, Sz(100, 100), s.Scale())
	assert.Equal(t, Pt(50, 50), s.Location())
	assertRectNear(t, NewRect(-10, -10, 110, 110), s.Bounds(), 1e-9)
}

func TestHorizontalShearKnob(t *testing.T) {
	s := NewRectShape(NewRect(0, 0, 100, 100))
	s.SetOperationMode(ModeHorizontalShear)

	s.MoveKnob(TopRightDistort, Pt(110, 0), false, false)
	d, ok := s.Distortion()
	require.True(t, ok)
	// the whole top row moved right by the same amount
	assertNear(t, d.TopRight, Pt(0.6, -0.5), 1e-9)
	assertNear(t, d.TopLeft, Pt(-0.4, -0.5), 1e-9)
	assertNear(t, d.BottomLeft, Pt(-0.5, 0.5), 1e-9)
	assertNear(t, s.KnobPosition(TopLeftDistort), Pt(10, 0), 1e-9)
}

func TestVerticalShearKnob(t *testing.T) {
	s := NewRectShape(NewRect(0, 0, 100, 100))
	s.SetOperationMode(ModeVerticalShear)

	s.MoveKnob(BottomRightDistort, Pt(100, 120), false, false)
	d, ok := s.Distortion()
	require.True(t, ok)
	// the whole right column moved down by the same amount
	assertNear(t, d.BottomRight, Pt(0.5, 0.7), 1e-9)
	assertNear(t, d.TopRight, Pt(0.5, -0.3), 1e-9)
	assertNear(t, d.TopLeft, Pt(-0.5, -0.5), 1e-9)
}

func TestPerspectiveKnob(t *testing.T) {
	s := NewRectShape(NewRect(0, 0, 100, 100))
	s.SetOperationMode(ModePerspective)

	s.MoveKnob(TopRightDistort, Pt(110, -10), false, false)
	d, ok := s.Distortion()
	require.True(t, ok)
	// the corner below mirrors the move, splaying the right edge outward
	assertNear(t, d.TopRight, Pt(0.6, -0.6), 1e-9)
	assertNear(t, d.BottomRight, Pt(0.6, 0.6), 1e-9)
	assertNear(t, d.TopLeft, Pt(-0.5, -0.5), 1e-9)
	assertNear(t, d.BottomLeft, Pt(-0.5, 0.5), 1e-9)
}

func TestDistortKnobInertInStandardMode(t *testing.T) {
	s := NewRectShape(NewRect(0, 0, 100, 100))
	s.SetOperationMode(ModeFreeDistort)
	s.SetOperationMode(ModeStandard)

	// distortion knobs only act in a distortion mode
	s.MoveKnob(TopLeftDistort, Pt(-50, -50), false, false)
	assert.Equal(t, Sz(100, 100), s.Scale())
	d, ok := s.Distortion()
	require.True(t, ok)
	assert.True(t, d.IsIdentity())
}

func TestUndoActionName(t *testing.T) {
	s := NewRectShape(NewRect(0, 0, 100, 100))
	assert.Equal(t, "Rotate", s.UndoActionName(RotationHandle))
	assert.Equal(t, "Move", s.UndoActionName(ObjectCenter))
	assert.Equal(t, "Move", s.UndoActionName(OriginTarget))
	assert.Equal(t, "Change Size", s.UndoActionName(RightHandle))
	assert.Equal(t, "Distort Shape", s.UndoActionName(TopLeftDistort))
	s.SetOperationMode(ModeHorizontalShear)
	assert.Equal(t, "Shear Shape", s.UndoActionName(TopLeftDistort))
	s.SetOperationMode(ModePerspective)
	assert.Equal(t, "Change Perspective", s.UndoActionName(TopLeftDistort))
}

func TestPartCodeOpposite(t *testing.T) {
	assert.Equal(t, RightHandle, LeftHandle.Opposite())
	assert.Equal(t, TopLeftHandle, BottomRightHandle.Opposite())
	assert.Equal(t, BottomLeftDistort, TopRightDistort.Opposite())
	assert.Equal(t, NoPart, ObjectCenter.Opposite())
}

func TestPartCodeEdges(t *testing.T) {
	l, tp, r, b := TopLeftHandle.Edges()
	assert.True(t, l)
	assert.True(t, tp)
	assert.False(t, r)
	assert.False(t, b)

	l, tp, r, b = RightHandle.Edges()
	assert.False(t, l)
	assert.False(t, tp)
	assert.True(t, r)
	assert.False(t, b)
}
