package shape

import (
	"math"
)

// Style is an opaque reference to an external style object. The geometry
// core never inspects it; it is carried so that derived objects (see
// [Shape.MakePath] and [Shape.BreakApart]) can inherit it.
type Style any

// Grid is the collaborator consumed by [Shape.AdjustToFitGrid]. The exact
// snapping algorithm is the grid's responsibility.
type Grid interface {
	// NearestIntersection returns the grid intersection closest to pt.
	NearestIntersection(pt Point) Point
}

// Reshaper supplies a replacement canonical path after a size change. Some
// shapes need to be reshaped when their absolute size changes; an example
// would be a round-cornered rectangle whose corners are expected to remain
// at a fixed radius whatever the shape's overall size. The returned path
// must be canonical; a non-canonical result is discarded. Return false to
// keep the current path.
type Reshaper func(s *Shape) (Path, bool)

// PathObject is a plain path-plus-style pair, the result of converting a
// shape to an editable path.
type PathObject struct {
	Path  Path
	Style Style
}

// OperationMode selects how knob drags are interpreted.
type OperationMode int

const (
	// ModeStandard is the normal resize/rotate mode.
	ModeStandard OperationMode = iota
	// ModeFreeDistort moves distortion corners freely.
	ModeFreeDistort
	// ModeHorizontalShear moves a corner's row horizontally.
	ModeHorizontalShear
	// ModeVerticalShear moves a corner's column vertically.
	ModeVerticalShear
	// ModePerspective moves a corner and mirrors the vertical delta onto the
	// corner sharing its vertical edge.
	ModePerspective
)

func (m OperationMode) String() string {
	switch m {
	case ModeStandard:
		return "Standard"
	case ModeFreeDistort:
		return "FreeDistort"
	case ModeHorizontalShear:
		return "HorizontalShear"
	case ModeVerticalShear:
		return "VerticalShear"
	case ModePerspective:
		return "Perspective"
	default:
		return "OperationMode(?)"
	}
}

// Config carries per-shape interaction settings. It replaces what would
// otherwise be process-wide mutable state; defaults are documented on
// [DefaultConfig] and may be overridden per instance.
type Config struct {
	// KnobMask selects which knobs are active. Moves of masked-out knobs are
	// ignored.
	KnobMask PartCode
	// AngularConstraint is the angle step used for constrained rotation.
	AngularConstraint float64
}

// DefaultConfig returns the default interaction settings: all knobs enabled
// and an angular constraint of π/12 (15°).
func DefaultConfig() Config {
	return Config{
		KnobMask:          AllKnobs,
		AngularConstraint: math.Pi / 12,
	}
}

// Shape is an editable path-based shape. The path is stored in canonical
// form (bounding box equal to [UnitRect]) and is never mutated in place; the
// location, scale, rotation angle and offset parameters place it in drawing
// space via [Shape.Transform].
//
// A Shape must not be shared across goroutines without external
// synchronization.
type Shape struct {
	cfg      Config
	path     Path
	location Point
	scale    Size
	angle    float64
	// offset of the logical centre from the canonical centre, in canonical
	// units; the transform maps the offset point to the location
	offset     Size
	mode       OperationMode
	distortion option[Distortion]
	bounds     option[Rect]
	reshape    Reshaper
	style      Style

	// drag protocol state, see SetDragAnchorToPart
	dragging    bool
	savedOffset Size
	dragScale   Size
}

// NewShape returns a unit square shape at the origin with the given
// configuration. It is the base other constructors build on; the result must
// be moved, sized and rotated before use.
func NewShape(cfg Config) *Shape {
	return &Shape{
		cfg:   cfg,
		path:  RectPath(UnitRect()),
		scale: Sz(1, 1),
	}
}

// NewRectShape returns a rectangular shape whose location and size are set
// from r and whose angle is zero.
func NewRectShape(r Rect) *Shape {
	s := NewShape(DefaultConfig())
	s.location = r.Center()
	s.scale = r.Size()
	return s
}

// NewOvalShape returns a shape whose path is an oval inscribed within r.
func NewOvalShape(r Rect) *Shape {
	s := NewRectShape(r)
	s.path = OvalPath(UnitRect())
	return s
}

// NewShapeFromCanonicalPath returns a shape with the given canonical path,
// unit scale and zero angle, located at the origin. The resulting shape must
// be moved, sized and rotated as required before use. If the path is not
// canonical, ErrInvalidCanonicalPath is returned.
func NewShapeFromCanonicalPath(p Path) (*Shape, error) {
	s := NewShape(DefaultConfig())
	if err := s.SetPath(p); err != nil {
		return nil, err
	}
	return s, nil
}

// NewShapeFromPath returns a shape adopting the given drawing-space path:
// the shape is located at the centre of the path's bounds and its size is
// the size of those bounds. The angle is zero.
func NewShapeFromPath(p Path) (*Shape, error) {
	return NewShapeFromPathAtAngle(p, 0)
}

// NewShapeFromPathAtAngle is like [NewShapeFromPath] for a path that is
// already rotated by the given angle.
func NewShapeFromPathAtAngle(p Path, angle float64) (*Shape, error) {
	s := NewShape(DefaultConfig())
	s.angle = angle
	s.location = p.BoundingBox().Center()
	if err := s.AdoptPath(p); err != nil {
		return nil, err
	}
	return s, nil
}

// Config returns the shape's interaction settings.
func (s *Shape) Config() Config { return s.cfg }

// SetConfig replaces the shape's interaction settings.
func (s *Shape) SetConfig(cfg Config) { s.cfg = cfg }

// Style returns the shape's style reference.
func (s *Shape) Style() Style { return s.style }

// SetStyle sets the shape's style reference.
func (s *Shape) SetStyle(st Style) { s.style = st }

// SetReshaper installs the hook invoked by [Shape.SetSize]. A nil reshaper
// keeps the path unchanged across size changes.
func (s *Shape) SetReshaper(r Reshaper) { s.reshape = r }

// Location returns the shape's location: the drawing-space position of its
// logical centre (the offset point).
func (s *Shape) Location() Point { return s.location }

// SetLocation moves the shape so that its logical centre is at pt.
func (s *Shape) SetLocation(pt Point) {
	s.location = pt
	s.bounds.clear()
}

// LocationIgnoringOffset returns the drawing-space position of the canonical
// centre, regardless of the current offset.
func (s *Shape) LocationIgnoringOffset() Point {
	return Point{}.Transform(s.Transform())
}

// Scale returns the shape's scale. Negative components encode flips.
func (s *Shape) Scale() Size { return s.scale }

// SetSize sets the shape's scale and then gives the reshaper, if any, the
// opportunity to regenerate the canonical path for the new absolute size.
func (s *Shape) SetSize(sz Size) {
	s.scale = sz
	if s.reshape != nil {
		if p, ok := s.reshape(s); ok && isCanonical(p) {
			s.path = p.Clone()
		}
	}
	s.bounds.clear()
}

// Angle returns the shape's rotation angle in radians.
func (s *Shape) Angle() float64 { return s.angle }

// SetAngle sets the shape's rotation angle in radians.
func (s *Shape) SetAngle(th float64) {
	s.angle = th
	s.bounds.clear()
}

// Offset returns the offset of the logical centre from the canonical centre,
// in canonical units.
func (s *Shape) Offset() Size { return s.offset }

// SetOffset sets the offset. The location is left alone, so the shape's
// rendered position changes accordingly.
func (s *Shape) SetOffset(offset Size) {
	s.offset = offset
	s.bounds.clear()
}

// SetOffsetPreservingAppearance sets the offset and moves the location to
// the drawing-space image of the new offset point, leaving the rendered
// shape exactly where it was.
func (s *Shape) SetOffsetPreservingAppearance(offset Size) {
	pt := Pt(offset.Width, offset.Height).Transform(s.Transform())
	s.offset = offset
	s.location = pt
	s.bounds.clear()
}

// OperationMode returns the active interactive-manipulation mode.
func (s *Shape) OperationMode() OperationMode { return s.mode }

// SetOperationMode switches the interactive-manipulation mode. Entering a
// non-standard mode lazily creates an identity distortion stage; returning
// to [ModeStandard] keeps the stage (use [Shape.ResetBoundingBox] or
// [Shape.ClearDistortion] to discard it).
func (s *Shape) SetOperationMode(m OperationMode) {
	s.mode = m
	if m != ModeStandard {
		if _, ok := s.distortion.get(); !ok {
			s.distortion.set(NewDistortionFromRect(UnitRect()))
		}
	}
}

// Distortion returns the current distortion stage, if any.
func (s *Shape) Distortion() (Distortion, bool) {
	return s.distortion.get()
}

// SetDistortion installs a prepared distortion stage, which immediately has
// its effect on the shape.
func (s *Shape) SetDistortion(d Distortion) {
	s.distortion.set(d)
	s.bounds.clear()
}

// ClearDistortion removes the distortion stage.
func (s *Shape) ClearDistortion() {
	s.distortion.clear()
	s.bounds.clear()
}

// isCanonical reports whether the path's bounding box is the unit rect. The
// comparison is component-wise equality within a tolerance of 1e-9 — strict
// equality up to floating point noise, not containment.
func isCanonical(p Path) bool {
	if !p.HasSegments() {
		return false
	}
	const eps = 1e-9
	bb := p.BoundingBox()
	u := UnitRect()
	return math.Abs(bb.X-u.X) <= eps &&
		math.Abs(bb.Y-u.Y) <= eps &&
		math.Abs(bb.Width-u.Width) <= eps &&
		math.Abs(bb.Height-u.Height) <= eps
}

// SetPath sets the shape's canonical path. The path's bounding box must be
// the unit rect centered at the origin; ErrInvalidCanonicalPath is returned
// and the shape left unchanged otherwise. For an arbitrary drawing-space
// path, use [Shape.AdoptPath] instead.
func (s *Shape) SetPath(p Path) error {
	if !isCanonical(p) {
		return ErrInvalidCanonicalPath
	}
	s.path = p.Clone()
	s.bounds.clear()
	return nil
}

// Path returns the shape's stored path with only the distortion stage
// applied, but not the shape's overall scale, position or rotation. Without
// a distortion stage this is the canonical path itself.
func (s *Shape) Path() Path {
	if d, ok := s.distortion.get(); ok {
		return d.TransformPath(s.path)
	}
	return s.path.Clone()
}

// AdoptPath sets the shape's path given any drawing-space path. It computes
// the canonical path using the inverse of the shape's transform and solves
// for the scale and offset such that transforming the canonical path
// reproduces p at the current angle.
//
// Important: the shape's location should be set before calling this, as it
// has an impact on the accurate transformation of the path to the origin in
// the rotated case. Typically the location is the centre point of the path,
// but not in every case, text glyphs being a prime example.
//
// If the path's bounds have zero width or height, ErrZeroSizeShape is
// returned and the shape is left unchanged.
func (s *Shape) AdoptPath(p Path) error {
	if !p.HasSegments() {
		return ErrZeroSizeShape
	}
	unrotated := p.Transform(RotateAbout(-s.angle, s.location))
	bb := unrotated.BoundingBox()
	if bb.IsDegenerate() {
		return ErrZeroSizeShape
	}
	center := bb.Center()
	scale := bb.Size()
	offset := Sz(
		(s.location.X-center.X)/scale.Width,
		(s.location.Y-center.Y)/scale.Height,
	)
	canon := unrotated.Transform(
		Scale(1/scale.Width, 1/scale.Height).
			PreTranslate(Vec2(center).Negate()),
	)
	// Renormalize onto the unit rect to absorb the rounding the divisions
	// introduce, keeping the canonical invariant tight.
	cb := canon.BoundingBox()
	if !cb.IsDegenerate() {
		canon = canon.Transform(
			Scale(1/cb.Width, 1/cb.Height).
				PreTranslate(Vec2(cb.Center()).Negate()),
		)
	}

	s.scale = scale
	s.offset = offset
	s.path = canon
	s.bounds.clear()
	return nil
}

// TransformedPath returns the shape's path after applying the distortion
// stage, if any, and the shape's transform. This is the path a renderer
// draws.
func (s *Shape) TransformedPath() Path {
	return s.Path().Transform(s.Transform())
}

// Bounds returns the drawing-space bounding box of the transformed path. The
// value is cached and lazily recomputed after any mutating call.
func (s *Shape) Bounds() Rect {
	if b, ok := s.bounds.get(); ok {
		return b
	}
	b := s.TransformedPath().BoundingBox()
	s.bounds.set(b)
	return b
}

// ConvertPointFromRelativeLocation maps a point expressed in canonical
// coordinates to its real location in the drawing, applying the distortion
// stage, if any, and the shape's transform.
func (s *Shape) ConvertPointFromRelativeLocation(rloc Point) Point {
	if d, ok := s.distortion.get(); ok {
		rloc = d.Transform(rloc)
	}
	return rloc.Transform(s.Transform())
}

// ResetBoundingBox re-adopts the shape's own transformed path, so that the
// effects of any distortion are retained in the path geometry itself while
// the distortion stage is discarded. The rotation angle and the rendered
// appearance are unchanged. Calling it a second time is a no-op.
func (s *Shape) ResetBoundingBox() error {
	tp := s.TransformedPath()
	if err := s.AdoptPath(tp); err != nil {
		return err
	}
	s.distortion.clear()
	return nil
}

// ResetBoundingBoxAndRotation is [Shape.ResetBoundingBox] with the rotation
// angle additionally reset to zero. The appearance does not change. After a
// series of complex transformations this realigns the bounding box to
// something the user can deal with.
func (s *Shape) ResetBoundingBoxAndRotation() error {
	tp := s.TransformedPath()
	prevAngle := s.angle
	s.angle = 0
	if err := s.AdoptPath(tp); err != nil {
		s.angle = prevAngle
		return err
	}
	s.distortion.clear()
	s.bounds.clear()
	return nil
}

// FlipHorizontally flips the shape horizontally with respect to the
// orthogonal drawing coordinates, based on the current location. In fact the
// width and angle are simply negated to effect this; the path is untouched.
func (s *Shape) FlipHorizontally() {
	s.scale.Width = -s.scale.Width
	s.angle = -s.angle
	s.bounds.clear()
}

// FlipVertically flips the shape vertically with respect to the orthogonal
// drawing coordinates, based on the current location. In fact the height and
// angle are simply negated to effect this; the path is untouched.
func (s *Shape) FlipVertically() {
	s.scale.Height = -s.scale.Height
	s.angle = -s.angle
	s.bounds.clear()
}

// MakePath returns a path object having the same (transformed) path and
// style as the shape, as used when converting a shape to an editable path.
func (s *Shape) MakePath() PathObject {
	return PathObject{
		Path:  s.TransformedPath(),
		Style: s.style,
	}
}

// BreakApart converts each subpath of the shape to a separate shape with the
// same appearance, angle, configuration and style. If there is only one
// subpath (common) the result has a single entry. Degenerate subpaths with
// zero-size bounds (such as a single horizontal line) are skipped.
func (s *Shape) BreakApart() []*Shape {
	subs := s.TransformedPath().Subpaths()
	out := make([]*Shape, 0, len(subs))
	for _, sp := range subs {
		n, err := NewShapeFromPathAtAngle(sp, s.angle)
		if err != nil {
			continue
		}
		n.cfg = s.cfg
		n.style = s.style
		out = append(out, n)
	}
	return out
}

// AdjustToFitGrid moves and resizes the shape so that its corners lie on
// grid intersections. The angle is not changed. For an unrotated shape the
// top left and bottom right corners land exactly on intersections; for a
// rotated shape it is not possible to force the corners to specific points
// and maintain rectangular bounds, so the result is best-effort.
func (s *Shape) AdjustToFitGrid(grid Grid) {
	tl := grid.NearestIntersection(s.KnobPosition(TopLeftHandle))
	br := grid.NearestIntersection(s.KnobPosition(BottomRightHandle))

	s.SetDragAnchorToPart(TopLeftHandle)
	s.MoveKnob(BottomRightHandle, br, false, false)
	s.FinishDrag()

	s.SetDragAnchorToPart(BottomRightHandle)
	s.MoveKnob(TopLeftHandle, tl, false, false)
	s.FinishDrag()
}
