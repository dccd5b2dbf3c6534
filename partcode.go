package shape

import "fmt"

// PartCode identifies a control point (knob) on a shape. Part codes are bit
// flags, so composite masks such as [AllCornerHandles] can be expressed as
// the bitwise OR of individual codes, and a corner handle carries the flags
// of both edges it touches in its decomposed form (see [PartCode.Edges]).
type PartCode uint32

const (
	// NoPart denotes the absence of a knob.
	NoPart PartCode = 0

	LeftHandle         PartCode = 1 << 0
	TopHandle          PartCode = 1 << 1
	RightHandle        PartCode = 1 << 2
	BottomHandle       PartCode = 1 << 3
	TopLeftHandle      PartCode = 1 << 4
	TopRightHandle     PartCode = 1 << 5
	BottomLeftHandle   PartCode = 1 << 6
	BottomRightHandle  PartCode = 1 << 7
	ObjectCenter       PartCode = 1 << 8
	OriginTarget       PartCode = 1 << 9
	RotationHandle     PartCode = 1 << 10
	TopLeftDistort     PartCode = 1 << 11
	TopRightDistort    PartCode = 1 << 12
	BottomRightDistort PartCode = 1 << 13
	BottomLeftDistort  PartCode = 1 << 14
)

// Knob masks.
const (
	AllKnobs               PartCode = 0xFFFFFFFF
	AllSizeKnobs                    = AllKnobs &^ (RotationHandle | OriginTarget | ObjectCenter | AllDistortHandles)
	HorizontalSizingKnobs           = LeftHandle | RightHandle | AllCornerHandles
	VerticalSizingKnobs             = TopHandle | BottomHandle | AllCornerHandles
	AllLeftHandles                  = LeftHandle | TopLeftHandle | BottomLeftHandle
	AllRightHandles                 = RightHandle | TopRightHandle | BottomRightHandle
	AllTopHandles                   = TopHandle | TopLeftHandle | TopRightHandle
	AllBottomHandles                = BottomHandle | BottomLeftHandle | BottomRightHandle
	AllCornerHandles                = TopLeftHandle | TopRightHandle | BottomLeftHandle | BottomRightHandle
	AllDistortHandles               = TopLeftDistort | TopRightDistort | BottomRightDistort | BottomLeftDistort
	EWHandles                       = LeftHandle | RightHandle
	NSHandles                       = TopHandle | BottomHandle
)

// Edges reports which rectangle edges the part code touches. A corner handle
// touches two edges; an edge handle touches one.
func (pc PartCode) Edges() (left, top, right, bottom bool) {
	left = pc&AllLeftHandles != 0
	top = pc&AllTopHandles != 0
	right = pc&AllRightHandles != 0
	bottom = pc&AllBottomHandles != 0
	return left, top, right, bottom
}

// IsSizingKnob reports whether the part code denotes a resize handle.
func (pc PartCode) IsSizingKnob() bool {
	return pc&AllSizeKnobs != 0
}

// IsDistortKnob reports whether the part code denotes a distortion corner.
func (pc PartCode) IsDistortKnob() bool {
	return pc&AllDistortHandles != 0
}

// Opposite returns the handle diagonally or directly opposite pc, which acts
// as the anchor during an interactive resize. Part codes without a natural
// opposite return [NoPart].
func (pc PartCode) Opposite() PartCode {
	switch pc {
	case LeftHandle:
		return RightHandle
	case RightHandle:
		return LeftHandle
	case TopHandle:
		return BottomHandle
	case BottomHandle:
		return TopHandle
	case TopLeftHandle:
		return BottomRightHandle
	case TopRightHandle:
		return BottomLeftHandle
	case BottomLeftHandle:
		return TopRightHandle
	case BottomRightHandle:
		return TopLeftHandle
	case TopLeftDistort:
		return BottomRightDistort
	case TopRightDistort:
		return BottomLeftDistort
	case BottomRightDistort:
		return TopLeftDistort
	case BottomLeftDistort:
		return TopRightDistort
	default:
		return NoPart
	}
}

// rotationKnobOffset is the canonical-space position of the rotation knob:
// above the top edge of the unit rect, so that at angle 0 the knob points
// "up" from the shape in a y-down space.
var rotationKnobOffset = Pt(0, -0.75)

// canonicalPosition returns the part code's position in canonical space, or
// false for codes that have no fixed canonical position ([OriginTarget],
// [NoPart], composite masks).
func (pc PartCode) canonicalPosition() (Point, bool) {
	switch pc {
	case LeftHandle:
		return Pt(-0.5, 0), true
	case TopHandle:
		return Pt(0, -0.5), true
	case RightHandle:
		return Pt(0.5, 0), true
	case BottomHandle:
		return Pt(0, 0.5), true
	case TopLeftHandle, TopLeftDistort:
		return Pt(-0.5, -0.5), true
	case TopRightHandle, TopRightDistort:
		return Pt(0.5, -0.5), true
	case BottomLeftHandle, BottomLeftDistort:
		return Pt(-0.5, 0.5), true
	case BottomRightHandle, BottomRightDistort:
		return Pt(0.5, 0.5), true
	case ObjectCenter:
		return Pt(0, 0), true
	case RotationHandle:
		return rotationKnobOffset, true
	default:
		return Point{}, false
	}
}

func (pc PartCode) String() string {
	switch pc {
	case NoPart:
		return "NoPart"
	case LeftHandle:
		return "LeftHandle"
	case TopHandle:
		return "TopHandle"
	case RightHandle:
		return "RightHandle"
	case BottomHandle:
		return "BottomHandle"
	case TopLeftHandle:
		return "TopLeftHandle"
	case TopRightHandle:
		return "TopRightHandle"
	case BottomLeftHandle:
		return "BottomLeftHandle"
	case BottomRightHandle:
		return "BottomRightHandle"
	case ObjectCenter:
		return "ObjectCenter"
	case OriginTarget:
		return "OriginTarget"
	case RotationHandle:
		return "RotationHandle"
	case TopLeftDistort:
		return "TopLeftDistort"
	case TopRightDistort:
		return "TopRightDistort"
	case BottomRightDistort:
		return "BottomRightDistort"
	case BottomLeftDistort:
		return "BottomLeftDistort"
	default:
		return fmt.Sprintf("PartCode(%#x)", uint32(pc))
	}
}
