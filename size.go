package shape

import (
	"fmt"
	"math"
)

// Size is a pair of horizontal and vertical extents. Both components may be
// negative; shapes use negative scale components to encode horizontal and
// vertical flips.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) AsVec2() Vec2 {
	return Vec2{
		X: sz.Width,
		Y: sz.Height,
	}
}

func (sz Size) Splat() (w float64, h float64) {
	return sz.Width, sz.Height
}

// Abs returns the size with both components made non-negative.
func (sz Size) Abs() Size {
	return Size{
		Width:  math.Abs(sz.Width),
		Height: math.Abs(sz.Height),
	}
}

// Scale multiplies sz by f.
func (sz Size) Scale(f float64) Size {
	return Size{
		Width:  sz.Width * f,
		Height: sz.Height * f,
	}
}

// IsDegenerate reports whether either component is zero. A degenerate size is
// a valid transient state for a shape, but forbids deriving transforms.
func (sz Size) IsDegenerate() bool {
	return sz.Width == 0 || sz.Height == 0
}

// IsNaN reports whether at least one of width and height is NaN.
func (sz Size) IsNaN() bool {
	return math.IsNaN(sz.Width) || math.IsNaN(sz.Height)
}
