package shape

import "errors"

var (
	// ErrInvalidCanonicalPath is returned when a path offered as a canonical
	// path does not have the unit rect as its bounding box.
	ErrInvalidCanonicalPath = errors.New("path is not canonical (bounds must be the unit rect centered at the origin)")

	// ErrZeroSizeShape is returned when a path with zero width or height is
	// adopted, or when an operation requires a non-degenerate shape.
	ErrZeroSizeShape = errors.New("shape has zero width or height")

	// ErrDegenerateTransform is returned when the inverse transform is
	// requested while either scale component is zero.
	ErrDegenerateTransform = errors.New("transform is degenerate and has no inverse")
)
