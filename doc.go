// Package shape models an editable, transformable vector shape as used by a
// vector-drawing editor: a path-based object that can be moved, resized,
// rotated and distorted interactively while keeping a stable, reusable
// definition of its geometry.
//
// # Canonical paths
//
// A shape stores its path in canonical form: the path's bounding box is the
// unit square centered at the origin ([UnitRect]). The path is never mutated
// once adopted; the shape's location, scale, rotation angle and offset are
// factored into an affine transform ([Shape.Transform]) that places the
// canonical path in drawing space. This allows basic path definitions to be
// shared between shapes.
//
// # Coordinate conventions
//
// Coordinates are y-down, as is common for graphics. "Top" refers to the
// minimum y edge. Angles are in radians; a positive angle rotates the
// positive x direction into positive y, which in a y-down space is a
// clockwise rotation. Affine transforms are the standard 2D 6-tuple
// (a, b, c, d, tx, ty).
//
// # Knobs
//
// Interactive manipulation happens through knobs, identified by [PartCode]
// bit flags. A drag is a strict begin/update/end protocol:
// [Shape.SetDragAnchorToPart] fixes the handle opposite the dragged knob,
// repeated [Shape.MoveKnob] calls recompute the parameters from the anchor
// and the current pointer position, and [Shape.FinishDrag] restores the
// logical offset. Every update is a full recomputation, so replaying a drag
// sequence is deterministic and abandoning one leaves the shape consistent.
//
// # Distortion
//
// In addition to the affine transform, a shape may carry a [Distortion]: a
// quadrilateral warp mapping the canonical unit square's corners to arbitrary
// points, applied to the canonical path before the affine transform. The
// distortion is manipulated through the distortion part codes while the shape
// is in one of the non-standard operation modes.
//
// # Concurrency
//
// A [Shape] is not safe for concurrent use; all operations are expected to
// run on a single interaction thread. The transform queries are pure and may
// be called concurrently by multiple readers as long as no writer is active.
package shape
