package drawkit

import "fmt"

// Shape is a caller-owned handle to a persistent drawing node.
//
// Only the vector backend produces shapes: each draw call inserts one node
// and returns its handle, which the caller may restyle or remove later.
// The raster backend paints fire-and-forget pixels and returns a nil Shape.
type Shape interface {
	// Restyle replaces the node's style attributes. Geometry is untouched.
	Restyle(style Style) error

	// Remove detaches the node from its surface. Removing an already
	// detached node is a no-op.
	Remove()
}

// Surface is the uniform drawing contract shared by both backends.
//
// Coordinates have their origin at the surface's top-left corner with y
// increasing downward. Draw calls execute synchronously on the caller's
// goroutine and paint in call order: on the vector backend later nodes sit
// above earlier ones in document order, on the raster backend later paints
// overwrite earlier pixels.
//
// Geometry is not validated beyond explicit preconditions: a zero-radius
// circle renders degenerately rather than failing. Coordinate lists must
// have even length and line widths must be finite and non-negative;
// violations fail with ErrInvalidArgument before anything is painted.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Circle draws a circle with center (cx, cy) and radius r.
	Circle(cx, cy, r float64, style Style) (Shape, error)

	// Ellipse draws an ellipse with center (cx, cy) and radii rx, ry.
	Ellipse(cx, cy, rx, ry float64, style Style) (Shape, error)

	// Rect draws a rectangle with top-left corner (x, y).
	Rect(x, y, w, h float64, style Style) (Shape, error)

	// Line draws a line between two endpoints.
	Line(x1, y1, x2, y2 float64, style Style) (Shape, error)

	// Polyline draws an open polyline through interleaved (x, y) pairs.
	// An empty list draws nothing.
	Polyline(coords []float64, style Style) (Shape, error)

	// Polygon draws a closed polygon through interleaved (x, y) pairs.
	// An empty list draws nothing.
	Polygon(coords []float64, style Style) (Shape, error)

	// Clear makes the surface visually empty without destroying it:
	// the vector backend removes every child node, the raster backend
	// erases the full backing rectangle.
	Clear() error

	// Close releases the surface. After Close the surface must not be
	// used. Close is idempotent.
	Close() error
}

// ValidateCoords checks the even-length invariant of a coordinate list.
// It runs before any path construction so a bad list never paints
// partially.
func ValidateCoords(coords []float64) error {
	if len(coords)%2 != 0 {
		return fmt.Errorf("%w: coordinate list has odd length %d", ErrInvalidArgument, len(coords))
	}
	return nil
}
