// Package drawkit provides the drawing layer for a small charting toolkit.
//
// # Overview
//
// drawkit renders chart primitives (circle, ellipse, rect, line, polyline,
// polygon) through a single shape-drawing contract with two interchangeable
// backends:
//
//   - vector: a retained-mode tree of markup nodes, serialized as SVG.
//     Every draw call returns a persistent Shape handle that can later be
//     restyled or removed.
//   - raster: an immediate-mode pixel buffer. Draw calls paint directly into
//     an *image.RGBA and return no handle; redrawing a scene means replaying
//     the draw calls in order.
//
// Chart code never branches on backend identity. It asks the backend package
// for a surface and issues draw calls through the Surface interface:
//
//	import (
//	    "github.com/drawkit/drawkit"
//	    "github.com/drawkit/drawkit/backend"
//	    _ "github.com/drawkit/drawkit/raster"
//	    _ "github.com/drawkit/drawkit/vector"
//	)
//
//	s, err := backend.New(400, 300)
//	if err != nil {
//	    // no supported rendering backend
//	}
//	style := drawkit.Style{}.WithFill("#ff0000").WithStroke("#000000", 2)
//	s.Circle(50, 50, 10, style)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Styles
//
// Style is an immutable value object built with With* methods. A missing
// fill or stroke color means "no paint of that kind", not a default color.
// An explicit opacity always overrides any alpha embedded in the color
// string; both backends share one resolution path (Style.Resolve) so their
// output cannot diverge.
package drawkit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
