// Copyright 2026 The drawkit Authors
// SPDX-License-Identifier: BSD-3-Clause

package vector

import (
	"fmt"
	"io"
	"strings"

	"github.com/drawkit/drawkit"
)

// Surface is a retained-mode drawing surface: an ordered tree of shape
// nodes with the surface as root. Child order is z-order.
//
// Surfaces are not safe for concurrent use; all drawing belongs to a
// single goroutine.
type Surface struct {
	width    int
	height   int
	children []*Node
	closed   bool
}

var _ drawkit.Surface = (*Surface)(nil)

// NewSurface creates an empty surface with the given size.
func NewSurface(width, height int) *Surface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &Surface{width: width, height: height}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Circle draws a circle with center (cx, cy) and radius r.
func (s *Surface) Circle(cx, cy, r float64, style drawkit.Style) (drawkit.Shape, error) {
	return s.appendShape("circle", style, [][2]string{
		{"cx", formatNum(cx)},
		{"cy", formatNum(cy)},
		{"r", formatNum(r)},
	})
}

// Ellipse draws an ellipse with center (cx, cy) and radii rx, ry.
func (s *Surface) Ellipse(cx, cy, rx, ry float64, style drawkit.Style) (drawkit.Shape, error) {
	return s.appendShape("ellipse", style, [][2]string{
		{"cx", formatNum(cx)},
		{"cy", formatNum(cy)},
		{"rx", formatNum(rx)},
		{"ry", formatNum(ry)},
	})
}

// Rect draws a rectangle with top-left corner (x, y).
func (s *Surface) Rect(x, y, w, h float64, style drawkit.Style) (drawkit.Shape, error) {
	return s.appendShape("rect", style, [][2]string{
		{"x", formatNum(x)},
		{"y", formatNum(y)},
		{"width", formatNum(w)},
		{"height", formatNum(h)},
	})
}

// Line draws a line between two endpoints.
func (s *Surface) Line(x1, y1, x2, y2 float64, style drawkit.Style) (drawkit.Shape, error) {
	return s.appendShape("line", style, [][2]string{
		{"x1", formatNum(x1)},
		{"y1", formatNum(y1)},
		{"x2", formatNum(x2)},
		{"y2", formatNum(y2)},
	})
}

// Polyline draws an open polyline through interleaved (x, y) pairs.
func (s *Surface) Polyline(coords []float64, style drawkit.Style) (drawkit.Shape, error) {
	if err := drawkit.ValidateCoords(coords); err != nil {
		return nil, err
	}
	return s.appendShape("polyline", style, [][2]string{
		{"points", pointString(coords)},
	})
}

// Polygon draws a closed polygon through interleaved (x, y) pairs.
func (s *Surface) Polygon(coords []float64, style drawkit.Style) (drawkit.Shape, error) {
	if err := drawkit.ValidateCoords(coords); err != nil {
		return nil, err
	}
	return s.appendShape("polygon", style, [][2]string{
		{"points", pointString(coords)},
	})
}

// Clear removes every child node. The surface itself stays usable; this
// is deliberately the same operation as Empty so that a cleared surface
// is visually empty on both backends.
func (s *Surface) Clear() error {
	return s.Empty()
}

// Empty removes every child node without destroying the surface.
func (s *Surface) Empty() error {
	if s.closed {
		return errDrawClosed()
	}
	for _, c := range s.children {
		c.surf = nil
	}
	s.children = s.children[:0]
	return nil
}

// Children returns the shape nodes in z-order, bottom first.
// The returned slice is a copy.
func (s *Surface) Children() []*Node {
	out := make([]*Node, len(s.children))
	copy(out, s.children)
	return out
}

// Close detaches all nodes and marks the surface unusable.
// Close is idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	_ = s.Empty()
	s.closed = true
	return nil
}

// WriteTo serializes the surface as an SVG document.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "<svg xmlns=%q version=%q width=%q height=%q>\n",
		svgNamespace, svgVersion, formatNum(float64(s.width)), formatNum(float64(s.height)))
	for _, c := range s.children {
		b.WriteString("  <")
		b.WriteString(c.name)
		for _, a := range c.attrs {
			fmt.Fprintf(&b, " %s=%q", a.key, a.value)
		}
		b.WriteString("/>\n")
	}
	b.WriteString("</svg>\n")

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// String returns the serialized SVG document.
func (s *Surface) String() string {
	var b strings.Builder
	_, _ = s.WriteTo(&b)
	return b.String()
}

// appendShape resolves the style, creates the node, and inserts it as the
// last child so later shapes paint over earlier ones. Exactly one node is
// added per draw call.
func (s *Surface) appendShape(name string, style drawkit.Style, geometry [][2]string) (*Node, error) {
	if s.closed {
		return nil, errDrawClosed()
	}
	rs, err := style.Resolve()
	if err != nil {
		return nil, err
	}
	n := &Node{name: name, surf: s}
	for _, g := range geometry {
		n.setAttr(g[0], g[1])
	}
	n.applyStyle(rs)
	s.children = append(s.children, n)
	return n, nil
}

// removeChild detaches a node, preserving the order of the rest.
func (s *Surface) removeChild(n *Node) {
	for i, c := range s.children {
		if c == n {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}

// pointString renders interleaved coordinates in the "x1 y1,x2 y2" form.
func pointString(coords []float64) string {
	var b strings.Builder
	for i := 0; i+1 < len(coords); i += 2 {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(formatNum(coords[i]))
		b.WriteByte(' ')
		b.WriteString(formatNum(coords[i+1]))
	}
	return b.String()
}

func errDrawClosed() error {
	return fmt.Errorf("%w: surface is closed", drawkit.ErrInvalidArgument)
}
