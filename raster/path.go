// Copyright 2026 The drawkit Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	xvector "golang.org/x/image/vector"
)

// bezierArcOffset is the control-point offset, as a fraction of the
// radius, for approximating a quarter circle with one cubic Bezier.
// The value is canonical; changing it changes rendered output.
const bezierArcOffset = 0.5522848

// pathVerb identifies a path construction command.
type pathVerb uint8

const (
	verbMoveTo pathVerb = iota
	verbLineTo
	verbCubicTo
	verbClose
)

// Path accumulates the construction commands of a single draw call.
// Coordinates are interleaved per verb: two for MoveTo/LineTo, six for
// CubicTo, none for Close.
type Path struct {
	verbs  []pathVerb
	points []float64
	startX float64
	startY float64
	curX   float64
	curY   float64
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]pathVerb, 0, 16),
		points: make([]float64, 0, 64),
	}
}

// IsEmpty reports whether the path has no commands.
func (p *Path) IsEmpty() bool { return len(p.verbs) == 0 }

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.verbs = append(p.verbs, verbMoveTo)
	p.points = append(p.points, x, y)
	p.startX, p.startY = x, y
	p.curX, p.curY = x, y
}

// LineTo adds a line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(x, y)
		return
	}
	p.verbs = append(p.verbs, verbLineTo)
	p.points = append(p.points, x, y)
	p.curX, p.curY = x, y
}

// CubicTo adds a cubic Bezier curve from the current point.
// (c1x, c1y) and (c2x, c2y) are control points, (x, y) is the endpoint.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(c1x, c1y)
	}
	p.verbs = append(p.verbs, verbCubicTo)
	p.points = append(p.points, c1x, c1y, c2x, c2y, x, y)
	p.curX, p.curY = x, y
}

// Close closes the current subpath by connecting to the start point.
func (p *Path) Close() {
	if len(p.verbs) == 0 {
		return
	}
	p.verbs = append(p.verbs, verbClose)
	p.curX, p.curY = p.startX, p.startY
}

// AddCircle traces a full 360 degree arc as four cubic segments.
func (p *Path) AddCircle(cx, cy, r float64) {
	p.AddEllipse(cx, cy, r, r)
}

// AddEllipse traces an ellipse as four cubic Bezier segments anchored at
// the cardinal points, with control offsets of radius times
// bezierArcOffset.
func (p *Path) AddEllipse(cx, cy, rx, ry float64) {
	ox := rx * bezierArcOffset
	oy := ry * bezierArcOffset

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// AddRect traces a rectangle with top-left corner (x, y).
func (p *Path) AddRect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// AddPolyline traces an open polyline through interleaved (x, y) pairs.
// An empty list adds nothing.
func (p *Path) AddPolyline(coords []float64) {
	for i := 0; i+1 < len(coords); i += 2 {
		if i == 0 {
			p.MoveTo(coords[i], coords[i+1])
		} else {
			p.LineTo(coords[i], coords[i+1])
		}
	}
}

// AddPolygon traces the polyline and closes the path after it.
func (p *Path) AddPolygon(coords []float64) {
	if len(coords) < 2 {
		return
	}
	p.AddPolyline(coords)
	p.Close()
}

// replay issues the accumulated commands into a coverage rasterizer.
func (p *Path) replay(r *xvector.Rasterizer) {
	i := 0
	for _, v := range p.verbs {
		switch v {
		case verbMoveTo:
			r.MoveTo(float32(p.points[i]), float32(p.points[i+1]))
			i += 2
		case verbLineTo:
			r.LineTo(float32(p.points[i]), float32(p.points[i+1]))
			i += 2
		case verbCubicTo:
			r.CubeTo(
				float32(p.points[i]), float32(p.points[i+1]),
				float32(p.points[i+2]), float32(p.points[i+3]),
				float32(p.points[i+4]), float32(p.points[i+5]))
			i += 6
		case verbClose:
			r.ClosePath()
		}
	}
}

// point is a 2D point used by flattening and stroke expansion.
type point struct {
	x, y float64
}

// subpath is one flattened contour of a path.
type subpath struct {
	pts    []point
	closed bool
}

// flatten reduces the path to polyline contours, subdividing curves until
// they deviate from a chord by less than the tolerance.
func (p *Path) flatten(tolerance float64) []subpath {
	var subs []subpath
	var cur []point

	flush := func() {
		if len(cur) > 1 {
			subs = append(subs, subpath{pts: cur})
		}
		cur = nil
	}

	i := 0
	for _, v := range p.verbs {
		switch v {
		case verbMoveTo:
			flush()
			cur = []point{{p.points[i], p.points[i+1]}}
			i += 2
		case verbLineTo:
			cur = append(cur, point{p.points[i], p.points[i+1]})
			i += 2
		case verbCubicTo:
			if len(cur) > 0 {
				p0 := cur[len(cur)-1]
				c1 := point{p.points[i], p.points[i+1]}
				c2 := point{p.points[i+2], p.points[i+3]}
				p3 := point{p.points[i+4], p.points[i+5]}
				cur = flattenCubic(cur, p0, c1, c2, p3, tolerance)
			}
			i += 6
		case verbClose:
			if len(cur) > 1 {
				start := cur[0]
				subs = append(subs, subpath{pts: cur, closed: true})
				cur = []point{start}
			}
		}
	}
	flush()
	return subs
}

// flattenCubic appends line approximation points for one cubic segment,
// subdividing with de Casteljau until flat enough.
func flattenCubic(dst []point, p0, c1, c2, p3 point, tolerance float64) []point {
	d1 := distanceToLine(c1, p0, p3)
	d2 := distanceToLine(c2, p0, p3)
	if max64(d1, d2) < tolerance {
		return append(dst, p3)
	}

	q0 := lerp(p0, c1, 0.5)
	q1 := lerp(c1, c2, 0.5)
	q2 := lerp(c2, p3, 0.5)
	r0 := lerp(q0, q1, 0.5)
	r1 := lerp(q1, q2, 0.5)
	s := lerp(r0, r1, 0.5)

	dst = flattenCubic(dst, p0, q0, r0, s, tolerance)
	return flattenCubic(dst, s, r1, q2, p3, tolerance)
}
