// Copyright 2026 The drawkit Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"

	"github.com/drawkit/drawkit"
)

// Stroke expansion converts stroked geometry into a fill outline:
// the contour is offset by half the line width on either side, the two
// offset paths are connected by caps, and joins shape the corners.
// The outline is filled with the non-zero winding rule, so overlap on the
// inner side of a corner is harmless.

const (
	// strokeTolerance bounds the chord error when flattening curves
	// before offsetting.
	strokeTolerance = 0.25

	// miterLimit converts miter joins to bevels when the miter length
	// exceeds this multiple of the half width.
	miterLimit = 4.0

	// arcStep is the maximum angular step when approximating round
	// joins and caps with line segments.
	arcStep = math.Pi / 8
)

// stroker builds the outline for one resolved stroke style.
type stroker struct {
	radius float64
	cap    drawkit.LineCap
	join   drawkit.LineJoin
	out    *Path
}

// strokeOutline expands a path into its stroke outline.
// Returns an empty path when the width is zero or the geometry is
// degenerate.
func strokeOutline(p *Path, rs drawkit.Resolved) *Path {
	st := &stroker{
		radius: rs.LineWidth / 2,
		cap:    rs.LineCap,
		join:   rs.LineJoin,
		out:    NewPath(),
	}
	if st.radius <= 0 {
		return st.out
	}
	for _, sp := range p.flatten(strokeTolerance) {
		st.subpath(sp)
	}
	return st.out
}

// subpath emits the outline rings for one flattened contour.
func (st *stroker) subpath(sp subpath) {
	pts := dedupe(sp.pts)
	closed := sp.closed
	if closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 2 {
		return
	}

	if closed && len(pts) > 2 {
		// Two rings with opposite winding form the annulus.
		st.emitRing(st.offsetClosed(pts))
		st.emitRing(st.offsetClosed(reversed(pts)))
		return
	}

	// Open contour: forward side, end cap, backward side, start cap.
	ring := st.offsetOpen(nil, pts)
	n := len(pts)
	endDir := direction(pts[n-2], pts[n-1])
	ring = st.capPoints(ring, pts[n-1], scale(perp(endDir), st.radius), endDir)
	ring = st.offsetOpen(ring, reversed(pts))
	startDir := direction(pts[1], pts[0])
	ring = st.capPoints(ring, pts[0], scale(perp(startDir), st.radius), startDir)
	st.emitRing(ring)
}

// offsetOpen walks the points in order, appending left-side offset points
// with join geometry at interior vertices.
func (st *stroker) offsetOpen(ring []point, pts []point) []point {
	dirs := make([]point, len(pts)-1)
	for i := range dirs {
		dirs[i] = direction(pts[i], pts[i+1])
	}

	ring = append(ring, add(pts[0], scale(perp(dirs[0]), st.radius)))
	for i := 1; i < len(pts)-1; i++ {
		ring = st.joinPoints(ring, pts[i], dirs[i-1], dirs[i])
	}
	last := len(pts) - 1
	return append(ring, add(pts[last], scale(perp(dirs[last-1]), st.radius)))
}

// offsetClosed walks a closed ring of points, applying joins at every
// vertex including the wraparound.
func (st *stroker) offsetClosed(pts []point) []point {
	n := len(pts)
	dirs := make([]point, n)
	for i := range pts {
		dirs[i] = direction(pts[i], pts[(i+1)%n])
	}

	var ring []point
	for i := 0; i < n; i++ {
		prev := dirs[(i+n-1)%n]
		ring = st.joinPoints(ring, pts[i], prev, dirs[i])
	}
	return ring
}

// joinPoints appends the offset points around vertex v where the segment
// direction changes from d0 to d1.
func (st *stroker) joinPoints(ring []point, v, d0, d1 point) []point {
	na := scale(perp(d0), st.radius)
	nb := scale(perp(d1), st.radius)
	cross := d0.x*d1.y - d0.y*d1.x
	dot := d0.x*d1.x + d0.y*d1.y

	// Nearly straight: a single offset point keeps the ring tight.
	if dot > 0 && math.Abs(cross) < 1e-9 {
		return append(ring, add(v, nb))
	}

	// The left side is the outer side of the corner when the path turns
	// the other way. Inner corners get a plain bevel; the resulting
	// self-overlap disappears under the non-zero winding rule.
	outer := cross < 0
	if !outer {
		return append(ring, add(v, na), add(v, nb))
	}

	switch st.join {
	case drawkit.LineJoinMiter:
		if m, ok := miterPoint(na, nb, st.radius); ok {
			return append(ring, add(v, na), add(v, m), add(v, nb))
		}
		return append(ring, add(v, na), add(v, nb))
	case drawkit.LineJoinRound:
		ring = append(ring, add(v, na))
		ring = appendArc(ring, v, na, angleBetween(na, nb))
		return append(ring, add(v, nb))
	default: // bevel
		return append(ring, add(v, na), add(v, nb))
	}
}

// capPoints appends cap geometry at an endpoint. The ring currently ends
// at center+n; the cap must reach center-n, bulging along the outward
// direction d for round and square caps.
func (st *stroker) capPoints(ring []point, center, n, d point) []point {
	switch st.cap {
	case drawkit.LineCapRound:
		return appendArc(ring, center, n, -math.Pi)
	case drawkit.LineCapSquare:
		o := scale(d, st.radius)
		return append(ring,
			add(center, add(n, o)),
			add(center, add(neg(n), o)))
	default: // butt: the side-to-side line is implicit in the ring
		return ring
	}
}

// emitRing writes a closed outline ring into the output path.
func (st *stroker) emitRing(ring []point) {
	if len(ring) < 3 {
		return
	}
	st.out.MoveTo(ring[0].x, ring[0].y)
	for _, p := range ring[1:] {
		st.out.LineTo(p.x, p.y)
	}
	st.out.Close()
}

// appendArc approximates an arc around center, starting at offset n and
// sweeping by the given angle, with line segments.
func appendArc(ring []point, center, n point, sweep float64) []point {
	radius := length(n)
	if radius == 0 || sweep == 0 {
		return ring
	}
	steps := int(math.Ceil(math.Abs(sweep) / arcStep))
	a0 := math.Atan2(n.y, n.x)
	for i := 1; i <= steps; i++ {
		a := a0 + sweep*float64(i)/float64(steps)
		ring = append(ring, point{
			x: center.x + radius*math.Cos(a),
			y: center.y + radius*math.Sin(a),
		})
	}
	return ring
}

// miterPoint computes the miter offset for the corner between the two
// radius-scaled normals. Reports false when the miter limit is exceeded.
func miterPoint(na, nb point, radius float64) (point, bool) {
	u := normalize(add(na, nb))
	cosHalf := (u.x*na.x + u.y*na.y) / radius
	if cosHalf < 1e-9 {
		return point{}, false
	}
	miterLen := radius / cosHalf
	if miterLen > miterLimit*radius {
		return point{}, false
	}
	return scale(u, miterLen), true
}

// angleBetween returns the signed angle from radius-scaled normal na to nb.
func angleBetween(na, nb point) float64 {
	return math.Atan2(na.x*nb.y-na.y*nb.x, na.x*nb.x+na.y*nb.y)
}

// dedupe drops consecutive duplicate points.
func dedupe(pts []point) []point {
	out := pts[:0:0]
	for i, p := range pts {
		if i == 0 || p != pts[i-1] {
			out = append(out, p)
		}
	}
	return out
}

func reversed(pts []point) []point {
	out := make([]point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

func direction(a, b point) point {
	return normalize(point{b.x - a.x, b.y - a.y})
}

func perp(d point) point { return point{-d.y, d.x} }

func add(a, b point) point { return point{a.x + b.x, a.y + b.y} }

func neg(a point) point { return point{-a.x, -a.y} }

func scale(a point, s float64) point { return point{a.x * s, a.y * s} }

func length(a point) float64 { return math.Hypot(a.x, a.y) }

func normalize(a point) point {
	l := length(a)
	if l < 1e-12 {
		return point{}
	}
	return point{a.x / l, a.y / l}
}

func lerp(a, b point, t float64) point {
	return point{a.x + (b.x-a.x)*t, a.y + (b.y-a.y)*t}
}

func distanceToLine(p, a, b point) float64 {
	ab := point{b.x - a.x, b.y - a.y}
	abLen := length(ab)
	if abLen < 1e-12 {
		return math.Hypot(p.x-a.x, p.y-a.y)
	}
	t := ((p.x-a.x)*ab.x + (p.y-a.y)*ab.y) / (abLen * abLen)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	cx := a.x + ab.x*t
	cy := a.y + ab.y*t
	return math.Hypot(p.x-cx, p.y-cy)
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
