// Copyright 2026 The drawkit Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	xvector "golang.org/x/image/vector"

	"github.com/drawkit/drawkit"
)

// Context is an immediate-mode drawing surface bound to a fixed-size
// pixel buffer. Draw calls paint in place and return a nil shape handle;
// redrawing a scene after Clear means replaying every call in order.
//
// Contexts are not safe for concurrent use; all drawing belongs to a
// single goroutine.
type Context struct {
	width  int
	height int
	img    *image.RGBA
	closed bool
}

var _ drawkit.Surface = (*Context)(nil)

// NewContext creates a context with a fresh transparent buffer.
func NewContext(width, height int) *Context {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &Context{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewContextFor creates a context that paints into an existing buffer.
func NewContextFor(img *image.RGBA) *Context {
	b := img.Bounds()
	return &Context{
		width:  b.Dx(),
		height: b.Dy(),
		img:    img,
	}
}

// Width returns the buffer width in pixels.
func (c *Context) Width() int { return c.width }

// Height returns the buffer height in pixels.
func (c *Context) Height() int { return c.height }

// Image returns the backing pixel buffer. The buffer is shared, not a
// copy; it stays valid across draw calls.
func (c *Context) Image() *image.RGBA { return c.img }

// Circle paints a circle with center (cx, cy) and radius r.
func (c *Context) Circle(cx, cy, r float64, style drawkit.Style) (drawkit.Shape, error) {
	p := NewPath()
	p.AddCircle(cx, cy, r)
	return nil, c.paint(p, style)
}

// Ellipse paints an ellipse with center (cx, cy) and radii rx, ry.
func (c *Context) Ellipse(cx, cy, rx, ry float64, style drawkit.Style) (drawkit.Shape, error) {
	p := NewPath()
	p.AddEllipse(cx, cy, rx, ry)
	return nil, c.paint(p, style)
}

// Rect paints a rectangle with top-left corner (x, y).
func (c *Context) Rect(x, y, w, h float64, style drawkit.Style) (drawkit.Shape, error) {
	p := NewPath()
	p.AddRect(x, y, w, h)
	return nil, c.paint(p, style)
}

// Line paints a line between two endpoints.
func (c *Context) Line(x1, y1, x2, y2 float64, style drawkit.Style) (drawkit.Shape, error) {
	p := NewPath()
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	return nil, c.paint(p, style)
}

// Polyline paints an open polyline through interleaved (x, y) pairs.
func (c *Context) Polyline(coords []float64, style drawkit.Style) (drawkit.Shape, error) {
	if err := drawkit.ValidateCoords(coords); err != nil {
		return nil, err
	}
	p := NewPath()
	p.AddPolyline(coords)
	return nil, c.paint(p, style)
}

// Polygon paints a closed polygon through interleaved (x, y) pairs.
func (c *Context) Polygon(coords []float64, style drawkit.Style) (drawkit.Shape, error) {
	if err := drawkit.ValidateCoords(coords); err != nil {
		return nil, err
	}
	p := NewPath()
	p.AddPolygon(coords)
	return nil, c.paint(p, style)
}

// Clear erases the full backing rectangle to transparent. No path state
// survives between calls, so there is nothing else to reset.
func (c *Context) Clear() error {
	if c.closed {
		return errClosed()
	}
	draw.Draw(c.img, c.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	return nil
}

// Close marks the context unusable. The buffer returned by Image stays
// readable. Close is idempotent.
func (c *Context) Close() error {
	c.closed = true
	return nil
}

// EncodePNG writes the current buffer contents as PNG.
func (c *Context) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// paint resolves the style once and applies fill before stroke.
// Stroke only paints when a line color is present and the width is
// nonzero; zero width never suppresses the fill.
func (c *Context) paint(p *Path, style drawkit.Style) error {
	if c.closed {
		return errClosed()
	}
	rs, err := style.Resolve()
	if err != nil {
		return err
	}
	if p.IsEmpty() {
		return nil
	}
	if rs.HasFill {
		c.fillPath(p, rs.Fill)
	}
	if rs.HasStroke && rs.LineWidth > 0 {
		outline := strokeOutline(p, rs)
		if !outline.IsEmpty() {
			c.fillPath(outline, rs.Stroke)
		}
	}
	return nil
}

// fillPath rasterizes a path into the buffer with source-over
// compositing.
func (c *Context) fillPath(p *Path, col drawkit.RGBA) {
	r := xvector.NewRasterizer(c.width, c.height)
	r.DrawOp = draw.Over
	p.replay(r)
	r.Draw(c.img, c.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{})
}

func errClosed() error {
	return fmt.Errorf("%w: context is closed", drawkit.ErrInvalidArgument)
}
