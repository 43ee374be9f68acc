// Copyright 2026 The drawkit Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/drawkit/drawkit"
)

func TestPolygon_FillWithoutStroke(t *testing.T) {
	ctx := NewContext(20, 20)
	// Line color absent: no stroke pass at all, just a filled square.
	_, err := ctx.Polygon([]float64{0, 0, 10, 0, 10, 10, 0, 10}, drawkit.Style{}.WithFill("blue"))
	if err != nil {
		t.Fatalf("Polygon: %v", err)
	}

	got := ctx.Image().RGBAAt(5, 5)
	if got.R != 0 || got.G != 0 || got.B != 255 || got.A != 255 {
		t.Errorf("interior pixel = %+v, want opaque blue", got)
	}
	if a := ctx.Image().RGBAAt(15, 15).A; a != 0 {
		t.Errorf("pixel outside polygon has alpha %d, want 0", a)
	}
	// A stroke pass would have painted beyond the fill edge.
	if a := ctx.Image().RGBAAt(11, 5).A; a != 0 {
		t.Errorf("pixel beyond edge has alpha %d, want 0 (no stroke expected)", a)
	}
}

func TestDraw_ReturnsNoHandle(t *testing.T) {
	ctx := NewContext(10, 10)
	shape, err := ctx.Circle(5, 5, 2, drawkit.Style{}.WithFill("red"))
	if err != nil {
		t.Fatalf("Circle: %v", err)
	}
	if shape != nil {
		t.Error("raster draw calls must not return a shape handle")
	}
}

func TestClear_ErasesFullBuffer(t *testing.T) {
	ctx := NewContext(16, 16)
	ctx.Rect(0, 0, 16, 16, drawkit.Style{}.WithFill("#ff0000"))

	if err := ctx.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	for _, p := range ctx.Image().Pix {
		if p != 0 {
			t.Fatal("buffer not fully erased after Clear")
		}
	}
}

func TestClear_ThenReplayReproducesPixels(t *testing.T) {
	ctx := NewContext(40, 40)
	draw := func() {
		ctx.Rect(4, 4, 20, 12, drawkit.Style{}.WithFill("#336699"))
		ctx.Circle(25, 25, 8, drawkit.Style{}.WithFill("rgba(255,0,0,0.5)"))
		ctx.Line(0, 0, 40, 40, drawkit.Style{}.WithStroke("black", 2))
	}

	draw()
	before := append([]uint8{}, ctx.Image().Pix...)

	if err := ctx.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	draw()
	if !bytes.Equal(before, ctx.Image().Pix) {
		t.Error("replaying the same draw sequence after Clear must reproduce the exact pixel state")
	}
}

func TestEllipse_MatchesCircleWhenRadiiEqual(t *testing.T) {
	const r = 10.0
	circle := NewContext(40, 40)
	ellipse := NewContext(40, 40)
	style := drawkit.Style{}.WithFill("#000000")

	circle.Circle(20, 20, r, style)
	ellipse.Ellipse(20, 20, r, r, style)

	// Both trace four cubic segments with the canonical control offset,
	// so the buffers agree within a tight per-channel tolerance.
	const tolerance = 2
	cp, ep := circle.Image().Pix, ellipse.Image().Pix
	if len(cp) != len(ep) {
		t.Fatal("buffer sizes differ")
	}
	for i := range cp {
		d := int(cp[i]) - int(ep[i])
		if d < -tolerance || d > tolerance {
			t.Fatalf("pixel byte %d differs: circle=%d ellipse=%d", i, cp[i], ep[i])
		}
	}
}

func TestEllipse_ControlOffsetConstant(t *testing.T) {
	// The approximation constant is part of the rendering contract.
	if bezierArcOffset != 0.5522848 {
		t.Fatalf("bezierArcOffset = %v, want 0.5522848", bezierArcOffset)
	}

	p := NewPath()
	p.AddEllipse(0, 0, 10, 10)
	// First cubic: (10,0) -> control (10, 10k) -> control (10k, 10) -> (0, 10).
	wantOffset := 10 * bezierArcOffset
	if p.points[2] != 10 || p.points[3] != wantOffset {
		t.Errorf("first control point = (%v, %v), want (10, %v)", p.points[2], p.points[3], wantOffset)
	}
}

func TestLine_StrokeAndCaps(t *testing.T) {
	t.Run("butt cap ends at endpoint", func(t *testing.T) {
		ctx := NewContext(40, 20)
		ctx.Line(5, 10, 35, 10, drawkit.Style{}.WithStroke("#000000", 4))

		if a := ctx.Image().RGBAAt(20, 10).A; a != 255 {
			t.Errorf("pixel on the line has alpha %d, want 255", a)
		}
		if a := ctx.Image().RGBAAt(20, 15).A; a != 0 {
			t.Errorf("pixel beside the line has alpha %d, want 0", a)
		}
		if a := ctx.Image().RGBAAt(3, 10).A; a != 0 {
			t.Errorf("pixel before butt cap has alpha %d, want 0", a)
		}
	})

	t.Run("round cap extends past endpoint", func(t *testing.T) {
		ctx := NewContext(40, 20)
		style := drawkit.Style{}.WithStroke("#000000", 4).WithLineCap(drawkit.LineCapRound)
		ctx.Line(5, 10, 35, 10, style)

		if a := ctx.Image().RGBAAt(4, 10).A; a == 0 {
			t.Error("round cap should paint past the endpoint")
		}
	})

	t.Run("square cap extends past endpoint", func(t *testing.T) {
		ctx := NewContext(40, 20)
		style := drawkit.Style{}.WithStroke("#000000", 4).WithLineCap(drawkit.LineCapSquare)
		ctx.Line(5, 10, 35, 10, style)

		if a := ctx.Image().RGBAAt(3, 10).A; a != 255 {
			t.Errorf("square cap pixel alpha = %d, want 255", a)
		}
	})
}

func TestStroke_ZeroWidthSuppressed(t *testing.T) {
	ctx := NewContext(20, 20)
	// Zero width: stroke suppressed, fill untouched.
	_, err := ctx.Rect(2, 2, 10, 10, drawkit.Style{}.WithFill("#ff0000").WithStroke("#000000", 0))
	if err != nil {
		t.Fatalf("Rect: %v", err)
	}

	inside := ctx.Image().RGBAAt(7, 7)
	if inside.R != 255 || inside.A != 255 {
		t.Errorf("fill pixel = %+v, want opaque red (zero width must not suppress fill)", inside)
	}
	if a := ctx.Image().RGBAAt(1, 7).A; a != 0 {
		t.Errorf("outside pixel alpha = %d, want 0 (no stroke painted)", a)
	}
}

func TestPaint_FillBeforeStroke(t *testing.T) {
	ctx := NewContext(20, 20)
	_, err := ctx.Rect(2, 2, 10, 10, drawkit.Style{}.WithFill("#ff0000").WithStroke("#0000ff", 2))
	if err != nil {
		t.Fatalf("Rect: %v", err)
	}

	// The stroke band spans [1,3) around the edge and paints over the fill.
	edge := ctx.Image().RGBAAt(1, 7)
	if edge.B != 255 || edge.R != 0 {
		t.Errorf("edge pixel = %+v, want pure stroke blue over fill", edge)
	}
	center := ctx.Image().RGBAAt(7, 7)
	if center.R != 255 || center.B != 0 {
		t.Errorf("center pixel = %+v, want fill red", center)
	}
}

func TestPolyline_OddCoordsNoPartialPaint(t *testing.T) {
	ctx := NewContext(10, 10)
	_, err := ctx.Polygon([]float64{0, 0, 10, 0, 5}, drawkit.Style{}.WithFill("blue"))
	if !errors.Is(err, drawkit.ErrInvalidArgument) {
		t.Fatalf("Polygon error = %v, want ErrInvalidArgument", err)
	}
	for _, p := range ctx.Image().Pix {
		if p != 0 {
			t.Fatal("failed draw call painted pixels")
		}
	}
}

func TestContext_EncodePNG(t *testing.T) {
	ctx := NewContext(12, 8)
	ctx.Rect(0, 0, 12, 8, drawkit.Style{}.WithFill("#00ff00"))

	var buf bytes.Buffer
	if err := ctx.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 12, 8) {
		t.Errorf("decoded bounds = %v, want (0,0)-(12,8)", img.Bounds())
	}
}

func TestNewContextFor_SharesBuffer(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	ctx := NewContextFor(img)
	ctx.Rect(0, 0, 10, 10, drawkit.Style{}.WithFill("#ffffff"))

	if img.RGBAAt(5, 5).A != 255 {
		t.Error("drawing must paint into the caller's buffer")
	}
	if ctx.Image() != img {
		t.Error("Image() must return the caller's buffer, not a copy")
	}
}

func TestSupported_Idempotent(t *testing.T) {
	first := Supported()
	second := Supported()
	if first != second {
		t.Error("Supported must be idempotent without environment change")
	}
	if !first {
		t.Error("raster backend should be supported in this environment")
	}
}
