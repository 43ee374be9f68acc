package drawkit

import (
	"fmt"
	"math"
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// String returns the attribute value used by the vector backend.
func (c LineCap) String() string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// String returns the attribute value used by the vector backend.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinBevel:
		return "bevel"
	default:
		return "round"
	}
}

// Style is the immutable style descriptor passed by value into every draw
// call. The zero value means no fill and no stroke. Fields are set with
// With* methods that return a modified copy; a Style is never mutated in
// place and carries no identity.
type Style struct {
	fillColor      string
	fillOpacity    float64
	hasFillOpacity bool

	lineColor      string
	lineWidth      float64
	hasLineWidth   bool
	lineJoin       LineJoin
	hasLineJoin    bool
	lineCap        LineCap
	hasLineCap     bool
	lineOpacity    float64
	hasLineOpacity bool
}

// WithFill returns a copy with the fill color set.
// An empty string or "none" removes the fill.
func (s Style) WithFill(color string) Style {
	s.fillColor = color
	return s
}

// WithFillOpacity returns a copy with an explicit fill opacity in [0, 1].
// Explicit opacity overrides any alpha embedded in the fill color string.
func (s Style) WithFillOpacity(opacity float64) Style {
	s.fillOpacity = opacity
	s.hasFillOpacity = true
	return s
}

// WithStroke returns a copy with the line color and width set.
func (s Style) WithStroke(color string, width float64) Style {
	s.lineColor = color
	return s.WithLineWidth(width)
}

// WithLineColor returns a copy with the line color set.
// An empty string or "none" removes the stroke.
func (s Style) WithLineColor(color string) Style {
	s.lineColor = color
	return s
}

// WithLineWidth returns a copy with the line width set.
// Width must be a finite, non-negative number; Resolve reports
// ErrInvalidArgument otherwise. A width of zero suppresses the stroke
// paint operation but not the fill.
func (s Style) WithLineWidth(width float64) Style {
	s.lineWidth = width
	s.hasLineWidth = true
	return s
}

// WithLineJoin returns a copy with the line join style set.
func (s Style) WithLineJoin(join LineJoin) Style {
	s.lineJoin = join
	s.hasLineJoin = true
	return s
}

// WithLineCap returns a copy with the line cap style set.
func (s Style) WithLineCap(lineCap LineCap) Style {
	s.lineCap = lineCap
	s.hasLineCap = true
	return s
}

// WithLineOpacity returns a copy with an explicit line opacity in [0, 1].
// Explicit opacity overrides any alpha embedded in the line color string.
func (s Style) WithLineOpacity(opacity float64) Style {
	s.lineOpacity = opacity
	s.hasLineOpacity = true
	return s
}

// Resolved is the fully populated style record both backends consume.
// All defaulting happens in Style.Resolve; the backends never apply
// their own fallbacks, so identical descriptors cannot render
// differently for style reasons.
type Resolved struct {
	// Fill is the resolved fill color; meaningful only when HasFill.
	Fill    RGBA
	HasFill bool

	// Stroke is the resolved line color; meaningful only when HasStroke.
	// A stroke with LineWidth zero is present but paints nothing.
	Stroke    RGBA
	HasStroke bool

	LineWidth float64
	LineJoin  LineJoin
	LineCap   LineCap
}

// Resolve validates the descriptor and returns the populated record.
//
// Defaults: no fill, no stroke, line width 1, join round, cap butt.
// A missing color means no paint operation of that kind. An explicit
// opacity replaces the alpha channel of the corresponding color.
func (s Style) Resolve() (Resolved, error) {
	r := Resolved{
		LineWidth: 1,
		LineJoin:  LineJoinRound,
		LineCap:   LineCapButt,
	}

	if s.hasLineWidth {
		if math.IsNaN(s.lineWidth) || math.IsInf(s.lineWidth, 0) || s.lineWidth < 0 {
			return Resolved{}, fmt.Errorf("%w: line width %v must be a finite non-negative number", ErrInvalidArgument, s.lineWidth)
		}
		r.LineWidth = s.lineWidth
	}
	if s.hasLineJoin {
		r.LineJoin = s.lineJoin
	}
	if s.hasLineCap {
		r.LineCap = s.lineCap
	}

	if hasPaint(s.fillColor) {
		c, err := ParseColor(s.fillColor)
		if err != nil {
			return Resolved{}, fmt.Errorf("fill: %w", err)
		}
		if s.hasFillOpacity {
			c = c.WithAlpha(s.fillOpacity)
		}
		r.Fill = c
		r.HasFill = true
	}

	if hasPaint(s.lineColor) {
		c, err := ParseColor(s.lineColor)
		if err != nil {
			return Resolved{}, fmt.Errorf("stroke: %w", err)
		}
		if s.hasLineOpacity {
			c = c.WithAlpha(s.lineOpacity)
		}
		r.Stroke = c
		r.HasStroke = true
	}

	return r, nil
}

// hasPaint reports whether a color string names an actual paint.
func hasPaint(color string) bool {
	return color != "" && color != "none"
}
