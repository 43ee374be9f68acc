package drawkit

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA represents a resolved color with red, green, blue, and alpha
// components. Each component is in the range [0, 1].
//
// RGBA is the normalized output of ParseColor: whatever notation a caller
// used (hex, functional, named), the backends only ever see this one form.
type RGBA struct {
	R, G, B, A float64
}

// RGBA implements the color.Color interface (alpha-premultiplied).
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return color.NRGBA64{
		R: uint16(clamp01(c.R) * 0xffff),
		G: uint16(clamp01(c.G) * 0xffff),
		B: uint16(clamp01(c.B) * 0xffff),
		A: uint16(clamp01(c.A) * 0xffff),
	}.RGBA()
}

// NRGBA converts the color to 8-bit non-premultiplied form.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(clamp01(c.R) * 255)),
		G: uint8(math.Round(clamp01(c.G) * 255)),
		B: uint8(math.Round(clamp01(c.B) * 255)),
		A: uint8(math.Round(clamp01(c.A) * 255)),
	}
}

// WithAlpha returns a copy of the color with the alpha channel replaced.
// This is the opacity-override primitive: an explicit opacity from a style
// always wins over whatever alpha was embedded in the color string.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = clamp01(a)
	return c
}

// String renders the normalized form consumed by the vector backend,
// e.g. "rgba(255,0,0,1)" or "rgba(0,0,0,0.5)".
func (c RGBA) String() string {
	n := c.NRGBA()
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", n.R, n.G, n.B, formatAlpha(c.A))
}

// RGB creates an opaque color from components in [0, 1].
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// namedColors is the basic CSS color set chart code actually uses.
// Values are hex so everything funnels through the same colorful parse.
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"lime":    "#00ff00",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"aqua":    "#00ffff",
	"magenta": "#ff00ff",
	"fuchsia": "#ff00ff",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#c0c0c0",
	"maroon":  "#800000",
	"olive":   "#808000",
	"navy":    "#000080",
	"teal":    "#008080",
	"purple":  "#800080",
	"orange":  "#ffa500",
}

// ParseColor parses a color string into a normalized RGBA value.
//
// Supported notations:
//   - hex: "#rgb", "#rgba", "#rrggbb", "#rrggbbaa"
//   - functional: "rgb(r,g,b)" with components in [0, 255],
//     "rgba(r,g,b,a)" with alpha in [0, 1]
//   - named: the basic CSS color keywords ("red", "navy", ...)
//
// The empty string and "none" are not colors; callers decide presence
// before parsing (a missing color means "no paint", never a default).
func ParseColor(s string) (RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" {
		return RGBA{}, fmt.Errorf("%w: empty color", ErrInvalidArgument)
	}
	if hex, ok := namedColors[s]; ok {
		s = hex
	}
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunctional(s[len("rgba("):len(s)-1], true)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunctional(s[len("rgb("):len(s)-1], false)
	}
	return RGBA{}, fmt.Errorf("%w: unrecognized color %q", ErrInvalidArgument, s)
}

// parseHex handles the four hex widths. Alpha digits, when present, are
// split off first so the RGB part goes through colorful like every other
// notation.
func parseHex(s string) (RGBA, error) {
	switch len(s) {
	case 4, 5, 7, 9:
	default:
		return RGBA{}, fmt.Errorf("%w: bad hex color %q", ErrInvalidArgument, s)
	}
	alpha := 1.0
	switch len(s) {
	case 5: // #rgba
		a, err := strconv.ParseUint(s[4:5], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: bad hex color %q", ErrInvalidArgument, s)
		}
		alpha = float64(a*17) / 255
		s = s[:4]
	case 9: // #rrggbbaa
		a, err := strconv.ParseUint(s[7:9], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: bad hex color %q", ErrInvalidArgument, s)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: bad hex color %q", ErrInvalidArgument, s)
	}
	return RGBA{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// parseFunctional handles "r,g,b" and "r,g,b,a" component lists.
func parseFunctional(body string, hasAlpha bool) (RGBA, error) {
	parts := strings.Split(body, ",")
	want := 3
	if hasAlpha {
		want = 4
	}
	if len(parts) != want {
		return RGBA{}, fmt.Errorf("%w: expected %d color components, got %d", ErrInvalidArgument, want, len(parts))
	}
	var comps [4]float64
	comps[3] = 1
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: bad color component %q", ErrInvalidArgument, p)
		}
		comps[i] = v
	}
	return RGBA{
		R: clamp01(comps[0] / 255),
		G: clamp01(comps[1] / 255),
		B: clamp01(comps[2] / 255),
		A: clamp01(comps[3]),
	}, nil
}

// formatAlpha renders alpha with the shortest exact decimal form,
// matching the "rgba(255,0,0,1)" normalization.
func formatAlpha(a float64) string {
	return strconv.FormatFloat(clamp01(a), 'g', -1, 64)
}

// clamp01 restricts a value to the [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 || math.IsNaN(x) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
