// Command drawdemo renders a small line chart through the drawing
// abstraction layer and writes it to disk: SVG when the vector backend is
// active, PNG when the raster backend is.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/drawkit/drawkit"
	"github.com/drawkit/drawkit/backend"
	"github.com/drawkit/drawkit/raster"
	"github.com/drawkit/drawkit/vector"
)

func main() {
	backendName := flag.String("backend", "", "force a backend (vector, raster); default is auto-selection")
	out := flag.String("out", "chart", "output file path without extension")
	verbose := flag.Bool("v", false, "enable logging to stderr")
	flag.Parse()

	if *verbose {
		drawkit.SetLogger(slog.Default())
	}

	if err := run(*backendName, *out); err != nil {
		fmt.Fprintln(os.Stderr, "drawdemo:", err)
		os.Exit(1)
	}
}

func run(backendName, out string) error {
	var surf drawkit.Surface
	var err error
	if backendName != "" {
		surf, err = backend.NewByName(backendName, 400, 300)
	} else {
		surf, err = backend.New(400, 300)
	}
	if err != nil {
		return err
	}
	defer surf.Close()

	if err := drawChart(surf); err != nil {
		return err
	}
	return writeOut(surf, out)
}

// drawChart issues the same draw sequence regardless of backend.
func drawChart(s drawkit.Surface) error {
	grid := drawkit.Style{}.WithStroke("#cccccc", 1)
	series := drawkit.Style{}.
		WithStroke("#1f77b4", 2).
		WithLineJoin(drawkit.LineJoinRound).
		WithLineCap(drawkit.LineCapRound)
	marker := drawkit.Style{}.WithFill("#1f77b4").WithStroke("#ffffff", 1)
	area := drawkit.Style{}.WithFill("#1f77b4").WithFillOpacity(0.15)

	if _, err := s.Rect(0, 0, 400, 300, drawkit.Style{}.WithFill("#ffffff")); err != nil {
		return err
	}
	for y := 50.0; y < 300; y += 50 {
		if _, err := s.Line(40, y, 380, y, grid); err != nil {
			return err
		}
	}

	points := []float64{40, 250, 110, 180, 180, 210, 250, 90, 320, 130, 380, 60}

	fill := append([]float64{}, points...)
	fill = append(fill, 380, 280, 40, 280)
	if _, err := s.Polygon(fill, area); err != nil {
		return err
	}
	if _, err := s.Polyline(points, series); err != nil {
		return err
	}
	for i := 0; i+1 < len(points); i += 2 {
		if _, err := s.Circle(points[i], points[i+1], 4, marker); err != nil {
			return err
		}
	}
	return nil
}

// writeOut serializes the surface in its backend's natural format.
func writeOut(s drawkit.Surface, out string) error {
	switch surf := s.(type) {
	case *vector.Surface:
		f, err := os.Create(out + ".svg")
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = surf.WriteTo(f)
		return err
	case *raster.Context:
		f, err := os.Create(out + ".png")
		if err != nil {
			return err
		}
		defer f.Close()
		return surf.EncodePNG(f)
	default:
		return fmt.Errorf("unknown surface type %T", s)
	}
}
