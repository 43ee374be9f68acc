// Copyright 2026 The drawkit Authors
// SPDX-License-Identifier: BSD-3-Clause

package vector

import (
	"encoding/xml"
	"sync"

	"github.com/drawkit/drawkit"
	"github.com/drawkit/drawkit/backend"
)

const (
	// Name is the backend identifier used with the registry.
	Name = "vector"

	svgNamespace = "http://www.w3.org/2000/svg"
	svgVersion   = "1.1"
)

func init() {
	backend.Register(Name, backend.PriorityVector, func() backend.Driver {
		return Driver{}
	})
}

// Driver is the vector backend's registry entry.
type Driver struct{}

var _ backend.Driver = Driver{}

// Name returns the backend identifier.
func (Driver) Name() string { return Name }

// Supported reports whether the backend is usable.
func (Driver) Supported() bool { return Supported() }

// NewSurface creates a retained-mode surface.
func (Driver) NewSurface(width, height int) (drawkit.Surface, error) {
	return NewSurface(width, height), nil
}

var (
	probeOnce sync.Once
	probeOK   bool
)

// Supported runs the capability probe once and caches the result: the
// backend is usable only if a document containing each basic shape
// primitive serializes to well-formed markup. Repeated calls are
// idempotent.
func Supported() bool {
	probeOnce.Do(func() {
		probeOK = probe()
		drawkit.Logger().Debug("capability probe", "backend", Name, "supported", probeOK)
	})
	return probeOK
}

// probe draws one of every basic shape on a throwaway surface and checks
// that the emitted document parses back as well-formed markup.
func probe() bool {
	s := NewSurface(8, 8)
	style := drawkit.Style{}.WithFill("#000000").WithStroke("#000000", 1)

	if _, err := s.Circle(4, 4, 2, style); err != nil {
		return false
	}
	if _, err := s.Ellipse(4, 4, 2, 1, style); err != nil {
		return false
	}
	if _, err := s.Rect(1, 1, 2, 2, style); err != nil {
		return false
	}
	if _, err := s.Line(0, 0, 8, 8, style); err != nil {
		return false
	}
	if _, err := s.Polyline([]float64{0, 0, 4, 4, 8, 0}, style); err != nil {
		return false
	}
	if _, err := s.Polygon([]float64{0, 0, 4, 4, 8, 0}, style); err != nil {
		return false
	}

	var doc struct {
		XMLName xml.Name `xml:"svg"`
		Version string   `xml:"version,attr"`
	}
	if err := xml.Unmarshal([]byte(s.String()), &doc); err != nil {
		return false
	}
	return doc.Version == svgVersion
}
