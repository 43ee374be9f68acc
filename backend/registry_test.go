// Copyright 2026 The drawkit Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"errors"
	"testing"

	"github.com/drawkit/drawkit"
)

// fakeDriver is a registrable driver with controllable support.
type fakeDriver struct {
	name      string
	supported bool
	probes    int
}

func (d *fakeDriver) Name() string { return d.name }

func (d *fakeDriver) Supported() bool {
	d.probes++
	return d.supported
}

func (d *fakeDriver) NewSurface(width, height int) (drawkit.Surface, error) {
	return &fakeSurface{width: width, height: height}, nil
}

// fakeSurface counts operations so stack tests can observe them.
type fakeSurface struct {
	width, height int
	cleared       int
	closed        bool
}

func (s *fakeSurface) Width() int  { return s.width }
func (s *fakeSurface) Height() int { return s.height }

func (s *fakeSurface) Circle(cx, cy, r float64, style drawkit.Style) (drawkit.Shape, error) {
	return nil, nil
}
func (s *fakeSurface) Ellipse(cx, cy, rx, ry float64, style drawkit.Style) (drawkit.Shape, error) {
	return nil, nil
}
func (s *fakeSurface) Rect(x, y, w, h float64, style drawkit.Style) (drawkit.Shape, error) {
	return nil, nil
}
func (s *fakeSurface) Line(x1, y1, x2, y2 float64, style drawkit.Style) (drawkit.Shape, error) {
	return nil, nil
}
func (s *fakeSurface) Polyline(coords []float64, style drawkit.Style) (drawkit.Shape, error) {
	return nil, nil
}
func (s *fakeSurface) Polygon(coords []float64, style drawkit.Style) (drawkit.Shape, error) {
	return nil, nil
}

func (s *fakeSurface) Clear() error {
	s.cleared++
	return nil
}

func (s *fakeSurface) Close() error {
	s.closed = true
	return nil
}

// register installs a fake driver and cleans up afterwards.
func register(t *testing.T, d *fakeDriver, priority int) {
	t.Helper()
	Register(d.name, priority, func() Driver { return d })
	t.Cleanup(func() {
		Unregister(d.name)
		ResetSelection()
	})
	ResetSelection()
}

func TestSelect_PriorityOrder(t *testing.T) {
	hi := &fakeDriver{name: "hi", supported: true}
	lo := &fakeDriver{name: "lo", supported: true}
	register(t, hi, PriorityVector)
	register(t, lo, PriorityRaster)

	d := Select()
	if d == nil || d.Name() != "hi" {
		t.Fatalf("Select() = %v, want hi", d)
	}
	if lo.probes != 0 {
		t.Error("lower-priority driver should not be probed once a higher one matched")
	}
}

func TestSelect_FallsBackToLowerPriority(t *testing.T) {
	hi := &fakeDriver{name: "hi", supported: false}
	lo := &fakeDriver{name: "lo", supported: true}
	register(t, hi, PriorityVector)
	register(t, lo, PriorityRaster)

	d := Select()
	if d == nil || d.Name() != "lo" {
		t.Fatalf("Select() = %v, want lo", d)
	}
	if hi.probes != 1 {
		t.Errorf("hi probes = %d, want 1 (probed first)", hi.probes)
	}
}

func TestSelect_CachesResult(t *testing.T) {
	d := &fakeDriver{name: "only", supported: true}
	register(t, d, PriorityRaster)

	first := IsSupported()
	second := IsSupported()
	if first != second {
		t.Error("IsSupported must be idempotent without environment change")
	}
	if d.probes != 1 {
		t.Errorf("probes = %d, want 1 (selection is cached)", d.probes)
	}
}

func TestSelect_NoneSupported(t *testing.T) {
	d := &fakeDriver{name: "only", supported: false}
	register(t, d, PriorityRaster)

	if Select() != nil {
		t.Fatal("Select() should resolve to none")
	}
	if IsSupported() {
		t.Error("IsSupported() = true, want false")
	}
	if _, err := New(10, 10); !errors.Is(err, drawkit.ErrNoBackend) {
		t.Errorf("New error = %v, want ErrNoBackend", err)
	}
}

func TestNewByName(t *testing.T) {
	d := &fakeDriver{name: "named", supported: true}
	register(t, d, PriorityRaster)

	s, err := NewByName("named", 30, 20)
	if err != nil {
		t.Fatalf("NewByName: %v", err)
	}
	if s.Width() != 30 || s.Height() != 20 {
		t.Errorf("surface size = %dx%d, want 30x20", s.Width(), s.Height())
	}

	if _, err := NewByName("missing", 1, 1); !errors.Is(err, ErrNotRegistered) {
		t.Errorf("unknown name error = %v, want ErrNotRegistered", err)
	}
}

func TestRegistered_SortedByPriority(t *testing.T) {
	a := &fakeDriver{name: "a", supported: true}
	b := &fakeDriver{name: "b", supported: true}
	register(t, a, 1)
	register(t, b, 99)

	names := Registered()
	if len(names) != 2 || names[0] != "b" || names[1] != "a" {
		t.Errorf("Registered() = %v, want [b a]", names)
	}
}
