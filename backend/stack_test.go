// Copyright 2026 The drawkit Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"errors"
	"testing"

	"github.com/drawkit/drawkit"
)

func TestStack_Layering(t *testing.T) {
	d := &fakeDriver{name: "stack", supported: true}
	st, err := NewStackWith(d, 100, 50)
	if err != nil {
		t.Fatalf("NewStackWith: %v", err)
	}
	defer st.Close()

	bottom, err := st.AddLayer()
	if err != nil {
		t.Fatalf("AddLayer: %v", err)
	}
	middle, _ := st.AddLayer()
	top, _ := st.AddLayer()

	layers := st.Layers()
	if len(layers) != 3 {
		t.Fatalf("len(Layers()) = %d, want 3", len(layers))
	}
	if layers[0] != bottom || layers[2] != top {
		t.Error("layers must keep z-order, bottom first")
	}
	if layers[0].Width() != 100 || layers[0].Height() != 50 {
		t.Errorf("layer size = %dx%d, want 100x50", layers[0].Width(), layers[0].Height())
	}

	if !st.RemoveLayer(middle) {
		t.Error("RemoveLayer should report the layer was attached")
	}
	if middle.(*fakeSurface).closed == false {
		t.Error("removed layer should be closed")
	}
	if st.RemoveLayer(middle) {
		t.Error("removing a detached layer should report false")
	}
	if got := st.Layers(); len(got) != 2 || got[0] != bottom || got[1] != top {
		t.Errorf("layers after removal = %v", got)
	}
}

func TestStack_ClearAndClose(t *testing.T) {
	d := &fakeDriver{name: "stack", supported: true}
	st, err := NewStackWith(d, 10, 10)
	if err != nil {
		t.Fatalf("NewStackWith: %v", err)
	}

	a, _ := st.AddLayer()
	b, _ := st.AddLayer()

	if err := st.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if a.(*fakeSurface).cleared != 1 || b.(*fakeSurface).cleared != 1 {
		t.Error("Clear must clear every layer")
	}

	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !a.(*fakeSurface).closed || !b.(*fakeSurface).closed {
		t.Error("Close must close every layer")
	}
	if err := st.Close(); err != nil {
		t.Errorf("second Close: %v, want nil (idempotent)", err)
	}
	if _, err := st.AddLayer(); err == nil {
		t.Error("AddLayer after Close should fail")
	}
}

func TestStack_RequiresDriver(t *testing.T) {
	if _, err := NewStackWith(nil, 1, 1); !errors.Is(err, drawkit.ErrNoBackend) {
		t.Errorf("NewStackWith(nil) error = %v, want ErrNoBackend", err)
	}
}
