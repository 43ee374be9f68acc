// Copyright 2026 The drawkit Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"errors"

	"github.com/drawkit/drawkit"
)

// Stack is the surface adapter: it owns an ordered set of same-sized
// surfaces stacked at one origin, so a chart view can layer independent
// drawing planes (grid, series, overlays) on top of each other.
// Layer index is z-order: layer 0 is the bottom plane.
//
// A Stack is bound to one driver at creation; all its layers come from
// the same backend.
type Stack struct {
	driver Driver
	width  int
	height int
	layers []drawkit.Surface
	closed bool
}

// NewStack creates a layer stack on the selected backend.
// Returns drawkit.ErrNoBackend when selection resolved to none.
func NewStack(width, height int) (*Stack, error) {
	d := Select()
	if d == nil {
		return nil, drawkit.ErrNoBackend
	}
	return NewStackWith(d, width, height)
}

// NewStackWith creates a layer stack on an explicit driver.
func NewStackWith(d Driver, width, height int) (*Stack, error) {
	if d == nil {
		return nil, drawkit.ErrNoBackend
	}
	return &Stack{driver: d, width: width, height: height}, nil
}

// Width returns the stack width in pixels.
func (s *Stack) Width() int { return s.width }

// Height returns the stack height in pixels.
func (s *Stack) Height() int { return s.height }

// Driver returns the driver all layers are created on.
func (s *Stack) Driver() Driver { return s.driver }

// AddLayer creates a new surface and attaches it on top of the stack.
func (s *Stack) AddLayer() (drawkit.Surface, error) {
	if s.closed {
		return nil, errors.New("backend: stack is closed")
	}
	layer, err := s.driver.NewSurface(s.width, s.height)
	if err != nil {
		return nil, err
	}
	s.layers = append(s.layers, layer)
	return layer, nil
}

// RemoveLayer detaches a layer from the stack and closes it.
// Reports whether the layer was attached.
func (s *Stack) RemoveLayer(layer drawkit.Surface) bool {
	for i, l := range s.layers {
		if l == layer {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			_ = l.Close()
			return true
		}
	}
	return false
}

// Layers returns the attached surfaces in z-order, bottom first.
// The returned slice is a copy.
func (s *Stack) Layers() []drawkit.Surface {
	out := make([]drawkit.Surface, len(s.layers))
	copy(out, s.layers)
	return out
}

// Clear clears every layer, leaving the stack structure intact.
func (s *Stack) Clear() error {
	for _, l := range s.layers {
		if err := l.Clear(); err != nil {
			return err
		}
	}
	return nil
}

// Close detaches and closes all layers. After Close the stack must not
// be used. Close is idempotent.
func (s *Stack) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	var firstErr error
	for _, l := range s.layers {
		if err := l.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.layers = nil
	return firstErr
}
