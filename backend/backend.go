// Copyright 2026 The drawkit Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"errors"

	"github.com/drawkit/drawkit"
)

// Common backend errors.
var (
	// ErrNotRegistered is returned when a named backend is not registered.
	ErrNotRegistered = errors.New("backend: not registered")
)

// Standard driver priorities. Selection probes higher priorities first,
// so with both backends registered and supported the vector backend wins.
const (
	PriorityVector = 20
	PriorityRaster = 10
)

// Driver is the interface rendering backends implement.
//
// Drivers must be registered via Register() and are selected via Select()
// or created explicitly via NewByName().
type Driver interface {
	// Name returns the backend identifier (e.g., "vector", "raster").
	Name() string

	// Supported reports whether the backend is usable in the current
	// environment. The result must be stable for the process lifetime;
	// drivers typically cache their capability probe.
	Supported() bool

	// NewSurface creates a drawing surface of the given size.
	NewSurface(width, height int) (drawkit.Surface, error)
}

// Factory creates a new driver instance.
type Factory func() Driver
