// Copyright 2026 The drawkit Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"sync"

	"github.com/drawkit/drawkit"
	"github.com/drawkit/drawkit/backend"
)

// Name is the backend identifier used with the registry.
const Name = "raster"

func init() {
	backend.Register(Name, backend.PriorityRaster, func() backend.Driver {
		return Driver{}
	})
}

// Driver is the raster backend's registry entry.
type Driver struct{}

var _ backend.Driver = Driver{}

// Name returns the backend identifier.
func (Driver) Name() string { return Name }

// Supported reports whether the backend is usable.
func (Driver) Supported() bool { return Supported() }

// NewSurface creates an immediate-mode pixel surface.
func (Driver) NewSurface(width, height int) (drawkit.Surface, error) {
	return NewContext(width, height), nil
}

var (
	probeOnce sync.Once
	probeOK   bool
)

// Supported runs the capability probe once and caches the result: the
// backend is usable only if a drawing context can be produced from a
// newly created buffer and accepts a paint. Repeated calls are
// idempotent.
func Supported() bool {
	probeOnce.Do(func() {
		probeOK = probe()
		drawkit.Logger().Debug("capability probe", "backend", Name, "supported", probeOK)
	})
	return probeOK
}

// probe creates a 1x1 context and paints a single opaque pixel.
func probe() bool {
	ctx := NewContext(1, 1)
	if ctx == nil || ctx.Image() == nil {
		return false
	}
	if _, err := ctx.Rect(0, 0, 1, 1, drawkit.Style{}.WithFill("#ffffff")); err != nil {
		return false
	}
	_, _, _, a := ctx.Image().At(0, 0).RGBA()
	return a > 0
}
