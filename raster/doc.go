// Copyright 2026 The drawkit Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster implements the immediate-mode rendering backend.
//
// A Context is bound to a fixed-size *image.RGBA pixel buffer. Each draw
// call begins a fresh path, rasterizes it, and mutates pixels in place;
// nothing persists between calls, so a full scene redraw means replaying
// every draw call in the same order after a clear. Draw calls return a nil
// shape handle — there is no identity to track.
//
// Fill is painted before stroke. Stroked geometry is expanded into a fill
// outline (offset paths plus caps and joins) and rasterized through the
// same coverage rasterizer as fills.
package raster
