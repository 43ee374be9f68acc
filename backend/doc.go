// Copyright 2026 The drawkit Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package backend manages rendering backend registration and selection.
//
// Backends register themselves from init() functions in their packages;
// importing a backend package for side effects makes it a selection
// candidate:
//
//	import (
//	    "github.com/drawkit/drawkit/backend"
//	    _ "github.com/drawkit/drawkit/raster"
//	    _ "github.com/drawkit/drawkit/vector"
//	)
//
//	s, err := backend.New(800, 600)
//
// Selection is a two-state machine: untested, then resolved to a driver or
// to none. The first call to Select probes the registered drivers in fixed
// priority order (vector before raster) and caches the first that reports
// support for the rest of the process. When selection resolves to none,
// New fails with drawkit.ErrNoBackend rather than silently doing nothing.
package backend
