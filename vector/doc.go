// Copyright 2026 The drawkit Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package vector implements the retained-mode rendering backend.
//
// Every draw call appends exactly one persistent node to the surface's
// child list and returns it as the caller-owned shape handle. Nodes paint
// in document order (painter's algorithm), so a later call always draws
// above an earlier one. Calling a draw operation again never replaces a
// node; it adds an independent one.
//
// Style is applied as presentation attributes. A missing fill renders as
// fill="none"; a missing stroke omits the stroke attribute entirely while
// stroke-width, stroke-linejoin and stroke-linecap are still written — an
// attribute-complete node with an absent stroke simply renders invisibly,
// which is the declarative-markup idiom.
//
// The surface serializes to an SVG document via String or WriteTo.
package vector
