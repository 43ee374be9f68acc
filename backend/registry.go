// Copyright 2026 The drawkit Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"sort"
	"sync"

	"github.com/drawkit/drawkit"
)

// entry represents a registered backend driver.
type entry struct {
	name     string
	priority int
	factory  Factory
}

var (
	registryMu sync.Mutex
	entries    = make(map[string]entry)

	// Selection state machine: untested until the first Select call,
	// then resolved to a driver or to none for the process lifetime.
	resolved bool
	selected Driver
)

// Register registers a driver factory with the given name and priority.
// This is typically called from init() functions in backend packages.
// If a driver with the same name is already registered, it is replaced.
func Register(name string, priority int, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	entries[name] = entry{name: name, priority: priority, factory: factory}
}

// Unregister removes a driver from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(entries, name)
}

// Registered returns all registered driver names sorted by priority
// (highest first).
func Registered() []string {
	registryMu.Lock()
	defer registryMu.Unlock()

	names := make([]string, 0, len(entries))
	for _, e := range byPriorityLocked() {
		names = append(names, e.name)
	}
	return names
}

// Get returns a driver instance by name.
// Returns nil if the driver is not registered.
func Get(name string) Driver {
	registryMu.Lock()
	defer registryMu.Unlock()

	e, ok := entries[name]
	if !ok {
		return nil
	}
	return e.factory()
}

// Select resolves and caches the active driver. On the first call it
// probes registered drivers in priority order and keeps the first that
// reports support; later calls return the cached result without probing
// again. Returns nil when no driver is supported.
func Select() Driver {
	registryMu.Lock()
	defer registryMu.Unlock()

	if resolved {
		return selected
	}

	for _, e := range byPriorityLocked() {
		d := e.factory()
		if d == nil || !d.Supported() {
			continue
		}
		selected = d
		resolved = true
		drawkit.Logger().Info("backend selected", "name", d.Name())
		return selected
	}

	selected = nil
	resolved = true
	drawkit.Logger().Warn("no supported rendering backend")
	return nil
}

// ResetSelection returns the state machine to untested so the next Select
// probes again. This is useful for testing.
func ResetSelection() {
	registryMu.Lock()
	defer registryMu.Unlock()
	resolved = false
	selected = nil
}

// IsSupported reports whether any rendering backend is usable. The result
// is cached with the selection, so repeated calls are idempotent.
func IsSupported() bool {
	return Select() != nil
}

// New creates a drawing surface on the selected backend.
// Returns drawkit.ErrNoBackend when selection resolved to none.
func New(width, height int) (drawkit.Surface, error) {
	d := Select()
	if d == nil {
		return nil, drawkit.ErrNoBackend
	}
	return d.NewSurface(width, height)
}

// NewByName creates a surface on a specific registered backend,
// bypassing selection.
func NewByName(name string, width, height int) (drawkit.Surface, error) {
	d := Get(name)
	if d == nil {
		return nil, ErrNotRegistered
	}
	return d.NewSurface(width, height)
}

// byPriorityLocked returns entries sorted by priority (highest first),
// name as tie-breaker. Callers must hold registryMu.
func byPriorityLocked() []entry {
	sorted := make([]entry, 0, len(entries))
	for _, e := range entries {
		sorted = append(sorted, e)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].priority != sorted[j].priority {
			return sorted[i].priority > sorted[j].priority
		}
		return sorted[i].name < sorted[j].name
	})
	return sorted
}
