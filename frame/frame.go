// Copyright 2026 The drawkit Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package frame provides the frame-callback scheduler used for chart
// animation. A callback is requested for the next frame and runs exactly
// once; continuous animation re-requests from inside the callback. When
// the host has no native refresh source, the scheduler falls back to a
// fixed-interval ticker targeting roughly 16ms per frame.
//
// All callbacks are dispatched from a single goroutine, matching the
// single-UI-thread ownership model of the drawing surfaces: a callback
// may touch surfaces freely as long as nothing else does.
package frame

import (
	"sync"
	"time"
)

// FallbackInterval is the frame period used when no native refresh
// scheduler exists, targeting roughly 60 frames per second.
const FallbackInterval = 16 * time.Millisecond

// ID identifies a pending frame request and can be passed to Cancel.
type ID uint64

// Callback runs once on the next frame. The argument is the frame
// timestamp.
type Callback func(now time.Time)

// request is one pending one-shot callback.
type request struct {
	id ID
	fn Callback
}

// Scheduler dispatches frame callbacks once per tick.
// The zero value is not usable; create one with NewScheduler.
type Scheduler struct {
	interval time.Duration

	mu      sync.Mutex
	nextID  ID
	pending []request
	stopped bool

	stop chan struct{}
	done chan struct{}
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithInterval overrides the fallback frame interval.
// Useful for hosts with a known refresh period and for tests.
func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

// NewScheduler creates and starts a scheduler.
func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{
		interval: FallbackInterval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.run()
	return s
}

// Request registers fn to run once on the next frame and returns an id
// that can cancel it. Requests made from inside a callback run on the
// following frame, not the current one.
func (s *Scheduler) Request(fn Callback) ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.pending = append(s.pending, request{id: id, fn: fn})
	return id
}

// Cancel drops a pending request. Cancelling an id that already ran or
// was already cancelled is a no-op.
func (s *Scheduler) Cancel(id ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.pending {
		if r.id == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// Stop halts dispatch and discards pending requests. It blocks until the
// dispatch goroutine has exited. Stop is idempotent.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.pending = nil
	s.mu.Unlock()

	close(s.stop)
	<-s.done
}

// run is the dispatch loop: one batch of callbacks per tick, in request
// order.
func (s *Scheduler) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			batch := s.pending
			s.pending = nil
			s.mu.Unlock()

			for _, r := range batch {
				r.fn(now)
			}
		}
	}
}
