// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"container/list"
	"sync"
	"time"
)

// waiter is a queued request. ready is closed when a permit is granted.
type waiter struct {
	ready chan struct{}

	// elem is nil once the waiter has left the queue.
	elem *list.Element
}

// partition is the window state of a single key. All fields are guarded by mu.
type partition struct {
	mu sync.Mutex

	permitLimit int
	queueLimit  int
	window      time.Duration
	now         func() time.Time

	available int
	windowEnd time.Time
	queue     *list.List
	timer     *time.Timer
}

func newPartition(permitLimit, queueLimit int, window time.Duration, now func() time.Time) *partition {
	return &partition{
		permitLimit: permitLimit,
		queueLimit:  queueLimit,
		window:      window,
		now:         now,
		available:   permitLimit,
		windowEnd:   now().Add(window),
		queue:       list.New(),
	}
}

// acquire takes a permit or enqueues a waiter. It returns (nil, nil) when a
// permit was granted immediately. Callers hold mu.
func (p *partition) acquire() (*waiter, error) {
	p.replenish(p.now())

	if p.available > 0 && p.queue.Len() == 0 {
		p.available--
		return nil, nil
	}

	if p.queue.Len() >= p.queueLimit {
		return nil, ErrRateLimitExceeded
	}

	w := &waiter{ready: make(chan struct{})}
	w.elem = p.queue.PushBack(w)
	p.armTimer()

	return w, nil
}

// replenish starts a new window when the current one is over and hands its
// permits to queued waiters, oldest first. Window boundaries stay on the
// schedule fixed by the first request of the partition.
func (p *partition) replenish(now time.Time) {
	if now.Before(p.windowEnd) {
		return
	}

	missed := now.Sub(p.windowEnd) / p.window
	p.windowEnd = p.windowEnd.Add(p.window * (missed + 1))
	p.available = p.permitLimit

	for p.available > 0 && p.queue.Len() > 0 {
		front := p.queue.Front()
		w := p.queue.Remove(front).(*waiter)
		w.elem = nil
		p.available--
		close(w.ready)
	}
}

// armTimer schedules onWindowEnd at the end of the current window.
func (p *partition) armTimer() {
	if p.timer != nil {
		return
	}
	p.timer = time.AfterFunc(time.Until(p.windowEnd), p.onWindowEnd)
}

func (p *partition) onWindowEnd() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.timer = nil
	p.replenish(p.now())
	if p.queue.Len() > 0 {
		p.armTimer()
	}
}

// cancel removes w from the queue. It reports false when w was already
// granted a permit.
func (p *partition) cancel(w *waiter) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if w.elem == nil {
		return false
	}
	p.queue.Remove(w.elem)
	w.elem = nil

	return true
}

// idle reports whether the partition can be dropped without changing any
// outcome. Callers hold mu.
func (p *partition) idle(now time.Time) bool {
	return p.queue.Len() == 0 && !now.Before(p.windowEnd)
}

func (p *partition) stop() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}
