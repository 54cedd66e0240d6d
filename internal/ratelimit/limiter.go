// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-tasks-api/internal/config"
	"github.com/MKhiriev/go-tasks-api/internal/logger"
)

// Stats is a snapshot of one partition.
type Stats struct {
	Available int
	Queued    int
}

// FixedWindowLimiter is a fixed-window limiter partitioned by key. It is
// built once at startup and shared by every request.
type FixedWindowLimiter struct {
	// mu guards partitions. Acquire holds the read lock while it touches a
	// partition so that Sweep, which holds the write lock, never drops a
	// partition in use.
	mu         sync.RWMutex
	partitions map[string]*partition

	policyName  string
	permitLimit int
	queueLimit  int
	window      time.Duration
	now         func() time.Time

	logger *logger.Logger
}

// New builds a limiter from the rate limit policy.
func New(cfg config.RateLimit, log *logger.Logger) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		partitions:  make(map[string]*partition),
		policyName:  cfg.PolicyName,
		permitLimit: cfg.PermitLimit,
		queueLimit:  cfg.QueueLimit,
		window:      cfg.Window,
		now:         time.Now,
		logger:      log,
	}
}

// PolicyName returns the configured policy name.
func (l *FixedWindowLimiter) PolicyName() string {
	return l.policyName
}

// Acquire admits one request for key. It returns nil when the request may
// proceed, ErrRateLimitExceeded when it must be rejected, or ctx.Err() when
// the request gave up while queued.
func (l *FixedWindowLimiter) Acquire(ctx context.Context, key string) error {
	p, w, err := l.tryAcquire(key)
	if err != nil {
		return err
	}
	if w == nil {
		return nil
	}

	select {
	case <-w.ready:
		return nil
	case <-ctx.Done():
		if p.cancel(w) {
			return ctx.Err()
		}
		// granted while ctx was being cancelled
		return nil
	}
}

func (l *FixedWindowLimiter) tryAcquire(key string) (*partition, *waiter, error) {
	p := l.lockPartition(key)
	defer l.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	w, err := p.acquire()
	return p, w, err
}

// lockPartition returns the partition for key with l.mu read-locked,
// creating the partition when needed.
func (l *FixedWindowLimiter) lockPartition(key string) *partition {
	for {
		l.mu.RLock()
		if p, ok := l.partitions[key]; ok {
			return p
		}
		l.mu.RUnlock()

		l.mu.Lock()
		if _, ok := l.partitions[key]; !ok {
			l.partitions[key] = newPartition(l.permitLimit, l.queueLimit, l.window, l.now)
		}
		l.mu.Unlock()
	}
}

// Stats returns the current state of the partition for key.
func (l *FixedWindowLimiter) Stats(key string) (Stats, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	p, ok := l.partitions[key]
	if !ok {
		return Stats{}, false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.replenish(l.now())
	return Stats{Available: p.available, Queued: p.queue.Len()}, true
}

// Sweep drops idle partitions and returns how many were removed.
func (l *FixedWindowLimiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for key, p := range l.partitions {
		p.mu.Lock()
		if p.idle(now) {
			p.stop()
			delete(l.partitions, key)
			removed++
		}
		p.mu.Unlock()
	}

	if removed > 0 {
		l.logger.Debug().
			Str("policy", l.policyName).
			Int("removed", removed).
			Int("remaining", len(l.partitions)).
			Msg("swept idle rate limit partitions")
	}

	return removed
}

// Len returns the number of live partitions.
func (l *FixedWindowLimiter) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.partitions)
}
