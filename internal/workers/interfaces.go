// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must return promptly: long-lived work is started in a goroutine that
// stops when ctx is done.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    go func() {
//	        <-ctx.Done()
//	    }()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// Sweeper drops idle state and reports how many entries were removed.
type Sweeper interface {
	Sweep() int
}
