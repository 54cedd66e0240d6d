// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract for the transport servers managed by
// this package.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled, a
	// stop signal arrives or a listener fails. Listeners are shut down
	// gracefully before it returns.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops every listener.
	Shutdown(ctx context.Context) error
}
