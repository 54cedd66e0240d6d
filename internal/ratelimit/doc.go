// Package ratelimit implements a partitioned fixed-window rate limiter.
//
// Each partition key (the client IP address in the HTTP pipeline) owns its
// own window. A window admits PermitLimit requests; up to QueueLimit more
// wait for the next window and are admitted oldest first. Anything beyond
// that is rejected with ErrRateLimitExceeded.
package ratelimit
