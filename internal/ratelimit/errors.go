// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import "errors"

// ErrRateLimitExceeded is returned by Acquire when the current window has no
// permits left and the queue is full.
var ErrRateLimitExceeded = errors.New("rate limit exceeded")
