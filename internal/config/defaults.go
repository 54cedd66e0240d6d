// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/http"
	"time"
)

const (
	// DefaultCORSPolicyName names the single cross-origin policy.
	DefaultCORSPolicyName = "PermitirBlazor"
	// DefaultRateLimitPolicyName names the fixed-window policy.
	DefaultRateLimitPolicyName = "ApiPolicy"
)

// defaults returns the values used for every field left zero by env, flags
// and JSON. Secrets, origins and the connection string have no default.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "info",
			Locale:   "en",
		},
		Storage: Storage{
			DB: DB{
				Driver:            "sqlite3",
				ConnectAttempts:   3,
				ConnectRetryDelay: time.Second,
			},
		},
		Server: Server{
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		CORS: CORS{
			PolicyName: DefaultCORSPolicyName,
		},
		RateLimit: RateLimit{
			PolicyName:          DefaultRateLimitPolicyName,
			PermitLimit:         50,
			Window:              time.Minute,
			QueueLimit:          10,
			RejectionStatusCode: http.StatusServiceUnavailable,
		},
		Workers: Workers{
			PartitionSweepInterval: time.Minute,
		},
	}
}
