// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorMessage is the single-field body written on authentication failure.
type ErrorMessage struct {
	Message string `json:"message"`
}

// Health states reported by [HealthStatus].
const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"

	DatabaseUp   = "up"
	DatabaseDown = "down"
)

// HealthStatus is the body of the health endpoint.
type HealthStatus struct {
	Status        string `json:"status"`
	Database      string `json:"database"`
	SchemaVersion int64  `json:"schemaVersion"`
}

// BuildInfoResponse is the JSON form of [AppBuildInfo].
type BuildInfoResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
