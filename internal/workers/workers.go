// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-tasks-api/internal/config"
	"github.com/MKhiriev/go-tasks-api/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers of the API process.
func NewWorkers(cfg config.Workers, partitions Sweeper, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewPartitionSweeper(partitions, cfg.PartitionSweepInterval, logger),
		},
	}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
