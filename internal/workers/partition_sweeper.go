// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tasks-api/internal/logger"
)

// PartitionSweeper periodically drops idle rate limit partitions so the
// limiter's memory stays bounded by the number of recently active clients.
type PartitionSweeper struct {
	sweeper  Sweeper
	interval time.Duration
	logger   *logger.Logger
}

func NewPartitionSweeper(sweeper Sweeper, interval time.Duration, logger *logger.Logger) *PartitionSweeper {
	return &PartitionSweeper{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the sweep loop in a goroutine. The loop exits when ctx is done.
func (s *PartitionSweeper) Run(ctx context.Context) {
	if s.sweeper == nil || s.interval <= 0 {
		s.logger.Warn().Str("func", "PartitionSweeper.Run").Msg("partition sweeper disabled")
		return
	}

	go s.loop(ctx)
}

func (s *PartitionSweeper) loop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("partition sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("partition sweeper stopped")
			return
		case <-ticker.C:
			s.sweeper.Sweep()
		}
	}
}
