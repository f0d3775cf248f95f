// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/fpgrowth/internal/logging"
)

// PeriodicService calls a task every interval until its context is
// canceled. The first call happens after one interval.
//
// A task error ends Serve with that error so the supervisor can apply its
// restart backoff. Use NewPeriodicService for tasks where errors are
// recoverable and should only be logged.
type PeriodicService struct {
	name     string
	interval time.Duration
	task     func() error
	fatal    bool
}

// NewPeriodicService creates a service that logs task errors and keeps
// ticking. A non-positive interval becomes one minute.
func NewPeriodicService(name string, interval time.Duration, task func() error) *PeriodicService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &PeriodicService{name: name, interval: interval, task: task}
}

// FailFast makes task errors end Serve instead of being logged.
func (p *PeriodicService) FailFast() *PeriodicService {
	p.fatal = true
	return p
}

// Serve implements suture.Service.
func (p *PeriodicService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	logging.Debug().Str("service", p.name).Dur("interval", p.interval).Msg("Periodic service started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := p.task(); err != nil {
				if p.fatal {
					return fmt.Errorf("%s: %w", p.name, err)
				}
				logging.Warn().Err(err).Str("service", p.name).Msg("Periodic task failed")
			}
		}
	}
}

// String implements fmt.Stringer.
func (p *PeriodicService) String() string {
	return p.name
}
