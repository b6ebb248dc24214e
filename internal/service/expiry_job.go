// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-sif-keeper/internal/logger"
	"github.com/MKhiriev/go-sif-keeper/models"
)

// DefaultExpiryTickInterval is used when the configured interval is not positive.
const DefaultExpiryTickInterval = time.Second

// ExpiryTicker is anything that fires due expiry timers on Tick.
type ExpiryTicker interface {
	Tick() []models.ItemID
}

// ExpiryJob is the external timer source of an [ExpiryScheduler]: it calls
// Tick on a ticker until stopped.
type ExpiryJob struct {
	target   ExpiryTicker
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewExpiryJob creates an idle job. It does nothing until Start is called.
func NewExpiryJob(target ExpiryTicker, interval time.Duration, log *logger.Logger) *ExpiryJob {
	if interval <= 0 {
		interval = DefaultExpiryTickInterval
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ExpiryJob{target: target, interval: interval, logger: log}
}

// Start stops any previously running loop, then launches a goroutine that
// calls Tick every interval. The goroutine exits when ctx is cancelled or
// Stop is called.
func (j *ExpiryJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				for _, id := range j.target.Tick() {
					j.logger.Debug().Str("item", id.String()).Msg("secure field access expired")
				}
			}
		}
	}()
}

// Stop cancels the loop and blocks until it has exited. Safe to call when
// the job is not running.
func (j *ExpiryJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
