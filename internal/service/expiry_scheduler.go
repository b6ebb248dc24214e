// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-sif-keeper/internal/metrics"
	"github.com/MKhiriev/go-sif-keeper/models"
)

// Clock abstracts the time source so expiry can run on virtual time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }

// ExpiryTimer is the countdown of one fetched item.
type ExpiryTimer struct {
	ItemID        models.ItemID
	ScheduledAt   time.Time
	BudgetMinutes uint32
}

func (t ExpiryTimer) budget() time.Duration {
	return time.Duration(t.BudgetMinutes) * time.Minute
}

// ExpiryScheduler tracks at most one expiry timer per item. It does not
// own a goroutine: an external source calls Tick, and every timer whose
// deadline has passed fires exactly once.
type ExpiryScheduler struct {
	clock    Clock
	onExpire func(models.ItemID)
	metrics  *metrics.SIFMetrics

	mu     sync.Mutex
	timers map[models.ItemID]ExpiryTimer
}

// NewExpiryScheduler creates a scheduler calling onExpire for every fired
// timer. onExpire runs outside the scheduler's lock.
func NewExpiryScheduler(clock Clock, onExpire func(models.ItemID), m *metrics.SIFMetrics) *ExpiryScheduler {
	if clock == nil {
		clock = SystemClock()
	}
	return &ExpiryScheduler{
		clock:    clock,
		onExpire: onExpire,
		metrics:  m,
		timers:   make(map[models.ItemID]ExpiryTimer),
	}
}

// Arm starts the countdown for id. An existing timer for id is replaced,
// so re-arming resets the countdown instead of stacking a second expiry.
func (s *ExpiryScheduler) Arm(id models.ItemID, budgetMinutes uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.timers[id] = ExpiryTimer{
		ItemID:        id,
		ScheduledAt:   s.clock.Now().Add(time.Duration(budgetMinutes) * time.Minute),
		BudgetMinutes: budgetMinutes,
	}
	s.metrics.ArmedTimers(len(s.timers))
}

// Disarm cancels the pending expiry of id and reports whether one existed.
func (s *ExpiryScheduler) Disarm(id models.ItemID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.timers[id]
	delete(s.timers, id)
	s.metrics.ArmedTimers(len(s.timers))
	return ok
}

// DisarmAll cancels every pending expiry.
func (s *ExpiryScheduler) DisarmAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.timers)
	s.metrics.ArmedTimers(0)
}

// Tick fires every timer whose deadline is not after now and returns the
// ids of the fired items in deadline order. Fired timers are removed, so a
// repeated Tick has no further effect for them.
func (s *ExpiryScheduler) Tick() []models.ItemID {
	now := s.clock.Now()

	s.mu.Lock()
	var due []ExpiryTimer
	for id, t := range s.timers {
		if !t.ScheduledAt.After(now) {
			due = append(due, t)
			delete(s.timers, id)
		}
	}
	s.metrics.ArmedTimers(len(s.timers))
	s.mu.Unlock()

	sort.Slice(due, func(i, j int) bool { return due[i].ScheduledAt.Before(due[j].ScheduledAt) })

	fired := make([]models.ItemID, 0, len(due))
	for _, t := range due {
		s.metrics.Expired()
		if s.onExpire != nil {
			s.onExpire(t.ItemID)
		}
		fired = append(fired, t.ItemID)
	}
	return fired
}

// Timer returns the armed timer of id.
func (s *ExpiryScheduler) Timer(id models.ItemID) (ExpiryTimer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.timers[id]
	return t, ok
}

// Progress returns the elapsed share of the budget of id's timer in
// [0, 1], or false when no timer is armed. It is a pure read.
func (s *ExpiryScheduler) Progress(id models.ItemID) (float64, bool) {
	s.mu.Lock()
	t, ok := s.timers[id]
	s.mu.Unlock()
	if !ok {
		return 0, false
	}

	budget := t.budget()
	if budget <= 0 {
		return 1, true
	}

	started := t.ScheduledAt.Add(-budget)
	p := float64(s.clock.Now().Sub(started)) / float64(budget)
	switch {
	case p < 0:
		p = 0
	case p > 1:
		p = 1
	}
	return p, true
}

// Len returns the number of armed timers.
func (s *ExpiryScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
