// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
)

// mockWorker is a test implementation of the Worker interface
// that counts Start and Stop calls.
type mockWorker struct {
	ctx   context.Context
	start int
	stop  int
}

func (m *mockWorker) Start(ctx context.Context) {
	m.start++
	m.ctx = ctx
}

func (m *mockWorker) Stop() {
	m.stop++
}

func TestWorkers_Start_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ctx := context.Background()
	ws := NewWorkers(w1, w2, w3)
	ws.Start(ctx)

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.start != 1 {
			t.Errorf("worker[%d]: expected start=1, got %d", i, w.start)
		}
		if w.ctx != ctx {
			t.Errorf("worker[%d]: context was not passed through", i)
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_SkipsNilWorkers(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(nil, w, nil)

	ws.Start(context.Background())
	ws.Stop()

	if w.start != 1 || w.stop != 1 {
		t.Errorf("expected start=1 stop=1, got start=%d stop=%d", w.start, w.stop)
	}
}

func TestWorkers_StopReverseOrder(t *testing.T) {
	order := []int{}

	newOrderWorker := func(id int) Worker {
		return &orderWorker{id: id, order: &order}
	}

	ws := NewWorkers(newOrderWorker(1), newOrderWorker(2), newOrderWorker(3))
	ws.Start(context.Background())
	ws.Stop()

	expected := []int{1, 2, 3, -3, -2, -1}
	if len(order) != len(expected) {
		t.Fatalf("expected %d calls, got %d", len(expected), len(order))
	}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("order[%d]: expected %d, got %d", i, v, order[i])
		}
	}
}

// orderWorker appends its id on Start and the negated id on Stop.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Start(context.Context) {
	*o.order = append(*o.order, o.id)
}

func (o *orderWorker) Stop() {
	*o.order = append(*o.order, -o.id)
}
