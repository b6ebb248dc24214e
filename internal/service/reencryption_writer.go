// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-sif-keeper/internal/logger"
	"github.com/MKhiriev/go-sif-keeper/internal/metrics"
	"github.com/MKhiriev/go-sif-keeper/models"
)

// DefaultDebounceDelay coalesces keystrokes typed in quick succession.
const DefaultDebounceDelay = 40 * time.Millisecond

// CiphertextSink is the in-memory item store the writer updates.
type CiphertextSink interface {
	// SnapshotItem returns a copy of the item to hand to the encrypter.
	SnapshotItem(id models.ItemID) (models.Item, bool)
	// SwapCiphertext replaces one encrypted field of the in-memory item.
	SwapCiphertext(id models.ItemID, field models.FieldName, ct models.Ciphertext) bool
}

type writeKey struct {
	id    models.ItemID
	field models.FieldName
}

// fieldWrite is the debounce state of one (item, field) pair.
//
// latest is the generation of the most recent Update; applied is the
// generation whose ciphertext is currently in the item. A write may only be
// applied while its generation is still latest. Generations come from the
// writer-wide sequence so a pruned and recreated entry never reuses one.
type fieldWrite struct {
	latest    uint64
	applied   uint64
	plaintext string
	timer     *time.Timer

	running uint64
	done    chan struct{}

	err    error
	errGen uint64
}

// ReEncryptionWriter turns staged plaintext into ciphertext in the
// in-memory item, debounced per field and last-write-wins. It never
// touches persistent storage.
type ReEncryptionWriter struct {
	encrypter FieldEncrypter
	sink      CiphertextSink
	delay     time.Duration
	metrics   *metrics.SIFMetrics
	logger    *logger.Logger

	mu     sync.Mutex
	seq    uint64
	writes map[writeKey]*fieldWrite
	closed bool
}

// NewReEncryptionWriter creates a writer with the given debounce delay;
// non-positive delays fall back to [DefaultDebounceDelay].
func NewReEncryptionWriter(encrypter FieldEncrypter, sink CiphertextSink, delay time.Duration, m *metrics.SIFMetrics, log *logger.Logger) *ReEncryptionWriter {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ReEncryptionWriter{
		encrypter: encrypter,
		sink:      sink,
		delay:     delay,
		metrics:   m,
		logger:    log,
		writes:    make(map[writeKey]*fieldWrite),
	}
}

// Update schedules plaintext to be encrypted into field after the debounce
// delay. A newer Update for the same field supersedes this one even if its
// encryption is already running.
func (w *ReEncryptionWriter) Update(ctx context.Context, id models.ItemID, field models.FieldName, plaintext string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWriterClosed
	}

	key := writeKey{id: id, field: field}
	st, ok := w.writes[key]
	if !ok {
		st = &fieldWrite{}
		w.writes[key] = st
	}

	w.seq++
	st.latest = w.seq
	st.plaintext = plaintext
	if st.timer != nil {
		st.timer.Stop()
	}

	gen := st.latest
	bg := context.WithoutCancel(ctx)
	st.timer = time.AfterFunc(w.delay, func() {
		if err := w.run(bg, key, gen); err != nil {
			w.logger.Err(err).Str("func", "ReEncryptionWriter.Update").
				Str("item", id.String()).Str("field", string(field)).Msg("debounced re-encryption failed")
		}
	})
	return nil
}

// run encrypts the plaintext of generation gen and applies it if gen is
// still the latest when encryption resolves.
func (w *ReEncryptionWriter) run(ctx context.Context, key writeKey, gen uint64) error {
	w.mu.Lock()
	st, ok := w.writes[key]
	if !ok || st.latest != gen || st.applied >= gen {
		w.mu.Unlock()
		return nil
	}
	if st.running == gen {
		done := st.done
		w.mu.Unlock()
		<-done
		return w.result(key, gen)
	}

	st.running = gen
	st.done = make(chan struct{})
	done := st.done
	plaintext := st.plaintext
	w.mu.Unlock()

	var (
		ct  models.Ciphertext
		err error
	)
	item, found := w.sink.SnapshotItem(key.id)
	if !found {
		err = ErrItemNotLoaded
	} else {
		ct, err = w.encrypter.Encrypt(ctx, item, key.field, plaintext)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if st.running == gen {
		st.running = 0
	}
	close(done)

	if st.latest != gen {
		w.metrics.Write(metrics.ResultStale)
		return nil
	}
	if err != nil {
		st.err = mapEncryptError(err)
		st.errGen = gen
		w.metrics.Write(metrics.ResultError)
		return st.err
	}

	w.sink.SwapCiphertext(key.id, key.field, ct)
	st.applied = gen
	st.err = nil
	w.metrics.Write(metrics.ResultApplied)
	// Nothing newer is pending; waiters read the missing entry as applied.
	if w.writes[key] == st {
		delete(w.writes, key)
	}
	return nil
}

func (w *ReEncryptionWriter) result(key writeKey, gen uint64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	st, ok := w.writes[key]
	if !ok || st.applied >= gen || st.latest != gen {
		return nil
	}
	if st.errGen == gen {
		return st.err
	}
	return nil
}

// Flush applies the latest pending write of field now, waiting for an
// in-flight encryption of that write if there is one. A previously failed
// write is retried.
func (w *ReEncryptionWriter) Flush(ctx context.Context, id models.ItemID, field models.FieldName) error {
	key := writeKey{id: id, field: field}

	w.mu.Lock()
	st, ok := w.writes[key]
	if !ok || st.applied >= st.latest {
		w.mu.Unlock()
		return nil
	}
	if st.timer != nil {
		st.timer.Stop()
		st.timer = nil
	}
	gen := st.latest
	w.mu.Unlock()

	return w.run(ctx, key, gen)
}

// Pending reports whether field has a write that is not applied yet.
func (w *ReEncryptionWriter) Pending(id models.ItemID, field models.FieldName) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	st, ok := w.writes[writeKey{id: id, field: field}]
	return ok && st.applied < st.latest
}

// Discard drops any pending or in-flight write of field.
func (w *ReEncryptionWriter) Discard(id models.ItemID, field models.FieldName) {
	w.mu.Lock()
	defer w.mu.Unlock()

	key := writeKey{id: id, field: field}
	st, ok := w.writes[key]
	if !ok {
		return
	}
	if st.timer != nil {
		st.timer.Stop()
	}
	delete(w.writes, key)
	// A running write still holds st; moving latest forward makes it stale.
	w.seq++
	st.latest = w.seq
}

// DiscardItem drops pending writes of every field of id.
func (w *ReEncryptionWriter) DiscardItem(id models.ItemID) {
	w.mu.Lock()
	var fields []models.FieldName
	for key := range w.writes {
		if key.id == id {
			fields = append(fields, key.field)
		}
	}
	w.mu.Unlock()

	for _, f := range fields {
		w.Discard(id, f)
	}
}

// FlushAll applies every pending write. It returns the first error.
func (w *ReEncryptionWriter) FlushAll(ctx context.Context) error {
	w.mu.Lock()
	keys := make([]writeKey, 0, len(w.writes))
	for key, st := range w.writes {
		if st.applied < st.latest {
			keys = append(keys, key)
		}
	}
	w.mu.Unlock()

	var first error
	for _, key := range keys {
		if err := w.Flush(ctx, key.id, key.field); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Close flushes all pending writes synchronously and rejects later
// updates, so edits made right before teardown are not lost.
func (w *ReEncryptionWriter) Close(ctx context.Context) error {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()

	return w.FlushAll(ctx)
}
