// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-sif-keeper/internal/logger"
	"github.com/MKhiriev/go-sif-keeper/internal/policy"
	"github.com/MKhiriev/go-sif-keeper/models"
)

// EditState is the state of an [EditSession].
type EditState int

const (
	// EditIdle means no field is being edited.
	EditIdle EditState = iota
	// EditEditing means a field is open with a (possibly empty) draft.
	EditEditing
	// EditReverting means a cancel is restoring the original ciphertext.
	EditReverting
)

func (s EditState) String() string {
	switch s {
	case EditIdle:
		return "idle"
	case EditEditing:
		return "editing"
	case EditReverting:
		return "reverting"
	default:
		return "unknown"
	}
}

// EditSession is the staged-edit state machine of one item. At most one
// field of the item is open at a time.
//
// The session mutex is never held across a collaborator call. An epoch
// counter lets Cancel win over a Begin that is still decrypting; a Cancel
// that arrives during a Commit waits for the commit's outcome instead.
type EditSession struct {
	rt        *itemRuntime
	cache     *SecureFieldCache
	writer    *ReEncryptionWriter
	source    ItemSource
	persister ItemPersister
	clock     Clock
	onEnd     func()
	logger    *logger.Logger

	mu          sync.Mutex
	state       EditState
	field       models.FieldName
	opening     bool
	committing  bool
	commitDone  chan struct{}
	original    models.Ciphertext
	hasOriginal bool
	draft       *string
	baseVersion int64
	epoch       uint64
}

func newEditSession(rt *itemRuntime, writer *ReEncryptionWriter, source ItemSource, persister ItemPersister, clock Clock, onEnd func(), log *logger.Logger) *EditSession {
	if clock == nil {
		clock = SystemClock()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &EditSession{
		rt:        rt,
		cache:     rt.cache,
		writer:    writer,
		source:    source,
		persister: persister,
		clock:     clock,
		onEnd:     onEnd,
		logger:    log,
	}
}

// Begin opens field for editing and returns its current cleartext.
//
// Opening always decrypts first; if decryption fails the session stays
// Idle and the error is returned. The item's ciphertext of field is
// snapshotted at the moment the session enters Editing.
func (s *EditSession) Begin(ctx context.Context, field models.FieldName) (string, error) {
	s.mu.Lock()
	if s.state == EditEditing && s.field == field && !s.committing {
		if s.draft != nil {
			v := *s.draft
			s.mu.Unlock()
			return v, nil
		}
		s.mu.Unlock()
		if v, ok := s.cache.Peek(field); ok {
			return v, nil
		}
		return s.cache.GetOrDecrypt(ctx, field)
	}
	if s.state != EditIdle || s.opening {
		s.mu.Unlock()
		return "", ErrEditInProgress
	}

	s.epoch++
	epoch := s.epoch
	s.opening = true
	s.field = field
	s.mu.Unlock()

	value, err := s.cache.GetOrDecrypt(ctx, field)

	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		return "", ErrEditCancelled
	}
	s.opening = false
	if err != nil {
		s.field = ""
		s.mu.Unlock()
		s.ended()
		return "", err
	}

	item := s.rt.snapshot()
	s.original, s.hasOriginal = item.EncryptedFields[field]
	s.baseVersion = item.Version
	s.draft = nil
	s.state = EditEditing
	s.mu.Unlock()
	return value, nil
}

// Stage records plaintext as the draft and schedules its re-encryption
// into the in-memory item. Nothing is persisted.
func (s *EditSession) Stage(ctx context.Context, plaintext string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != EditEditing {
		return ErrNotEditing
	}
	if s.committing {
		return ErrEditInProgress
	}

	p := plaintext
	s.draft = &p
	// Holding s.mu orders this update before any concurrent Cancel's discard.
	return s.writer.Update(ctx, s.rt.id(), s.field, plaintext)
}

// Cancel discards the draft, restores the field's pre-edit ciphertext and
// invalidates its cache entry. It always succeeds: when no local snapshot
// exists the persisted item is consulted, and a field that did not exist
// before the edit is removed. Cancelling an edit whose opening decryption
// is still in flight makes that decryption's result irrelevant. A commit
// in flight is waited for: if it persisted there is nothing left to cancel.
func (s *EditSession) Cancel(ctx context.Context) {
	s.mu.Lock()
	for s.committing {
		done := s.commitDone
		s.mu.Unlock()
		<-done
		s.mu.Lock()
	}
	switch {
	case s.state == EditIdle && s.opening:
		s.epoch++
		s.opening = false
		field := s.field
		s.field = ""
		s.mu.Unlock()

		s.cache.Invalidate(field)
		s.ended()
		return
	case s.state != EditEditing:
		s.mu.Unlock()
		return
	}

	s.epoch++
	s.state = EditReverting
	field := s.field
	original, hasOriginal := s.original, s.hasOriginal
	s.mu.Unlock()

	id := s.rt.id()
	s.writer.Discard(id, field)

	if !hasOriginal {
		original, hasOriginal = s.originalFromSource(ctx, id, field)
	}
	if hasOriginal {
		s.rt.setCiphertext(field, original)
	} else {
		s.rt.deleteCiphertext(field)
	}
	s.cache.Invalidate(field)

	s.mu.Lock()
	s.reset()
	s.mu.Unlock()

	s.ended()
}

func (s *EditSession) originalFromSource(ctx context.Context, id models.ItemID, field models.FieldName) (models.Ciphertext, bool) {
	if s.source == nil {
		return "", false
	}

	item, err := s.source.GetOriginalItem(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "EditSession.Cancel").
			Str("item", id.String()).Str("field", string(field)).
			Msg("original item unavailable, dropping field added during edit")
		return "", false
	}
	ct, ok := item.EncryptedFields[field]
	return ct, ok
}

// Commit hands the staged value to the persistence collaborator exactly
// once. The pending re-encryption is flushed first so the persisted
// ciphertext matches the draft; without a draft the current ciphertext is
// persisted. On failure the session stays Editing with its draft.
func (s *EditSession) Commit(ctx context.Context) error {
	s.mu.Lock()
	if s.state != EditEditing {
		s.mu.Unlock()
		return ErrNotEditing
	}
	if s.committing {
		s.mu.Unlock()
		return ErrEditInProgress
	}
	s.committing = true
	done := make(chan struct{})
	s.commitDone = done
	field := s.field
	draft := s.draft
	base := s.baseVersion
	s.mu.Unlock()

	id := s.rt.id()
	err := s.persist(ctx, id, field, base)

	s.mu.Lock()
	s.committing = false
	s.commitDone = nil
	if err != nil {
		s.mu.Unlock()
		close(done)
		logger.FromContext(ctx).Err(err).Str("func", "EditSession.Commit").
			Str("item", id.String()).Str("field", string(field)).Msg("commit failed, draft kept")
		return err
	}
	s.reset()
	s.mu.Unlock()

	s.rt.committed(s.clock.Now())
	if draft != nil && policy.Cacheable(s.rt.snapshot().SecurityTier) {
		s.cache.Seed(field, *draft)
	}
	close(done)
	s.ended()
	return nil
}

func (s *EditSession) persist(ctx context.Context, id models.ItemID, field models.FieldName, base int64) error {
	if err := s.writer.Flush(ctx, id, field); err != nil {
		return err
	}

	fields := make(map[models.FieldName]models.Ciphertext, 1)
	if ct, ok := s.rt.ciphertext(field); ok {
		fields[field] = ct
	}

	update := models.FieldUpdate{ID: id, BaseVersion: base, Fields: fields}
	if err := s.persister.Persist(ctx, update); err != nil {
		return mapPersistError(err)
	}
	return nil
}

// reset returns the session to Idle. Callers hold s.mu.
func (s *EditSession) reset() {
	s.state = EditIdle
	s.field = ""
	s.opening = false
	s.committing = false
	s.commitDone = nil
	s.original = ""
	s.hasOriginal = false
	s.draft = nil
	s.baseVersion = 0
}

func (s *EditSession) ended() {
	if s.onEnd != nil {
		s.onEnd()
	}
}

// State returns the session state and the open field.
func (s *EditSession) State() (EditState, models.FieldName) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.field
}

// Active reports whether a field is open or being opened.
func (s *EditSession) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != EditIdle || s.opening
}

// Draft returns the staged value of field, if field is open and staged.
func (s *EditSession) Draft(field models.FieldName) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != EditEditing || s.field != field || s.draft == nil {
		return "", false
	}
	return *s.draft, true
}

// Original returns the ciphertext snapshot taken when the edit began.
func (s *EditSession) Original() (models.Ciphertext, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.original, s.hasOriginal
}
