// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-sif-keeper/internal/config"
	"github.com/MKhiriev/go-sif-keeper/internal/logger"
	"github.com/MKhiriev/go-sif-keeper/internal/metrics"
	"github.com/MKhiriev/go-sif-keeper/internal/policy"
	"github.com/MKhiriev/go-sif-keeper/models"
)

// DefaultFetchTimeout bounds a companion fetch when neither the caller nor
// the config sets a timeout.
const DefaultFetchTimeout = 30 * time.Second

// DefaultMask is shown for available fields that are not revealed.
const DefaultMask = "••••••••"

// Collaborators are the external capabilities the manager drives.
// KeyRing and Source are optional.
type Collaborators struct {
	Decrypter FieldDecrypter
	Encrypter FieldEncrypter
	Fetcher   CompanionFetcher
	Source    ItemSource
	Persister ItemPersister
	KeyRing   KeyRing
	Clock     Clock
	Metrics   *metrics.SIFMetrics
}

// FieldManager owns the lifecycle of every loaded item's secure fields:
// the decrypted field cache, the staged edit session, debounced
// re-encryption, companion fetches and HighlySecret expiry.
type FieldManager struct {
	cfg       config.ClientSIF
	decrypter FieldDecrypter
	fetcher   CompanionFetcher
	source    ItemSource
	persister ItemPersister
	keyring   KeyRing
	clock     Clock
	metrics   *metrics.SIFMetrics
	logger    *logger.Logger

	writer    *ReEncryptionWriter
	scheduler *ExpiryScheduler

	mu    sync.RWMutex
	items map[models.ItemID]*itemRuntime
}

// NewFieldManager wires a manager around the given collaborators.
func NewFieldManager(cfg config.ClientSIF, deps Collaborators, log *logger.Logger) *FieldManager {
	if log == nil {
		log = logger.Nop()
	}
	if deps.Clock == nil {
		deps.Clock = SystemClock()
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultFetchTimeout
	}
	if cfg.DefaultResetMinutes == 0 {
		cfg.DefaultResetMinutes = policy.DefaultResetMinutes
	}

	m := &FieldManager{
		cfg:       cfg,
		decrypter: deps.Decrypter,
		fetcher:   deps.Fetcher,
		source:    deps.Source,
		persister: deps.Persister,
		keyring:   deps.KeyRing,
		clock:     deps.Clock,
		metrics:   deps.Metrics,
		logger:    log,
		items:     make(map[models.ItemID]*itemRuntime),
	}
	m.writer = NewReEncryptionWriter(deps.Encrypter, m, cfg.DebounceDelay, deps.Metrics, log)
	m.scheduler = NewExpiryScheduler(deps.Clock, m.expire, deps.Metrics)
	return m
}

// Load registers an item or refreshes an already loaded one. A refresh
// drops cached cleartext but keeps a granted availability and its timer.
// Refreshing an item with an open edit fails with [ErrEditInProgress].
func (m *FieldManager) Load(item models.Item) error {
	if item.ID.IsZero() {
		return ErrInvalidItem
	}

	m.mu.Lock()
	rt, ok := m.items[item.ID]
	if !ok {
		m.items[item.ID] = m.newRuntime(item)
		m.mu.Unlock()
		return nil
	}
	m.mu.Unlock()

	if rt.session.Active() {
		return ErrEditInProgress
	}
	rt.replace(item)
	rt.cache.InvalidateAll()
	return nil
}

func (m *FieldManager) newRuntime(item models.Item) *itemRuntime {
	rt := newItemRuntime(item)
	id := rt.item.ID
	log := m.logger.WithItem(id.String())

	rt.cache = newSecureFieldCache(rt, m.decrypter, m.metrics, log)
	rt.cache.onConsumed = func() { m.accessConsumed(rt) }
	rt.session = newEditSession(rt, m.writer, m.source, m.persister, m.clock, func() { m.editEnded(rt) }, log)
	return rt
}

// accessConsumed releases a TopSecret key once its single access is used,
// unless an edit holds it for re-encryption.
func (m *FieldManager) accessConsumed(rt *itemRuntime) {
	if rt.session.Active() {
		return
	}
	m.forgetKey(rt.id())
}

func (m *FieldManager) editEnded(rt *itemRuntime) {
	item := rt.snapshot()
	if policy.ConsumesAccess(item.SecurityTier) && !item.SIFAvailable {
		m.forgetKey(item.ID)
	}
}

func (m *FieldManager) forgetKey(id models.ItemID) {
	if m.keyring != nil {
		m.keyring.Forget(id)
	}
}

func (m *FieldManager) runtime(id models.ItemID) (*itemRuntime, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rt, ok := m.items[id]
	return rt, ok
}

// Item returns a copy of a loaded item.
func (m *FieldManager) Item(id models.ItemID) (models.Item, bool) {
	rt, ok := m.runtime(id)
	if !ok {
		return models.Item{}, false
	}
	return rt.snapshot(), true
}

// Items returns copies of all loaded items ordered by name.
func (m *FieldManager) Items() []models.Item {
	m.mu.RLock()
	out := make([]models.Item, 0, len(m.items))
	for _, rt := range m.items {
		out = append(out, rt.snapshot())
	}
	m.mu.RUnlock()

	slices.SortFunc(out, func(a, b models.Item) int {
		return cmp.Or(
			cmp.Compare(a.Content.Name, b.Content.Name),
			cmp.Compare(a.ID.String(), b.ID.String()),
		)
	})
	return out
}

// Remove unloads an item, cancelling its edit and dropping every trace of
// its cleartext and key.
func (m *FieldManager) Remove(ctx context.Context, id models.ItemID) bool {
	rt, ok := m.runtime(id)
	if !ok {
		return false
	}

	rt.session.Cancel(ctx)
	m.scheduler.Disarm(id)
	m.writer.DiscardItem(id)
	rt.cache.InvalidateAll()
	m.forgetKey(id)

	m.mu.Lock()
	delete(m.items, id)
	m.mu.Unlock()
	return true
}

// SnapshotItem implements [CiphertextSink].
func (m *FieldManager) SnapshotItem(id models.ItemID) (models.Item, bool) {
	return m.Item(id)
}

// SwapCiphertext implements [CiphertextSink].
func (m *FieldManager) SwapCiphertext(id models.ItemID, field models.FieldName, ct models.Ciphertext) bool {
	rt, ok := m.runtime(id)
	if !ok {
		return false
	}
	rt.setCiphertext(field, ct)
	return true
}

// DisplayValue returns what the view should render for a field.
//
// Fields that need a fetch are Hidden, even with a draft. A staged draft
// wins over the cache. Without reveal the field is Masked, or shows the
// last decryption error; with reveal it is decrypted on demand.
func (m *FieldManager) DisplayValue(ctx context.Context, id models.ItemID, field models.FieldName, reveal bool) models.DisplayState {
	rt, ok := m.runtime(id)
	if !ok {
		return models.Hidden()
	}

	item := rt.snapshot()
	if !item.HasField(field) {
		return models.Hidden()
	}
	if policy.FieldAvailability(item.SecurityTier, item.SIFAvailable) != policy.Available {
		return models.Hidden()
	}

	mask := maskFor(item, field)
	if draft, ok := rt.session.Draft(field); ok {
		if reveal {
			return models.Plain(draft)
		}
		return models.Masked(mask)
	}

	if !reveal {
		var de *DecryptError
		if errors.As(rt.cache.LastError(field), &de) {
			return models.DisplayErr(de.Kind)
		}
		return models.Masked(mask)
	}

	v, err := rt.cache.GetOrDecrypt(ctx, field)
	if err != nil {
		var de *DecryptError
		if errors.As(err, &de) && de.Kind != models.DecryptNotFetched {
			return models.DisplayErr(de.Kind)
		}
		return models.Hidden()
	}
	return models.Plain(v)
}

func maskFor(item models.Item, field models.FieldName) string {
	if field == models.FieldCardNumber && item.Content.CardMask != "" {
		return item.Content.CardMask
	}
	return DefaultMask
}

// GetOrDecrypt returns the cleartext of a field, decrypting it if needed.
func (m *FieldManager) GetOrDecrypt(ctx context.Context, id models.ItemID, field models.FieldName) (string, error) {
	rt, err := m.fieldRuntime(id, field)
	if err != nil {
		return "", err
	}
	return rt.cache.GetOrDecrypt(ctx, field)
}

func (m *FieldManager) fieldRuntime(id models.ItemID, field models.FieldName) (*itemRuntime, error) {
	rt, ok := m.runtime(id)
	if !ok {
		return nil, ErrItemNotLoaded
	}
	if !rt.snapshot().HasField(field) {
		return nil, ErrFieldNotSupported
	}
	return rt, nil
}

// BeginEdit opens a field for editing and returns its cleartext.
func (m *FieldManager) BeginEdit(ctx context.Context, id models.ItemID, field models.FieldName) (string, error) {
	rt, err := m.fieldRuntime(id, field)
	if err != nil {
		return "", err
	}
	return rt.session.Begin(ctx, field)
}

// Stage records a draft for the item's open field.
func (m *FieldManager) Stage(ctx context.Context, id models.ItemID, plaintext string) error {
	rt, ok := m.runtime(id)
	if !ok {
		return ErrItemNotLoaded
	}
	return rt.session.Stage(ctx, plaintext)
}

// CancelEdit reverts the item's open field. Cancelling an item without an
// open edit is a no-op.
func (m *FieldManager) CancelEdit(ctx context.Context, id models.ItemID) error {
	rt, ok := m.runtime(id)
	if !ok {
		return ErrItemNotLoaded
	}
	rt.session.Cancel(ctx)
	return nil
}

// CommitEdit persists the item's open field.
func (m *FieldManager) CommitEdit(ctx context.Context, id models.ItemID) error {
	rt, ok := m.runtime(id)
	if !ok {
		return ErrItemNotLoaded
	}
	return rt.session.Commit(ctx)
}

// EditState returns the item's edit state and open field.
func (m *FieldManager) EditState(id models.ItemID) (EditState, models.FieldName) {
	rt, ok := m.runtime(id)
	if !ok {
		return EditIdle, ""
	}
	return rt.session.State()
}

// Fetch asks the companion device to make the item decryptable locally.
//
// A non-positive timeout uses the configured one. The companion is
// abandoned when the deadline passes even if it ignores ctx. On success a
// delivered key is installed, the item becomes available and HighlySecret
// items get an expiry timer. Secret items need no fetch.
func (m *FieldManager) Fetch(ctx context.Context, id models.ItemID, timeout time.Duration) error {
	rt, ok := m.runtime(id)
	if !ok {
		return ErrItemNotLoaded
	}

	item := rt.snapshot()
	if !policy.NeedsFetch(item.SecurityTier) {
		return nil
	}
	if timeout <= 0 {
		timeout = m.cfg.FetchTimeout
	}

	log := logger.FromContext(ctx)

	grant, err := m.fetch(ctx, id, timeout)
	if err != nil {
		var fe *FetchError
		if errors.As(err, &fe) && fe.Kind == models.FetchTimeout {
			m.metrics.Fetch(metrics.ResultTimeout)
		} else {
			m.metrics.Fetch(metrics.ResultError)
		}
		log.Err(err).Str("func", "FieldManager.Fetch").Str("item", id.String()).Msg("companion fetch failed")
		return err
	}

	if _, ok := m.runtime(id); !ok {
		return ErrItemNotLoaded
	}
	if len(grant.ItemKey) > 0 && m.keyring != nil {
		m.keyring.Install(id, grant.ItemKey)
	}
	rt.setSIFAvailable(true)
	if policy.Expires(item.SecurityTier) {
		m.scheduler.Arm(id, policy.ResetBudget(grant.ResetMinutes, item.SIFResetMinutes, m.cfg.DefaultResetMinutes))
	}
	m.metrics.Fetch(metrics.ResultOK)

	log.Debug().Str("func", "FieldManager.Fetch").Str("item", id.String()).
		Str("tier", item.SecurityTier.String()).Msg("item fetched from companion")
	return nil
}

type fetchResult struct {
	grant models.FetchGrant
	err   error
}

func (m *FieldManager) fetch(ctx context.Context, id models.ItemID, timeout time.Duration) (models.FetchGrant, error) {
	fctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ch := make(chan fetchResult, 1)
	go func() {
		grant, err := m.fetcher.Fetch(fctx, id)
		ch <- fetchResult{grant: grant, err: err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			if errors.Is(fctx.Err(), context.DeadlineExceeded) {
				return models.FetchGrant{}, &FetchError{Kind: models.FetchTimeout, Err: r.err}
			}
			return models.FetchGrant{}, mapFetchError(r.err)
		}
		return r.grant, nil
	case <-fctx.Done():
		if errors.Is(fctx.Err(), context.DeadlineExceeded) {
			return models.FetchGrant{}, &FetchError{Kind: models.FetchTimeout, Err: fctx.Err()}
		}
		return models.FetchGrant{}, &FetchError{Kind: models.FetchTransport, Err: fctx.Err()}
	}
}

// expire is the scheduler callback: the item's cleartext and key are
// dropped and it needs a fetch again. An open draft is left alone.
func (m *FieldManager) expire(id models.ItemID) {
	rt, ok := m.runtime(id)
	if !ok {
		return
	}
	rt.cache.InvalidateAll()
	rt.setSIFAvailable(false)
	m.forgetKey(id)

	m.logger.Debug().Str("func", "FieldManager.expire").Str("item", id.String()).Msg("secure fields expired")
}

// ExpiryProgress returns the elapsed fraction of the item's reset budget.
func (m *FieldManager) ExpiryProgress(id models.ItemID) (float64, bool) {
	return m.scheduler.Progress(id)
}

// Tick fires due expiry timers and returns the expired items.
func (m *FieldManager) Tick() []models.ItemID {
	return m.scheduler.Tick()
}

// Lock drops all cleartext, grants, keys and timers and cancels every open
// edit. Items stay loaded.
func (m *FieldManager) Lock(ctx context.Context) {
	m.scheduler.DisarmAll()

	m.mu.RLock()
	runtimes := make([]*itemRuntime, 0, len(m.items))
	for _, rt := range m.items {
		runtimes = append(runtimes, rt)
	}
	m.mu.RUnlock()

	for _, rt := range runtimes {
		rt.session.Cancel(ctx)
		rt.cache.InvalidateAll()
		rt.setSIFAvailable(false)
	}
	if m.keyring != nil {
		m.keyring.ForgetAll()
	}

	logger.FromContext(ctx).Info().Str("func", "FieldManager.Lock").Int("items", len(runtimes)).Msg("vault locked")
}

// Close flushes pending re-encryptions. Further edits are rejected.
func (m *FieldManager) Close(ctx context.Context) error {
	return m.writer.Close(ctx)
}
