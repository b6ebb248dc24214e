// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/awnumar/memguard"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-sif-keeper/internal/logger"
	"github.com/MKhiriev/go-sif-keeper/internal/metrics"
	"github.com/MKhiriev/go-sif-keeper/internal/policy"
	"github.com/MKhiriev/go-sif-keeper/models"
)

// fieldOwner is the item side of a cache: it provides consistent item
// snapshots and consumes one-shot access grants.
type fieldOwner interface {
	snapshot() models.Item
	consumeAccess() bool
}

// secureField is the cache slot of one field.
type secureField struct {
	value      *memguard.Enclave
	present    bool
	decrypting bool
	lastErr    error
	// gen is bumped by every invalidation; completions of a flight started
	// under an older generation are dropped.
	gen uint64
}

// SecureFieldCache decrypts an item's secure fields on demand and keeps
// the cleartext sealed in memguard enclaves until invalidated.
//
// At most one decryption per field and generation is in flight; concurrent
// readers join it and observe the same result.
type SecureFieldCache struct {
	owner     fieldOwner
	decrypter FieldDecrypter
	group     singleflight.Group

	mu     sync.Mutex
	fields map[models.FieldName]*secureField

	// onConsumed runs after a decryption used up a one-shot access.
	onConsumed func()

	metrics *metrics.SIFMetrics
	logger  *logger.Logger
}

func newSecureFieldCache(owner fieldOwner, decrypter FieldDecrypter, m *metrics.SIFMetrics, log *logger.Logger) *SecureFieldCache {
	if log == nil {
		log = logger.Nop()
	}
	return &SecureFieldCache{
		owner:     owner,
		decrypter: decrypter,
		fields:    make(map[models.FieldName]*secureField),
		metrics:   m,
		logger:    log,
	}
}

// field returns the slot for name, creating it. Callers hold c.mu.
func (c *SecureFieldCache) field(name models.FieldName) *secureField {
	f, ok := c.fields[name]
	if !ok {
		f = &secureField{}
		c.fields[name] = f
	}
	return f
}

// GetOrDecrypt returns the cleartext of field, decrypting it if needed.
//
// A cached value is returned without calling the decrypter. When a
// decryption is already in flight the caller waits for it. When the item's
// tier does not allow local decryption a *DecryptError is returned and the
// decrypter is not called. Failures are recorded as the field's last error
// and do not poison the cache: the next call retries.
func (c *SecureFieldCache) GetOrDecrypt(ctx context.Context, field models.FieldName) (string, error) {
	c.mu.Lock()
	f := c.field(field)
	if f.present {
		v, err := unseal(f.value)
		if err == nil {
			c.mu.Unlock()
			c.metrics.CacheHit()
			return v, nil
		}
		c.logger.Err(err).Str("func", "SecureFieldCache.GetOrDecrypt").
			Str("field", string(field)).Msg("sealed value could not be opened, decrypting again")
		c.dropLocked(f)
	}

	if !f.decrypting {
		if err := availabilityError(c.owner.snapshot()); err != nil {
			c.mu.Unlock()
			return "", err
		}
	}
	gen := f.gen
	c.mu.Unlock()

	// The flight outlives any single caller, so it must not inherit a
	// caller's cancellation.
	flightCtx := context.WithoutCancel(ctx)
	key := fmt.Sprintf("%s#%d", field, gen)
	ch := c.group.DoChan(key, func() (any, error) {
		return c.decrypt(flightCtx, field, gen)
	})

	select {
	case res := <-ch:
		if res.Shared {
			c.metrics.Decrypt(metrics.ResultShared)
		}
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// decrypt is the body of a single flight.
func (c *SecureFieldCache) decrypt(ctx context.Context, field models.FieldName, gen uint64) (any, error) {
	item := c.owner.snapshot()

	c.mu.Lock()
	f := c.field(field)
	if f.gen != gen {
		c.mu.Unlock()
		return nil, ErrDecryptSuperseded
	}
	// An earlier flight of this generation may have finished between the
	// caller's cache check and this one.
	if f.present {
		if v, err := unseal(f.value); err == nil {
			c.mu.Unlock()
			c.metrics.CacheHit()
			return v, nil
		}
		c.dropLocked(f)
		gen = f.gen
	}
	if err := availabilityError(item); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	f.decrypting = true
	c.mu.Unlock()

	value, err := c.decrypter.Decrypt(ctx, item, field)

	c.mu.Lock()
	if f.gen != gen {
		c.mu.Unlock()
		c.metrics.Decrypt(metrics.ResultStale)
		return nil, ErrDecryptSuperseded
	}
	f.decrypting = false

	if err != nil {
		err = mapDecryptError(err)
		f.lastErr = err
		c.mu.Unlock()
		c.metrics.Decrypt(metrics.ResultError)
		logger.FromContext(ctx).Err(err).Str("func", "SecureFieldCache.decrypt").
			Str("item", item.ID.String()).Str("field", string(field)).Msg("field decryption failed")
		return nil, err
	}

	f.lastErr = nil
	if policy.Cacheable(item.SecurityTier) {
		f.value = seal(value)
		f.present = true
	}
	c.mu.Unlock()

	c.metrics.Decrypt(metrics.ResultOK)
	if policy.ConsumesAccess(item.SecurityTier) && c.owner.consumeAccess() && c.onConsumed != nil {
		c.onConsumed()
	}
	return value, nil
}

// Invalidate forgets the cleartext and last error of field. A decryption
// in flight for the field completes without repopulating the cache.
func (c *SecureFieldCache) Invalidate(field models.FieldName) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if f, ok := c.fields[field]; ok {
		c.dropLocked(f)
	}
}

// InvalidateAll invalidates every field of the item.
func (c *SecureFieldCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, f := range c.fields {
		c.dropLocked(f)
	}
}

func (c *SecureFieldCache) dropLocked(f *secureField) {
	f.gen++
	f.value = nil
	f.present = false
	f.decrypting = false
	f.lastErr = nil
}

// Seed stores value as the field's cleartext without decrypting, dropping
// any in-flight decryption. Commit uses it to keep the value the user saw.
func (c *SecureFieldCache) Seed(field models.FieldName, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	f := c.field(field)
	c.dropLocked(f)
	f.value = seal(value)
	f.present = true
}

// Peek returns the cached cleartext without decrypting.
func (c *SecureFieldCache) Peek(field models.FieldName) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, ok := c.fields[field]
	if !ok || !f.present {
		return "", false
	}
	v, err := unseal(f.value)
	if err != nil {
		return "", false
	}
	return v, true
}

// Decrypting reports whether a decryption of field is in flight.
func (c *SecureFieldCache) Decrypting(field models.FieldName) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, ok := c.fields[field]
	return ok && f.decrypting
}

// LastError returns the error of the field's last failed decryption.
func (c *SecureFieldCache) LastError(field models.FieldName) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if f, ok := c.fields[field]; ok {
		return f.lastErr
	}
	return nil
}

// availabilityError converts a non-Available verdict to a *DecryptError.
func availabilityError(item models.Item) error {
	switch policy.FieldAvailability(item.SecurityTier, item.SIFAvailable) {
	case policy.Available:
		return nil
	case policy.RequiresFetch:
		return &DecryptError{Kind: models.DecryptNotFetched}
	default:
		return &DecryptError{Kind: models.DecryptDenied}
	}
}

// seal moves v into an encrypted enclave. memguard refuses empty input,
// so the empty string is represented by a nil enclave.
func seal(v string) *memguard.Enclave {
	if v == "" {
		return nil
	}
	return memguard.NewEnclave([]byte(v))
}

func unseal(e *memguard.Enclave) (string, error) {
	if e == nil {
		return "", nil
	}
	buf, err := e.Open()
	if err != nil {
		return "", err
	}
	defer buf.Destroy()
	return string(buf.Bytes()), nil
}
