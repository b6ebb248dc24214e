package policy

import (
	"testing"

	"github.com/MKhiriev/go-sif-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestFieldAvailability(t *testing.T) {
	tests := []struct {
		name         string
		tier         models.SecurityTier
		sifAvailable bool
		want         Availability
	}{
		{"secret without sif", models.Secret, false, Available},
		{"secret with sif", models.Secret, true, Available},
		{"highly secret fetched", models.HighlySecret, true, Available},
		{"highly secret not fetched", models.HighlySecret, false, RequiresFetch},
		{"top secret with grant", models.TopSecret, true, Available},
		{"top secret without grant", models.TopSecret, false, RequiresFetch},
		{"unknown tier", models.SecurityTier(0), true, Unavailable},
		{"out of range tier", models.SecurityTier(42), false, Unavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FieldAvailability(tt.tier, tt.sifAvailable))
		})
	}
}

func TestCacheable(t *testing.T) {
	assert.True(t, Cacheable(models.Secret))
	assert.True(t, Cacheable(models.HighlySecret))
	assert.False(t, Cacheable(models.TopSecret))
	assert.False(t, Cacheable(models.SecurityTier(0)))
}

func TestTierFlags(t *testing.T) {
	assert.False(t, NeedsFetch(models.Secret))
	assert.True(t, NeedsFetch(models.HighlySecret))
	assert.True(t, NeedsFetch(models.TopSecret))

	assert.True(t, Expires(models.HighlySecret))
	assert.False(t, Expires(models.TopSecret))
	assert.False(t, Expires(models.Secret))

	assert.True(t, ConsumesAccess(models.TopSecret))
	assert.False(t, ConsumesAccess(models.HighlySecret))
}

func TestResetBudget(t *testing.T) {
	u := func(v uint32) *uint32 { return &v }

	assert.Equal(t, uint32(3), ResetBudget(u(3), u(10), 7))
	assert.Equal(t, uint32(10), ResetBudget(nil, u(10), 7))
	assert.Equal(t, uint32(10), ResetBudget(u(0), u(10), 7))
	assert.Equal(t, uint32(7), ResetBudget(nil, nil, 7))
	assert.Equal(t, DefaultResetMinutes, ResetBudget(nil, u(0), 0))
}
