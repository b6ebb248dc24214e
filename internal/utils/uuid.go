package utils

import "github.com/google/uuid"

// IDGenerator issues identifiers for new vault items.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator issues UUIDv7 strings. They sort by creation time, so
// items created on one device list in creation order.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate falls back to a random v4 UUID when the v7 clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
