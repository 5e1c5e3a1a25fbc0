package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for new specials.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a random version 4 UUID. The id carries no creation
// time or ordering.
func (g *UUIDGenerator) Generate() uuid.UUID {
	return uuid.New()
}
