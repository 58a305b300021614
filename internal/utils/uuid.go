package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered v7 UUIDs, falling back to random v4
// when v7 generation fails. Used for request trace ids.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
