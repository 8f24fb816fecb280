package utils

import "github.com/google/uuid"

// UUIDGenerator produces note ids. Ids are UUIDv7, so they sort by creation
// time; a random v4 id is returned if the v7 clock source fails.
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
