package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered trace ids.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7. v7 ids sort by creation time, which keeps log
// queries by trace id roughly chronological. Falls back to v4 if the random
// source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
