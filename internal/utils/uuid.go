package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator produces unique record identifiers.
type IDGenerator interface {
	Generate() (string, error)
}

// UUIDGenerator issues time-ordered UUIDv7 strings. Within one process the
// generated ids are monotonic, so they break ties between records created in
// the same instant.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() (string, error) {
	v7, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("error generating uuid v7: %w", err)
	}

	return v7.String(), nil
}
