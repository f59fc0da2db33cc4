package utils

import "github.com/google/uuid"

// IDGenerator hands out identifiers for groups, events and traces.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator produces time-ordered UUIDv7 strings so that ids sort in
// creation order.
type UUIDGenerator struct{}

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

// SequenceGenerator returns fixed ids in order; tests use it to make ids
// predictable. Once exhausted it falls back to UUIDv7.
type SequenceGenerator struct {
	ids []string
}

func NewSequenceGenerator(ids ...string) *SequenceGenerator {
	return &SequenceGenerator{ids: ids}
}

func (g *SequenceGenerator) Generate() string {
	if len(g.ids) == 0 {
		return NewUUIDGenerator().Generate()
	}
	id := g.ids[0]
	g.ids = g.ids[1:]
	return id
}
