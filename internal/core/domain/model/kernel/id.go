package kernel

import (
	"strings"

	"github.com/google/uuid"
)

// IDGenerator produces unique opaque identifiers.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator generates identifiers from random (version 4) UUIDs.
// An optional prefix keeps order and menu identifiers visually distinct.
//
// Example:
//
//	orders := kernel.NewUUIDGenerator("ORD")
//	id := orders.NewID() // e.g. "ORD-9F1C2A7B"
type UUIDGenerator struct {
	prefix string
}

// NewUUIDGenerator returns a generator whose identifiers start with prefix and a dash.
// An empty prefix yields the plain UUID string.
func NewUUIDGenerator(prefix string) UUIDGenerator {
	return UUIDGenerator{prefix: prefix}
}

// NewID returns a fresh identifier. Prefixed identifiers use the first eight hex
// digits of the UUID, which is enough for a single restaurant's order book while
// remaining readable on a receipt.
func (g UUIDGenerator) NewID() string {
	id := uuid.New()
	if g.prefix == "" {
		return id.String()
	}
	short := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
	return g.prefix + "-" + short
}

// IDGeneratorFunc adapts a function to IDGenerator.
type IDGeneratorFunc func() string

func (f IDGeneratorFunc) NewID() string {
	return f()
}
