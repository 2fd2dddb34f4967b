// Package idgen provides ID generation utilities
package idgen

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/KirkDiggler/rpg-companion/internal/pkg/idgen Generator

// DocumentIDLength is the length of tabletop document IDs
const DocumentIDLength = 16

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// DocumentGenerator generates 16 character alphanumeric IDs in the shape the
// tabletop uses for actor and item documents
type DocumentGenerator struct{}

// NewDocument creates a document ID generator
func NewDocument() *DocumentGenerator {
	return &DocumentGenerator{}
}

// Generate creates a new document ID from a random UUID
func (g *DocumentGenerator) Generate() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return id[:DocumentIDLength]
}

// UUIDGenerator generates UUIDs with optional prefix
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a new UUID generator with optional prefix
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate() string {
	id := uuid.New().String()
	if g.prefix != "" {
		return fmt.Sprintf("%s_%s", g.prefix, id)
	}
	return id
}

// SequentialGenerator generates sequential IDs for testing
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate creates a new sequential ID
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}
