// Package idgen generates identifiers for campaigns, scenes, tokens and shapes.
package idgen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/KirkDiggler/battlemap-api/internal/pkg/idgen Generator

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// PrefixedGenerator produces prefix_timestamp_random ids that sort by creation time.
type PrefixedGenerator struct {
	prefix string
}

// NewPrefixed creates a new generator with the given prefix
func NewPrefixed(prefix string) *PrefixedGenerator {
	return &PrefixedGenerator{prefix: prefix}
}

func (g *PrefixedGenerator) Generate() string {
	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		panic(fmt.Sprintf("crypto/rand.Read failed: %v", err))
	}
	return fmt.Sprintf("%s_%d_%s", g.prefix, time.Now().UnixNano(), hex.EncodeToString(randomBytes))
}

// SequentialGenerator generates predictable ids for tests.
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}

// UUIDGenerator generates UUIDs with optional prefix
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a new UUID generator with optional prefix
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

func (g *UUIDGenerator) Generate() string {
	id := uuid.New().String()
	if g.prefix != "" {
		return fmt.Sprintf("%s_%s", g.prefix, id)
	}
	return id
}

// Set bundles the generators the game board needs, one per record kind.
type Set struct {
	Campaign  Generator
	Scene     Generator
	Token     Generator
	Shape     Generator
	Narration Generator
}

// NewSet returns production generators: UUIDs for durable records and
// time-ordered prefixed ids for tokens and shapes.
func NewSet() Set {
	return Set{
		Campaign:  NewUUID("campaign"),
		Scene:     NewUUID("scene"),
		Token:     NewPrefixed("token"),
		Shape:     NewPrefixed("shape"),
		Narration: NewPrefixed("narration"),
	}
}

// NewSequentialSet returns deterministic generators for tests.
func NewSequentialSet() Set {
	return Set{
		Campaign:  NewSequential("campaign"),
		Scene:     NewSequential("scene"),
		Token:     NewSequential("token"),
		Shape:     NewSequential("shape"),
		Narration: NewSequential("narration"),
	}
}
