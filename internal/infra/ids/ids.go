// Package ids generates ULID-based item identifiers.
package ids

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/runoshun/todo/internal/domain"
)

// Identifier prefixes by item kind.
const (
	TaskPrefix = "tsk_"
	NotePrefix = "nte_"
)

// Ensure Generator implements domain.IDGenerator.
var _ domain.IDGenerator = (*Generator)(nil)

// Generator produces identifiers such as "tsk_01J0ABCDEF...". IDs from one
// Generator sort in creation order, even within the same millisecond.
type Generator struct {
	clock   domain.Clock
	entropy *ulid.MonotonicEntropy
	mu      sync.Mutex
}

// New creates a Generator reading entropy from crypto/rand.
func New(clock domain.Clock) *Generator {
	return NewWithEntropy(clock, rand.Reader)
}

// NewWithEntropy creates a Generator with a custom entropy source.
// This is useful for testing.
func NewWithEntropy(clock domain.Clock, entropy io.Reader) *Generator {
	return &Generator{
		clock:   clock,
		entropy: ulid.Monotonic(entropy, 0),
	}
}

// NewID returns a fresh identifier for an item of the given kind.
func (g *Generator) NewID(kind domain.Kind) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	t := g.clock.Now()
	id, err := ulid.New(ulid.Timestamp(t), g.entropy)
	if err != nil {
		// Entropy exhausted within one millisecond; fall back to the clock.
		return fmt.Sprintf("%s%d", Prefix(kind), t.UnixNano())
	}
	return Prefix(kind) + id.String()
}

// Prefix returns the identifier prefix for kind.
func Prefix(kind domain.Kind) string {
	if kind == domain.KindNote {
		return NotePrefix
	}
	return TaskPrefix
}
