package ticket

import (
	"context"
	"fmt"
	"sync"
)

// ReferencePrefix prefixes every human-facing ticket reference.
const ReferencePrefix = "ST"

// FormatReference renders a sequence number as a reference: zero-padded to
// three digits, growing naturally past ST999 (ST1000, ST1001, ...).
func FormatReference(n int) string {
	return fmt.Sprintf("%s%03d", ReferencePrefix, n)
}

// ReferenceGenerator produces the next human-facing ticket reference.
type ReferenceGenerator interface {
	Next(ctx context.Context) (string, error)
}

// CounterReferenceGenerator is an in-memory monotonic generator. The seed is
// the number of tickets already in the store plus one; the counter is not
// persisted, so restarts re-derive it from the backing store.
type CounterReferenceGenerator struct {
	mu   sync.Mutex
	next int
}

func NewCounterReferenceGenerator(existingCount int) *CounterReferenceGenerator {
	return &CounterReferenceGenerator{next: existingCount + 1}
}

func (g *CounterReferenceGenerator) Next(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ref := FormatReference(g.next)
	g.next++
	return ref, nil
}
