package testutil

import (
	"context"
	"sync"

	"github.com/KDR9MGR/digital-payments-core/internal/domain/card"
	"github.com/KDR9MGR/digital-payments-core/internal/domain/transfer"
)

// --- Capability Directory Mock ---

// MockDirectory is a mock implementation of transfer.CapabilityLookup.
type MockDirectory struct {
	mu      sync.Mutex
	records map[string]*transfer.AccountCapability

	LookupFunc func(ctx context.Context, id string) (*transfer.AccountCapability, error)
}

func NewMockDirectory() *MockDirectory {
	return &MockDirectory{
		records: make(map[string]*transfer.AccountCapability),
	}
}

// SetCapability pre-populates the mock with a capability record.
func (m *MockDirectory) SetCapability(id string, c transfer.AccountCapability) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[id] = &c
}

func (m *MockDirectory) Lookup(ctx context.Context, id string) (*transfer.AccountCapability, error) {
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.records[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

// --- Fingerprint Set ---

// MemoryFingerprintSet is an in-memory card.FingerprintSet safe for
// concurrent use.
type MemoryFingerprintSet struct {
	mu  sync.Mutex
	set map[card.Fingerprint]struct{}

	ContainsFunc func(ctx context.Context, fp card.Fingerprint) (bool, error)
}

func NewMemoryFingerprintSet() *MemoryFingerprintSet {
	return &MemoryFingerprintSet{
		set: make(map[card.Fingerprint]struct{}),
	}
}

func (m *MemoryFingerprintSet) Contains(ctx context.Context, fp card.Fingerprint) (bool, error) {
	if m.ContainsFunc != nil {
		return m.ContainsFunc(ctx, fp)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.set[fp]
	return ok, nil
}

// Add inserts a fingerprint, the way a caller would after a successful
// tokenization.
func (m *MemoryFingerprintSet) Add(ctx context.Context, fp card.Fingerprint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.set[fp] = struct{}{}
	return nil
}
