// Package memory provides in-memory implementations of application ports.
package memory

import (
	"context"
	"sync"

	"github.com/tunectl-dev/tunectl/internal/application/ports"
	"github.com/tunectl-dev/tunectl/internal/domain/entities"
)

// Ensure interface compliance
var _ ports.WorkloadStore = (*WorkloadStore)(nil)

// WorkloadStore is an in-memory implementation of ports.WorkloadStore.
// Useful for testing and ephemeral registries.
type WorkloadStore struct {
	entries []entities.WorkloadEntry
	mu      sync.RWMutex
}

// NewWorkloadStore creates a new in-memory store.
func NewWorkloadStore() *WorkloadStore {
	return &WorkloadStore{}
}

// Load returns the stored entries in insertion order.
func (s *WorkloadStore) Load(_ context.Context) ([]entities.WorkloadEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.WorkloadEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Save replaces the stored table.
func (s *WorkloadStore) Save(_ context.Context, entries []entities.WorkloadEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make([]entities.WorkloadEntry, len(entries))
	copy(s.entries, entries)
	return nil
}
