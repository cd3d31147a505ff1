package profile

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/wagewise/wagewise/internal/domain"
)

// Memory is the in-process Registry. Snapshots are copied on the way in and
// out so callers cannot alias stored state.
type Memory struct {
	mu       sync.RWMutex
	profiles map[string]domain.ExpenseSet
}

// NewMemory creates an empty in-memory registry.
func NewMemory() *Memory {
	return &Memory{profiles: make(map[string]domain.ExpenseSet)}
}

// Save stores a snapshot under name, overwriting any previous one.
func (m *Memory) Save(_ context.Context, name string, snapshot domain.ExpenseSet) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[name] = snapshot.Clone()
	return nil
}

// Load returns a copy of the named snapshot.
func (m *Memory) Load(_ context.Context, name string) (domain.ExpenseSet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snapshot, ok := m.profiles[name]
	if !ok {
		return nil, ErrNotFound
	}
	return snapshot.Clone(), nil
}

// Delete removes the named snapshot; absent names are a no-op.
func (m *Memory) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.profiles, name)
	return nil
}

// List returns all profile names, sorted.
func (m *Memory) List(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.profiles))
	for name := range m.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
