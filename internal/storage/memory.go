package storage

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"tarimvitrin.com/app/internal/modules/storefront"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// Memory keeps view states in process memory. States are stored encoded so
// callers never share slices with the store.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{entries: map[string]memoryEntry{}, ttl: ttl, now: time.Now}
}

func (m *Memory) Get(ctx context.Context, sessionID string) (storefront.State, error) {
	m.mu.RLock()
	e, ok := m.entries[sessionID]
	m.mu.RUnlock()

	if !ok || (!e.expiresAt.IsZero() && m.now().After(e.expiresAt)) {
		return storefront.State{}, ErrNotFound
	}
	var st storefront.State
	if err := json.Unmarshal(e.data, &st); err != nil {
		return storefront.State{}, err
	}
	return st, nil
}

func (m *Memory) Save(ctx context.Context, sessionID string, st storefront.State) error {
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	e := memoryEntry{data: b}
	if m.ttl > 0 {
		e.expiresAt = m.now().Add(m.ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[sessionID] = e
	m.sweepLocked()
	return nil
}

func (m *Memory) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.entries, sessionID)
	m.mu.Unlock()
	return nil
}

// sweepLocked drops expired entries. Caller holds m.mu.
func (m *Memory) sweepLocked() {
	if m.ttl <= 0 {
		return
	}
	now := m.now()
	for k, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, k)
		}
	}
}
