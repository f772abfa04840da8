package lock

import (
	"context"
	"sync"

	"trade_credit/internal/usecase/interfaces"
)

// MemoryLockManager serializes callers per key inside a single process.
// Entries are reference counted and dropped once no caller holds or waits on them.
type MemoryLockManager struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
}

type memoryEntry struct {
	slot chan struct{}
	refs int
}

var _ interfaces.ILockManager = (*MemoryLockManager)(nil)

func NewMemoryLockManager() *MemoryLockManager {
	return &MemoryLockManager{entries: make(map[string]*memoryEntry)}
}

// Acquire blocks until key is free or ctx is done.
func (m *MemoryLockManager) Acquire(ctx context.Context, key string) (func(), error) {
	m.mu.Lock()
	e, ok := m.entries[key]
	if !ok {
		e = &memoryEntry{slot: make(chan struct{}, 1)}
		m.entries[key] = e
	}
	e.refs++
	m.mu.Unlock()

	select {
	case e.slot <- struct{}{}:
	case <-ctx.Done():
		m.unref(key, e)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.slot
			m.unref(key, e)
		})
	}, nil
}

func (m *MemoryLockManager) unref(key string, e *memoryEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(m.entries, key)
	}
}

// size reports how many keys are currently tracked.
func (m *MemoryLockManager) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
