// internal/state/mock.go
package state

import (
	"database/sql"
	"sync"
)

// Mock is a test double for Manager.
type Mock struct {
	mu     sync.Mutex
	player *PlayerState
	saves  int
	closed bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SavePlayer(state PlayerState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.player = &state
	m.saves++
}

func (m *Mock) GetPlayer() (*PlayerState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.player == nil {
		d := DefaultPlayer()
		return &d, nil
	}
	p := *m.player
	return &p, nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetPlayer(state *PlayerState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.player = state
}

func (m *Mock) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
