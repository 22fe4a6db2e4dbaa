// Package state opens the application database and persists player state
// (volume, mute, last station, visualization) across runs.
package state

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"

	"github.com/llehouerou/waveradio/internal/db"
)

const (
	appName      = "waveradio"
	dbFileName   = "waveradio.db"
	legacyDBFile = "stations.db"
	saveDebounce = 500 * time.Millisecond
)

// ResolvePath picks the database file. A stations.db in the working
// directory wins, then the configured override, then the XDG data dir.
func ResolvePath(override string) (string, error) {
	if info, err := os.Stat(legacyDBFile); err == nil && !info.IsDir() {
		return legacyDBFile, nil
	}
	if override == "" {
		return xdg.DataFile(filepath.Join(appName, dbFileName))
	}
	if override != "~" && !strings.HasPrefix(override, "~/") {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(override, "~")), nil
}

// saver holds the latest unsaved player state until the debounce fires.
type saver struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending *PlayerState
	write   func(PlayerState) error
}

func (s *saver) schedule(p PlayerState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = &p
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(saveDebounce, func() { _ = s.flush() })
}

func (s *saver) peek() (PlayerState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return PlayerState{}, false
	}
	return *s.pending, true
}

func (s *saver) flush() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	p := s.pending
	s.pending = nil
	s.mu.Unlock()

	if p == nil {
		return nil
	}
	return s.write(*p)
}

type Manager struct {
	db    *sql.DB
	saver *saver
}

// Open opens the database at path and migrates the state schema.
func Open(path string) (*Manager, error) {
	conn, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	if err := initSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	m := &Manager{db: conn}
	m.saver = &saver{write: func(p PlayerState) error { return savePlayer(conn, p) }}
	return m, nil
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// GetPlayer returns the saved player state, or defaults on a fresh database.
// A save still waiting for its debounce is returned as-is.
func (m *Manager) GetPlayer() (*PlayerState, error) {
	if p, ok := m.saver.peek(); ok {
		return &p, nil
	}
	return getPlayer(m.db)
}

// SavePlayer schedules a write of the player state. Rapid calls (holding
// the volume key) collapse into a single write.
func (m *Manager) SavePlayer(state PlayerState) {
	m.saver.schedule(state)
}

// Close writes any pending state and closes the database.
func (m *Manager) Close() error {
	return errors.Join(m.saver.flush(), m.db.Close())
}
