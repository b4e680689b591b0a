package database

import (
	"errors"
	"sync"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("database: store is closed")

// Store defines the preference storage used by the app.
type Store interface {
	Ping() error
	// GetPreference returns the stored value and whether the key exists.
	GetPreference(key string) (string, bool, error)
	SetPreference(key, value string) error
	Close() error
}

// Open opens the store backend selected at build time at path.
func Open(path string) (Store, error) {
	return openStore(path)
}

// Memory is a Store kept in process memory. It is used when the database
// file cannot be opened and by tests.
type Memory struct {
	mu     sync.RWMutex
	prefs  map[string]string
	closed bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{prefs: make(map[string]string)}
}

func (m *Memory) Ping() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return ErrClosed
	}

	return nil
}

func (m *Memory) GetPreference(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", false, ErrClosed
	}

	v, ok := m.prefs[key]

	return v, ok, nil
}

func (m *Memory) SetPreference(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	m.prefs[key] = value

	return nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true

	return nil
}
