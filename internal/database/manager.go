// ABOUTME: Process-wide storage lifecycle: one backend chosen once, initialized once.
// ABOUTME: Concurrent Initialize calls share a single in-flight attempt and its result.
package database

import (
	"fmt"
	"sync"

	"github.com/harperreed/fittrack/internal/storage"
)

// Manager owns the process's single storage backend. The backend is
// chosen by the opener exactly once; every consumer goes through Get.
type Manager struct {
	open func() (storage.Store, error)

	mu    sync.Mutex
	store storage.Store
}

// NewManager creates a manager that obtains its backend from open on the
// first Initialize. The opener typically comes from config.OpenStorage.
func NewManager(open func() (storage.Store, error)) *Manager {
	return &Manager{open: open}
}

// Initialize opens and initializes the backend. Calls made while an
// initialization is in flight block and share its outcome; calls after a
// successful one return the existing store. A failed attempt leaves the
// manager uninitialized so the next call retries.
func (m *Manager) Initialize() (storage.Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.store != nil {
		return m.store, nil
	}

	store, err := m.open()
	if err != nil {
		return nil, fmt.Errorf("open storage backend: %w", err)
	}
	if err := store.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize storage: %w", err)
	}

	m.store = store
	return store, nil
}

// Get returns the initialized store, or storage.ErrNotInitialized when
// Initialize has not yet succeeded. A call made while an Initialize is in
// flight blocks until that attempt settles and then reports its outcome:
// the new store on success, ErrNotInitialized on failure.
func (m *Manager) Get() (storage.Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.store == nil {
		return nil, storage.ErrNotInitialized
	}
	return m.store, nil
}

// Close shuts down the backend. The manager can be re-initialized after.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.store == nil {
		return nil
	}
	err := m.store.Close()
	m.store = nil
	return err
}

// DeleteDatabase destroys all stored data and leaves a fresh initialized
// database behind. Administrative; callers must ensure no other traffic.
func (m *Manager) DeleteDatabase() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.store == nil {
		return storage.ErrNotInitialized
	}
	return m.store.DeleteDatabase()
}
