// ABOUTME: Tests for the process-wide storage manager.
// ABOUTME: Verifies single-flight initialization, Get gating and lifecycle.
package database

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/harperreed/fittrack/internal/sqlite"
	"github.com/harperreed/fittrack/internal/storage"
)

func TestGetBeforeInitialize(t *testing.T) {
	m := NewManager(func() (storage.Store, error) {
		return sqlite.New("fittrack", t.TempDir()), nil
	})

	if _, err := m.Get(); !errors.Is(err, storage.ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}

func TestInitializeOnce(t *testing.T) {
	dir := t.TempDir()
	var opens atomic.Int32
	m := NewManager(func() (storage.Store, error) {
		opens.Add(1)
		return sqlite.New("fittrack", dir), nil
	})
	t.Cleanup(func() { _ = m.Close() })

	first, err := m.Initialize()
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	second, err := m.Initialize()
	if err != nil {
		t.Fatalf("second Initialize failed: %v", err)
	}
	if first != second {
		t.Error("repeated Initialize returned a different store")
	}
	if opens.Load() != 1 {
		t.Errorf("opener ran %d times, want 1", opens.Load())
	}

	got, err := m.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != first {
		t.Error("Get returned a different store than Initialize")
	}
}

func TestInitializeConcurrent(t *testing.T) {
	dir := t.TempDir()
	var opens atomic.Int32
	m := NewManager(func() (storage.Store, error) {
		opens.Add(1)
		return sqlite.New("fittrack", dir), nil
	})
	t.Cleanup(func() { _ = m.Close() })

	var wg sync.WaitGroup
	stores := make([]storage.Store, 10)
	for i := range stores {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := m.Initialize()
			if err != nil {
				t.Errorf("concurrent Initialize failed: %v", err)
				return
			}
			stores[i] = s
		}(i)
	}
	wg.Wait()

	if opens.Load() != 1 {
		t.Errorf("opener ran %d times under contention, want 1", opens.Load())
	}
	for i, s := range stores {
		if s != stores[0] {
			t.Errorf("caller %d got a different store", i)
		}
	}
}

func TestFailedInitializeRetries(t *testing.T) {
	dir := t.TempDir()
	var calls atomic.Int32
	m := NewManager(func() (storage.Store, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("transient failure")
		}
		return sqlite.New("fittrack", dir), nil
	})
	t.Cleanup(func() { _ = m.Close() })

	if _, err := m.Initialize(); err == nil {
		t.Fatal("expected first Initialize to fail")
	}
	if _, err := m.Get(); !errors.Is(err, storage.ErrNotInitialized) {
		t.Errorf("failed init should leave manager uninitialized, got %v", err)
	}
	if _, err := m.Initialize(); err != nil {
		t.Fatalf("retry Initialize failed: %v", err)
	}
}

func TestCloseAllowsReinitialize(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(func() (storage.Store, error) {
		return sqlite.New("fittrack", dir), nil
	})

	if _, err := m.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := m.Get(); !errors.Is(err, storage.ErrNotInitialized) {
		t.Errorf("closed manager should report uninitialized, got %v", err)
	}
	if _, err := m.Initialize(); err != nil {
		t.Fatalf("re-Initialize after Close failed: %v", err)
	}
	t.Cleanup(func() { _ = m.Close() })
}

func TestDeleteDatabaseBeforeInitialize(t *testing.T) {
	m := NewManager(func() (storage.Store, error) {
		return sqlite.New("fittrack", t.TempDir()), nil
	})
	if err := m.DeleteDatabase(); !errors.Is(err, storage.ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}
