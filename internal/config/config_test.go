// ABOUTME: Tests for configuration loading and backend selection.
// ABOUTME: Verifies defaults, env overrides, path expansion and the storage factory.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetBackendDefault(t *testing.T) {
	t.Setenv("FITTRACK_BACKEND", "")

	cfg := &Config{}
	if got := cfg.GetBackend(); got != BackendSQLite {
		t.Errorf("default backend: got %q, want %q", got, BackendSQLite)
	}

	cfg.Backend = BackendBadger
	if got := cfg.GetBackend(); got != BackendBadger {
		t.Errorf("configured backend: got %q, want %q", got, BackendBadger)
	}
}

func TestGetBackendEnvOverride(t *testing.T) {
	t.Setenv("FITTRACK_BACKEND", BackendBadger)

	cfg := &Config{Backend: BackendSQLite}
	if got := cfg.GetBackend(); got != BackendBadger {
		t.Errorf("env override ignored: got %q", got)
	}
}

func TestGetDataDirEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FITTRACK_DATA_DIR", dir)

	cfg := &Config{DataDir: "/elsewhere"}
	if got := cfg.GetDataDir(); got != dir {
		t.Errorf("env override ignored: got %q", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	if got := ExpandPath("~/data"); got != filepath.Join(home, "data") {
		t.Errorf("ExpandPath(~/data): got %q", got)
	}
	if got := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path changed: got %q", got)
	}
	if got := ExpandPath(""); got != "" {
		t.Errorf("empty path changed: got %q", got)
	}
}

func TestOpenStorageUnknownBackend(t *testing.T) {
	t.Setenv("FITTRACK_BACKEND", "")

	cfg := &Config{Backend: "cloud"}
	if _, err := cfg.OpenStorage(); err == nil || !strings.Contains(err.Error(), "unknown backend") {
		t.Errorf("expected unknown backend error, got %v", err)
	}
}

func TestOpenStorageSelectsBackend(t *testing.T) {
	t.Setenv("FITTRACK_BACKEND", "")
	t.Setenv("FITTRACK_DATA_DIR", t.TempDir())

	for _, backend := range []string{BackendSQLite, BackendBadger} {
		cfg := &Config{Backend: backend}
		store, err := cfg.OpenStorage()
		if err != nil {
			t.Fatalf("OpenStorage(%s) failed: %v", backend, err)
		}
		if store == nil {
			t.Fatalf("OpenStorage(%s) returned nil store", backend)
		}
	}
}
