// ABOUTME: Document storage backend lifecycle over BadgerDB.
// ABOUTME: Entities are JSON documents under "<store>:<key>" keys; schema upgrades are additive.
package docstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/harperreed/fittrack/internal/storage"
)

const (
	metaVersionKey = "meta:schema_version"
	metaStoresKey  = "meta:stores"
)

var _ storage.Store = (*Store)(nil)

// Store implements storage.Store over an embedded BadgerDB document store.
// Structured fields need no extra serialization discipline here: whole
// entities round-trip as single JSON documents.
type Store struct {
	dir    string
	db     *badger.DB
	logger *slog.Logger
}

// badgerLogger adapts slog to badger's logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (b *badgerLogger) Errorf(msg string, args ...any)   { b.logger.Error(fmt.Sprintf(msg, args...)) }
func (b *badgerLogger) Warningf(msg string, args ...any) { b.logger.Warn(fmt.Sprintf(msg, args...)) }
func (b *badgerLogger) Infof(msg string, args ...any)    { b.logger.Debug(fmt.Sprintf(msg, args...)) }
func (b *badgerLogger) Debugf(msg string, args ...any)   { b.logger.Debug(fmt.Sprintf(msg, args...)) }

// New creates an uninitialized document store rooted at dir. Call
// Initialize before use.
func New(dir string) *Store {
	return &Store{dir: dir, logger: slog.Default()}
}

// Initialize opens the database and applies any pending schema versions.
// Versions are strictly additive: each one only registers new object
// stores or new indexes, so existing documents stay queryable.
func (s *Store) Initialize() error {
	if s.db != nil {
		return nil
	}
	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(s.dir)
	opts.Logger = &badgerLogger{logger: s.logger}

	db, err := badger.Open(opts)
	if err != nil {
		return fmt.Errorf("open document store: %w", err)
	}
	s.db = db

	if err := s.upgrade(); err != nil {
		_ = db.Close()
		s.db = nil
		return fmt.Errorf("upgrade document store: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// DeleteDatabase destroys the on-disk store and re-initializes a fresh one.
func (s *Store) DeleteDatabase() error {
	if err := s.Close(); err != nil {
		return fmt.Errorf("close document store: %w", err)
	}
	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("delete document store: %w", err)
	}
	return s.Initialize()
}

// upgrade applies every declared schema version above the persisted one,
// in order, recording the registered stores and the new version.
func (s *Store) upgrade() error {
	current, err := s.schemaVersion()
	if err != nil {
		return err
	}

	target := storage.CurrentStoreVersion()
	if current >= target {
		return nil
	}

	registered, err := s.registeredStores()
	if err != nil {
		return err
	}

	for _, version := range storage.StoreVersions() {
		if version.Version <= current {
			continue
		}
		registered = append(registered, version.Stores...)
		s.logger.Info("document store upgraded",
			"from", current, "to", version.Version)
		current = version.Version
	}

	manifest, err := json.Marshal(registered)
	if err != nil {
		return fmt.Errorf("marshal store manifest: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(metaStoresKey), manifest); err != nil {
			return err
		}
		return txn.Set([]byte(metaVersionKey), []byte(strconv.Itoa(current)))
	})
}

func (s *Store) schemaVersion() (int, error) {
	var version int
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(metaVersionKey))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			version, err = strconv.Atoi(string(val))
			return err
		})
	})
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

func (s *Store) registeredStores() ([]storage.ObjectStore, error) {
	var stores []storage.ObjectStore
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(metaStoresKey))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &stores)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("read store manifest: %w", err)
	}
	return stores, nil
}
