// ABOUTME: Generic document operations: get/put/delete/list/clear/bulk-put by store prefix.
// ABOUTME: Put-by-key is naturally idempotent; bulk insert additionally skips existing keys.
package docstore

import (
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/harperreed/fittrack/internal/storage"
)

func docKey(store, key string) []byte {
	return []byte(store + ":" + key)
}

func (s *Store) ready() error {
	if s.db == nil {
		return storage.ErrNotInitialized
	}
	return nil
}

// getDoc retrieves and unmarshals one document, returning nil when the
// key is absent.
func getDoc[T any](s *Store, store, key string) (*T, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	var doc *T
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(docKey(store, key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var v T
			if err := json.Unmarshal(val, &v); err != nil {
				return fmt.Errorf("unmarshal %s document: %w", store, err)
			}
			doc = &v
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", store, err)
	}
	return doc, nil
}

// listDocs retrieves every document in a store. A document that fails to
// unmarshal is skipped rather than failing the whole scan.
func listDocs[T any](s *Store, store string) ([]*T, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	var docs []*T
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(store + ":")
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var v T
				if err := json.Unmarshal(val, &v); err != nil {
					return nil
				}
				docs = append(docs, &v)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", store, err)
	}
	return docs, nil
}

// putDoc marshals and stores one document. Put-by-key is an upsert.
func (s *Store) putDoc(store, key string, v any) error {
	if err := s.ready(); err != nil {
		return err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s document: %w", store, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(docKey(store, key), data)
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", store, err)
	}
	return nil
}

// deleteDoc removes one document. Deleting a missing key is not an error.
func (s *Store) deleteDoc(store, key string) error {
	if err := s.ready(); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(docKey(store, key))
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", store, err)
	}
	return nil
}

// clearStore removes every document in one store. Never cascades.
func (s *Store) clearStore(store string) error {
	if err := s.ready(); err != nil {
		return err
	}

	var keys [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(store + ":")
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear %s: %w", store, err)
	}

	for _, key := range keys {
		err := s.db.Update(func(txn *badger.Txn) error {
			return txn.Delete(key)
		})
		if err != nil {
			return fmt.Errorf("clear %s: %w", store, err)
		}
	}
	return nil
}

// bulkPut writes documents with insert-or-ignore semantics: keys that
// already exist keep their stored value. Matches the relational backend's
// INSERT OR IGNORE for reference data.
func (s *Store) bulkPut(store string, keys []string, docs []any) error {
	if err := s.ready(); err != nil {
		return err
	}

	// The deferred discard must track the current transaction: a batch that
	// outgrows one transaction swaps in a replacement below.
	txn := s.db.NewTransaction(true)
	defer func() { txn.Discard() }()

	for i, key := range keys {
		k := docKey(store, key)
		if _, err := txn.Get(k); err == nil {
			continue
		} else if err != badger.ErrKeyNotFound {
			return fmt.Errorf("bulk insert %s: %w", store, err)
		}

		data, err := json.Marshal(docs[i])
		if err != nil {
			return fmt.Errorf("marshal %s document: %w", store, err)
		}

		if err := txn.Set(k, data); err == badger.ErrTxnTooBig {
			if err := txn.Commit(); err != nil {
				return fmt.Errorf("bulk insert %s: %w", store, err)
			}
			txn = s.db.NewTransaction(true)
			if err := txn.Set(k, data); err != nil {
				return fmt.Errorf("bulk insert %s: %w", store, err)
			}
		} else if err != nil {
			return fmt.Errorf("bulk insert %s: %w", store, err)
		}
	}

	if err := txn.Commit(); err != nil {
		return fmt.Errorf("bulk insert %s: %w", store, err)
	}
	return nil
}

// matchesName routes name search through the contract-level predicate.
// The relational backend registers the same predicate as an SQL function,
// so both backends match names identically.
func matchesName(name, query string) bool {
	return storage.MatchesName(name, query)
}
