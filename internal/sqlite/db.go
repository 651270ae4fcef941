// ABOUTME: SQLite storage backend lifecycle: pooled connections, pragmas, DDL.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package sqlite

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/harperreed/fittrack/internal/storage"
	sqlite3 "modernc.org/sqlite"
)

// name_matches exposes the shared search predicate to SQL so name search
// runs the exact same code as the document backend. SQLite's own LOWER()
// folds ASCII only and LIKE gives % and _ pattern meaning; neither matches
// the contract.
func init() {
	sqlite3.MustRegisterDeterministicScalarFunction("name_matches", 2,
		func(ctx *sqlite3.FunctionContext, args []driver.Value) (driver.Value, error) {
			name, _ := args[0].(string)
			query, _ := args[1].(string)
			if storage.MatchesName(name, query) {
				return int64(1), nil
			}
			return int64(0), nil
		})
}

// Connections are pooled per database path so a second Store opened for
// the same database shares the underlying handle.
var (
	poolMu sync.Mutex
	pool   = map[string]*sql.DB{}
)

var _ storage.Store = (*Store)(nil)

// Store implements storage.Store over an on-device SQLite database.
type Store struct {
	name   string
	dir    string
	db     *sql.DB
	logger *slog.Logger
}

// New creates an uninitialized SQLite store for the named database under
// dir. Call Initialize before use.
func New(name, dir string) *Store {
	return &Store{name: name, dir: dir, logger: slog.Default()}
}

// Path returns the database file path.
func (s *Store) Path() string {
	return filepath.Join(s.dir, s.name+".db")
}

// Initialize acquires the pooled connection (creating it if absent), runs
// additive migrations for tables created by older versions, then the DDL
// for the current schema. Safe to call on every launch.
func (s *Store) Initialize() error {
	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	db, err := s.acquireConn()
	if err != nil {
		return err
	}
	s.db = db

	// Ping is idempotent: a connection retrieved from the pool is already
	// open and this is a no-op.
	if err := db.Ping(); err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := s.configurePragmas(); err != nil {
		return fmt.Errorf("configure pragmas: %w", err)
	}

	// Migrations run before DDL so that a table missing entirely is a
	// clean no-op: the DDL that follows creates it with every column
	// already present.
	s.migrate()

	if err := s.createSchema(); err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}

	return nil
}

// acquireConn retrieves the pooled connection for this database path, or
// creates one. If creation races with another caller, the winner's
// connection is retrieved and ours discarded.
func (s *Store) acquireConn() (*sql.DB, error) {
	path := s.Path()

	poolMu.Lock()
	if db, ok := pool[path]; ok {
		poolMu.Unlock()
		return db, nil
	}
	poolMu.Unlock()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	poolMu.Lock()
	defer poolMu.Unlock()
	if existing, ok := pool[path]; ok {
		_ = db.Close()
		return existing, nil
	}
	pool[path] = db
	return db, nil
}

// Close closes the live connection and releases it from the pool.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}

	poolMu.Lock()
	delete(pool, s.Path())
	poolMu.Unlock()

	err := s.db.Close()
	s.db = nil
	return err
}

// DeleteDatabase closes and removes the pooled connection, physically
// deletes the database file, then re-initializes a fresh one.
func (s *Store) DeleteDatabase() error {
	if err := s.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}

	for _, suffix := range []string{"", "-wal", "-shm"} {
		if err := os.Remove(s.Path() + suffix); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("delete database file: %w", err)
		}
	}

	return s.Initialize()
}

// conn returns the live connection, or ErrNotInitialized before Initialize.
func (s *Store) conn() (*sql.DB, error) {
	if s.db == nil {
		return nil, storage.ErrNotInitialized
	}
	return s.db, nil
}

func (s *Store) configurePragmas() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := s.db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}

// createSchema runs CREATE TABLE IF NOT EXISTS and CREATE INDEX IF NOT
// EXISTS for every table in the canonical schema. Safe to re-run.
func (s *Store) createSchema() error {
	for _, table := range storage.Tables() {
		if _, err := s.db.Exec(createTableSQL(table)); err != nil {
			return fmt.Errorf("create table %s: %w", table.Name, err)
		}
		for _, idx := range table.Indexes {
			if _, err := s.db.Exec(createIndexSQL(table.Name, idx)); err != nil {
				return fmt.Errorf("create index %s: %w", idx.Name, err)
			}
		}
	}
	return nil
}

func createTableSQL(t storage.Table) string {
	defs := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		def := c.Name + " " + string(c.Type)
		if c.PrimaryKey {
			def += " PRIMARY KEY"
		}
		if c.NotNull {
			def += " NOT NULL"
		}
		if c.Default != "" {
			def += " DEFAULT " + c.Default
		}
		defs = append(defs, def)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", t.Name, strings.Join(defs, ", "))
}

func createIndexSQL(table string, idx storage.Index) string {
	return fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)",
		idx.Name, table, strings.Join(idx.Columns, ", "))
}
