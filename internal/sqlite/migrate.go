// ABOUTME: Additive schema migrations driven by column introspection.
// ABOUTME: Diffs PRAGMA table_info against the canonical schema; one ALTER per missing column.
package sqlite

import (
	"fmt"
	"strings"

	"github.com/harperreed/fittrack/internal/storage"
)

// migrate brings already-created tables up to the current schema by adding
// any missing columns. Forward-only and idempotent: re-running against an
// up-to-date database does nothing. Failures never abort startup; a
// missing table is expected (DDL creates it afterwards) and any other
// error is logged and skipped.
func (s *Store) migrate() {
	for _, table := range storage.Tables() {
		if err := s.migrateTable(table); err != nil {
			s.logger.Warn("schema migration skipped",
				"table", table.Name, "error", err)
		}
	}
}

func (s *Store) migrateTable(table storage.Table) error {
	existing, err := s.tableColumns(table.Name)
	if err != nil {
		return fmt.Errorf("introspect %s: %w", table.Name, err)
	}
	// Table not created yet: nothing to migrate, DDL will create it whole.
	if len(existing) == 0 {
		return nil
	}

	for _, col := range table.Columns {
		if existing[col.Name] {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table.Name, col.Name, col.Type)
		if col.Default != "" {
			stmt += " DEFAULT " + col.Default
		}
		if _, err := s.db.Exec(stmt); err != nil {
			// A concurrent launch may have added the column already.
			if strings.Contains(err.Error(), "duplicate column") {
				continue
			}
			s.logger.Warn("add column failed",
				"table", table.Name, "column", col.Name, "error", err)
		}
	}
	return nil
}

// tableColumns returns the set of column names the table currently has.
// An empty set means the table does not exist.
func (s *Store) tableColumns(name string) (map[string]bool, error) {
	rows, err := s.db.Query(fmt.Sprintf("PRAGMA table_info(%s)", name))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := map[string]bool{}
	for rows.Next() {
		var (
			cid        int
			colName    string
			colType    string
			notNull    int
			defaultVal any
			pk         int
		)
		if err := rows.Scan(&cid, &colName, &colType, &notNull, &defaultVal, &pk); err != nil {
			return nil, err
		}
		cols[colName] = true
	}
	return cols, rows.Err()
}
