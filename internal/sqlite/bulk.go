// ABOUTME: Batched insert-or-ignore used by reference-data bulk loads.
// ABOUTME: Batches bound statement size while keeping one round trip per batch.
package sqlite

import (
	"fmt"
	"strings"
)

const bulkBatchSize = 100

// bulkInsert writes rows in batches with INSERT OR IGNORE semantics:
// existing primary keys are left untouched, re-inserting is not an error.
func (s *Store) bulkInsert(table string, columns []string, rows [][]any) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	rowPlaceholder := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ") + ")"

	for start := 0; start < len(rows); start += bulkBatchSize {
		end := start + bulkBatchSize
		if end > len(rows) {
			end = len(rows)
		}
		batch := rows[start:end]

		placeholders := make([]string, len(batch))
		args := make([]any, 0, len(batch)*len(columns))
		for i, row := range batch {
			placeholders[i] = rowPlaceholder
			args = append(args, row...)
		}

		stmt := fmt.Sprintf("INSERT OR IGNORE INTO %s (%s) VALUES %s",
			table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
		if _, err := db.Exec(stmt, args...); err != nil {
			return fmt.Errorf("bulk insert %s: %w", table, err)
		}
	}
	return nil
}

// clearTable removes every row of one entity family. Never cascades.
func (s *Store) clearTable(table string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if _, err := db.Exec("DELETE FROM " + table); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	return nil
}
