// ABOUTME: Tests for the canonical schema definition.
// ABOUTME: Verifies structural invariants both backends rely on.
package storage

import "testing"

func TestEveryTableHasPrimaryKey(t *testing.T) {
	for _, table := range Tables() {
		if table.PrimaryKey() == "" {
			t.Errorf("table %s has no primary key", table.Name)
		}
	}
}

func TestTableNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, table := range Tables() {
		if seen[table.Name] {
			t.Errorf("duplicate table name %s", table.Name)
		}
		seen[table.Name] = true
	}
}

func TestIndexColumnsExist(t *testing.T) {
	for _, table := range Tables() {
		cols := map[string]bool{}
		for _, c := range table.Columns {
			cols[c.Name] = true
		}
		for _, idx := range table.Indexes {
			for _, col := range idx.Columns {
				if !cols[col] {
					t.Errorf("index %s on %s references missing column %s",
						idx.Name, table.Name, col)
				}
			}
		}
	}
}

func TestStoreVersionsStrictlyIncreasing(t *testing.T) {
	last := 0
	for _, v := range StoreVersions() {
		if v.Version <= last {
			t.Errorf("version %d not greater than %d", v.Version, last)
		}
		last = v.Version
	}
	if CurrentStoreVersion() != last {
		t.Errorf("CurrentStoreVersion: got %d, want %d", CurrentStoreVersion(), last)
	}
}

func TestStoreVersionsCoverEveryTable(t *testing.T) {
	registered := map[string]bool{}
	for _, v := range StoreVersions() {
		for _, os := range v.Stores {
			if registered[os.Name] {
				t.Errorf("object store %s registered twice", os.Name)
			}
			registered[os.Name] = true
		}
	}

	for _, table := range Tables() {
		if !registered[table.Name] {
			t.Errorf("table %s has no document store counterpart", table.Name)
		}
	}
}
