// ABOUTME: Generic app_settings key/value persistence for the SQLite backend.
// ABOUTME: Values are opaque JSON round-tripped byte-for-byte.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

// GetSetting retrieves the opaque JSON value for a key, or nil when unset.
func (s *Store) GetSetting(key string) (json.RawMessage, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	var value sql.NullString
	err = db.QueryRow("SELECT value FROM app_settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get setting: %w", err)
	}
	if !value.Valid || value.String == "" {
		return nil, nil
	}
	return json.RawMessage(value.String), nil
}

// SetSetting upserts the opaque JSON value for a key.
func (s *Store) SetSetting(key string, value json.RawMessage) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO app_settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		key,
		string(value),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("set setting: %w", err)
	}
	return nil
}

// DeleteSetting removes a key. Deleting a missing key is not an error.
func (s *Store) DeleteSetting(key string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if _, err := db.Exec("DELETE FROM app_settings WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete setting: %w", err)
	}
	return nil
}

// GetAllSettings retrieves every stored setting.
func (s *Store) GetAllSettings() ([]*models.AppSetting, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT key, value, updated_at FROM app_settings ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []*models.AppSetting
	for rows.Next() {
		var a models.AppSetting
		var value sql.NullString
		if err := rows.Scan(&a.Key, &value, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		if value.Valid {
			a.Value = json.RawMessage(value.String)
		}
		settings = append(settings, &a)
	}
	return settings, rows.Err()
}
