// ABOUTME: Generic app_settings key/value documents for the BadgerDB backend.
// ABOUTME: Values are opaque JSON round-tripped byte-for-byte.
package docstore

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

const settingStore = "app_settings"

// GetSetting retrieves the opaque JSON value for a key, or nil when unset.
func (s *Store) GetSetting(key string) (json.RawMessage, error) {
	setting, err := getDoc[models.AppSetting](s, settingStore, key)
	if err != nil {
		return nil, err
	}
	if setting == nil || len(setting.Value) == 0 {
		return nil, nil
	}
	return setting.Value, nil
}

// SetSetting upserts the opaque JSON value for a key.
func (s *Store) SetSetting(key string, value json.RawMessage) error {
	return s.putDoc(settingStore, key, &models.AppSetting{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// DeleteSetting removes a key. Deleting a missing key is not an error.
func (s *Store) DeleteSetting(key string) error {
	return s.deleteDoc(settingStore, key)
}

// GetAllSettings retrieves every stored setting ordered by key.
func (s *Store) GetAllSettings() ([]*models.AppSetting, error) {
	settings, err := listDocs[models.AppSetting](s, settingStore)
	if err != nil {
		return nil, err
	}
	sort.Slice(settings, func(i, j int) bool {
		return settings[i].Key < settings[j].Key
	})
	return settings, nil
}
