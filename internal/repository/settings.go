// ABOUTME: Typed accessors over the opaque key/value settings surface.
// ABOUTME: Values are JSON-encoded; a missing or malformed key yields the fallback.
package repository

import (
	"encoding/json"

	"github.com/harperreed/fittrack/internal/storage"
)

// Well-known setting keys.
const (
	SettingUnits       = "units"
	SettingTheme       = "theme"
	SettingDefaultUser = "defaultUser"
)

// SettingsRepository provides typed access to the settings store.
type SettingsRepository struct {
	store storage.Store
}

// NewSettingsRepository creates a settings repository over a store.
func NewSettingsRepository(store storage.Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// GetString returns the string value for key, or fallback when the key is
// unset or not a JSON string.
func (r *SettingsRepository) GetString(key, fallback string) (string, error) {
	raw, err := r.store.GetSetting(key)
	if err != nil {
		return "", err
	}
	if raw == nil {
		return fallback, nil
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback, nil
	}
	return v, nil
}

// SetString stores a string value under key.
func (r *SettingsRepository) SetString(key, value string) error {
	return r.set(key, value)
}

// GetBool returns the boolean value for key, or fallback when the key is
// unset or not a JSON boolean.
func (r *SettingsRepository) GetBool(key string, fallback bool) (bool, error) {
	raw, err := r.store.GetSetting(key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return fallback, nil
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback, nil
	}
	return v, nil
}

// SetBool stores a boolean value under key.
func (r *SettingsRepository) SetBool(key string, value bool) error {
	return r.set(key, value)
}

// GetFloat returns the numeric value for key, or fallback when the key is
// unset or not a JSON number.
func (r *SettingsRepository) GetFloat(key string, fallback float64) (float64, error) {
	raw, err := r.store.GetSetting(key)
	if err != nil {
		return 0, err
	}
	if raw == nil {
		return fallback, nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback, nil
	}
	return v, nil
}

// SetFloat stores a numeric value under key.
func (r *SettingsRepository) SetFloat(key string, value float64) error {
	return r.set(key, value)
}

func (r *SettingsRepository) set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.store.SetSetting(key, data)
}
