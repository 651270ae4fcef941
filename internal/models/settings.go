// ABOUTME: AppSetting model: generic key to opaque-JSON-value persistence escape hatch.
// ABOUTME: The storage core round-trips Value without interpreting it.
package models

import "encoding/json"

// AppSetting is one entry in the generic settings table. Value is opaque
// JSON owned by whichever feature wrote it.
type AppSetting struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt string          `json:"updatedAt"`
}
