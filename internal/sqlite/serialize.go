// ABOUTME: Shared serialization discipline for JSON-in-TEXT structured fields.
// ABOUTME: Parsing is defensive: NULL, empty, "undefined", "null" and garbage fall back to defaults.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"strings"
	"time"
)

// unmarshalColumn decodes a structured TEXT column, returning fallback for
// NULL, empty string, the literal strings "undefined" and "null", and
// malformed JSON. A corrupt field on one row must never fail a whole scan.
func unmarshalColumn[T any](raw sql.NullString, fallback T) T {
	if !raw.Valid {
		return fallback
	}
	s := strings.TrimSpace(raw.String)
	if s == "" || s == "undefined" || s == "null" {
		return fallback
	}
	var v T
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return fallback
	}
	return v
}

// jsonText marshals a structured value for a TEXT column.
func jsonText(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// jsonTextPtr marshals an optional structured value, writing NULL when the
// value is absent, never the literal string "undefined".
func jsonTextPtr[T any](v *T) (any, error) {
	if v == nil {
		return nil, nil
	}
	return jsonText(v)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// nullIfEmpty maps an empty string to NULL so optional TEXT columns stay
// distinguishable from present-but-empty values on other backends.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func stringValue(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func floatPtr(nf sql.NullFloat64) *float64 {
	if nf.Valid {
		v := nf.Float64
		return &v
	}
	return nil
}

func nullFloatPtr(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

// normalizeTime coerces date-like strings to RFC 3339 before storage.
// Unparseable values pass through untouched; this layer does not own
// richer temporal types.
func normalizeTime(s string) string {
	if s == "" {
		return ""
	}
	layouts := []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
	}
	return s
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}
