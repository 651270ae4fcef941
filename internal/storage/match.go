// ABOUTME: Shared name-search predicate used by every backend.
// ABOUTME: Case-insensitive substring match; no metacharacters, no pattern syntax.
package storage

import "strings"

// MatchesName reports whether name contains query, ignoring case. Both
// backends route name search through this predicate so results agree on
// every input, including queries containing % or _ and non-ASCII letters.
func MatchesName(name, query string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}
