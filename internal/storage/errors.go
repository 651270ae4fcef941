// ABOUTME: Sentinel errors for the storage contract.
// ABOUTME: Not-found is represented by nil returns, never by an error.
package storage

import "errors"

// ErrNotInitialized is returned when a backend is used before Initialize
// has completed. It is distinct from "no data found", which every lookup
// signals by returning nil.
var ErrNotInitialized = errors.New("storage not initialized")
