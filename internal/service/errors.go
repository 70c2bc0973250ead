package service

import "errors"

var (
	// ErrInvalidInput marks a request the caller must fix before retrying.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks an expected absence, such as a postal code without
	// a precomputed radius entry.
	ErrNotFound = errors.New("not found")
)

// clampLimit returns def for non-positive limits and max for limits above it.
func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
