package storage

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyPath is returned when a connection is created without a database path
	ErrEmptyPath = errors.New("database path is empty")
	// ErrNotConnected is returned when an operation requires an open connection
	ErrNotConnected = errors.New("database is not connected")
	// ErrNotFound is returned when a requested row doesn't exist
	ErrNotFound = errors.New("not found")
)

// OpenError reports that the index could not be opened after exhausting
// every retry attempt against a busy database.
type OpenError struct {
	Path     string
	Attempts int
	Err      error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("could not open %s after %d attempts: %v", e.Path, e.Attempts, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// isTransient reports whether err is a busy/locked condition worth retrying.
// The indexer daemon may hold the write lock while it batches updates, so
// these resolve on their own; anything else is surfaced immediately.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if driverTransient(err) {
		return true
	}
	// Message-text fallback so both drivers classify wrapped errors the
	// same way.
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database is busy") ||
		strings.Contains(msg, "database table is locked")
}
