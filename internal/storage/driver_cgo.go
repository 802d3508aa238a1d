//go:build cgosqlite
// +build cgosqlite

package storage

// This file is compiled when building with CGO and the cgosqlite tag.
//
// Build command:
//
//	CGO_ENABLED=1 go build -tags cgosqlite ./...
//
// Driver used: github.com/mattn/go-sqlite3

import (
	"errors"
	"fmt"

	sqlite3 "github.com/mattn/go-sqlite3"
)

const (
	// DriverName is the SQLite driver to use
	DriverName = "sqlite3"

	// BuildMode describes the current build configuration
	BuildMode = "cgo"
)

// readOnlyDSN builds a DSN that opens the index without ever taking the
// write lock.
func readOnlyDSN(path string) string {
	return fmt.Sprintf("file:%s?mode=ro", path)
}

// readWriteDSN builds a DSN for the short-lived usage write connection. The
// busy timeout lets racing upserts queue briefly instead of failing.
func readWriteDSN(path string) string {
	return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
}

// driverTransient reports whether err carries the driver's busy or locked
// result code.
func driverTransient(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.Code == sqlite3.ErrBusy || se.Code == sqlite3.ErrLocked
	}
	return false
}
