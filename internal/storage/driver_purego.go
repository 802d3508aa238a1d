//go:build !cgosqlite
// +build !cgosqlite

package storage

// This file is compiled by default (no CGO required).
//
// Driver used: modernc.org/sqlite

import (
	"errors"
	"fmt"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	// DriverName is the SQLite driver to use
	DriverName = "sqlite"

	// BuildMode describes the current build configuration
	BuildMode = "purego"
)

// readOnlyDSN builds a DSN that opens the index without ever taking the
// write lock.
func readOnlyDSN(path string) string {
	return fmt.Sprintf("file:%s?mode=ro", path)
}

// readWriteDSN builds a DSN for the short-lived usage write connection. The
// busy timeout lets racing upserts queue briefly instead of failing.
func readWriteDSN(path string) string {
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
}

// driverTransient reports whether err carries the driver's busy or locked
// result code.
func driverTransient(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		code := se.Code() & 0xff // strip extended result bits
		return code == sqlite3.SQLITE_BUSY || code == sqlite3.SQLITE_LOCKED
	}
	return false
}
