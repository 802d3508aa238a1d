package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// Conn owns the read-only handle to the index database. The connected flag
// is true iff the underlying handle is live and the most recent Open
// succeeded; every path that drops the handle clears the flag with it.
type Conn struct {
	path      string
	db        *sql.DB
	connected bool

	// Retry governs the open backoff. New fills in DefaultRetryConfig.
	Retry RetryConfig
}

// New allocates a disconnected handle for the index at path. It does not
// touch the filesystem; call Open to connect.
func New(path string) (*Conn, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	return &Conn{path: path, Retry: DefaultRetryConfig()}, nil
}

// Path returns the database file path the connection was created with.
func (c *Conn) Path() string { return c.path }

// Connected reports whether the connection is currently open.
func (c *Conn) Connected() bool { return c.connected }

// Handle returns the live database handle, or ErrNotConnected. Callers must
// not close the returned handle; ownership stays with the Conn.
func (c *Conn) Handle() (*sql.DB, error) {
	if !c.connected || c.db == nil {
		return nil, ErrNotConnected
	}
	return c.db, nil
}

// Open connects to the index read-only. A no-op when already connected.
// Busy/locked conditions are retried with capped exponential backoff since
// the indexer daemon may hold the write lock during a batch; any other
// failure surfaces immediately. Each failed attempt releases its partial
// handle before the next one. Open is synchronous and may block for the
// cumulative backoff, so latency-sensitive callers should offload it.
func (c *Conn) Open(ctx context.Context) error {
	if c.connected {
		return nil
	}

	attempt := 0
	db, attempts, err := retryWithBackoff(ctx, c.Retry, isTransient, func() (*sql.DB, error) {
		attempt++
		db, err := openDB(ctx, readOnlyDSN(c.path))
		if err != nil && isTransient(err) {
			log.Printf("index %s is busy (attempt %d of %d), retrying...", c.path, attempt, c.Retry.MaxAttempts)
		}
		return db, err
	})
	if err != nil {
		if isTransient(err) {
			return &OpenError{Path: c.path, Attempts: attempts, Err: err}
		}
		return fmt.Errorf("failed to open database: %w", err)
	}

	c.db = db
	c.connected = true
	return nil
}

// Close releases the handle and clears the connected flag. Idempotent and
// safe on a never-opened Conn; a later Open re-runs the retry protocol.
func (c *Conn) Close() {
	if c.db != nil {
		_ = c.db.Close()
		c.db = nil
	}
	c.connected = false
}

// openDB opens a single-connection handle and verifies it with a ping. The
// partial handle is released on failure so a retry starts clean.
func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, err
	}

	// SQLite works best with a single connection per handle
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// OpenWritable opens an independent read-write connection for the usage
// write path. No retry: the caller holds it for a single upsert and closes
// it unconditionally, keeping the write-lock contention window narrow.
func OpenWritable(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	return openDB(ctx, readWriteDSN(path))
}
