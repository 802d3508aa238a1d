// Package usage records launch statistics that feed search ranking.
//
// Recording deliberately opens its own short-lived read-write connection
// rather than reusing the session's read-only one: the query connection
// never contends for the write lock, and the write-lock window stays as
// narrow as one upsert. Usage stats are best-effort telemetry - a failed
// record is dropped, never retried.
package usage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/novasearch/novasearch/internal/storage"
)

var (
	// ErrNilConn is returned when a Recorder is built without a connection
	ErrNilConn = errors.New("connection is nil")
	// ErrEmptyFilePath is returned when a launch is recorded without a path
	ErrEmptyFilePath = errors.New("file path is empty")
)

// Recorder writes launch statistics for one index file.
type Recorder struct {
	path string
	now  func() time.Time // overridable in tests
}

// New builds a Recorder from the query connection. Only the connection's
// path is used; its read-only handle is never touched.
func New(conn *storage.Conn) (*Recorder, error) {
	if conn == nil {
		return nil, ErrNilConn
	}
	return &Recorder{path: conn.Path(), now: time.Now}, nil
}

// recordSQL creates the first usage row with count 1, or bumps the existing
// one. A single atomic statement so racing launches never lose an increment.
const recordSQL = `
INSERT INTO usage_stats (file_id, launch_count, last_launched)
VALUES (?, 1, ?)
ON CONFLICT(file_id) DO UPDATE SET
    launch_count = launch_count + 1,
    last_launched = excluded.last_launched`

// RecordLaunch notes that filePath was launched. It returns false without
// error when the path is not indexed yet - launching a file the daemon
// hasn't seen is an expected race, not a failure. The write connection is
// closed before returning regardless of outcome.
func (r *Recorder) RecordLaunch(ctx context.Context, filePath string) (bool, error) {
	if filePath == "" {
		return false, ErrEmptyFilePath
	}

	db, err := storage.OpenWritable(ctx, r.path)
	if err != nil {
		return false, err
	}
	defer func() { _ = db.Close() }()

	var fileID int64
	err = db.QueryRowContext(ctx, "SELECT id FROM files WHERE path = ?", filePath).Scan(&fileID)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if _, err := db.ExecContext(ctx, recordSQL, fileID, r.now().Unix()); err != nil {
		return false, fmt.Errorf("failed to record launch: %w", err)
	}
	return true, nil
}

// Stats is a file's launch history.
type Stats struct {
	LaunchCount  int64
	LastLaunched int64 // unix seconds of the most recent launch
}

// Lookup reads the launch history for filePath over the open read-only
// connection. storage.ErrNotFound when the file was never launched or never
// indexed.
func Lookup(ctx context.Context, conn *storage.Conn, filePath string) (*Stats, error) {
	if conn == nil {
		return nil, ErrNilConn
	}
	db, err := conn.Handle()
	if err != nil {
		return nil, err
	}

	const query = `
SELECT u.launch_count, COALESCE(u.last_launched, 0)
FROM files f
JOIN usage_stats u ON f.id = u.file_id
WHERE f.path = ?`

	var st Stats
	err = db.QueryRowContext(ctx, query, filePath).Scan(&st.LaunchCount, &st.LastLaunched)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}
