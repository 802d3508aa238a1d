package storage

import (
	"context"
	"database/sql"
)

// Schema mirrors the index layout owned by the indexer daemon: the files
// table it writes, the usage_stats table this client writes, and the
// daemon's metadata key/value table. The live database is created by the
// daemon; this copy exists so tests and dev tooling can build fixture
// indexes with the same shape.
const Schema = `
CREATE TABLE IF NOT EXISTS files (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    filename TEXT NOT NULL,
    path TEXT NOT NULL UNIQUE,
    size INTEGER NOT NULL,
    modified_time INTEGER NOT NULL,
    file_type TEXT NOT NULL,
    indexed_time INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS usage_stats (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    file_id INTEGER NOT NULL UNIQUE,
    launch_count INTEGER NOT NULL DEFAULT 0,
    last_launched INTEGER,
    FOREIGN KEY (file_id) REFERENCES files (id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_filename ON files(filename COLLATE NOCASE);
CREATE INDEX IF NOT EXISTS idx_path ON files(path COLLATE NOCASE);
CREATE INDEX IF NOT EXISTS idx_modified_time ON files(modified_time);
CREATE INDEX IF NOT EXISTS idx_usage_file_id ON usage_stats(file_id);
CREATE INDEX IF NOT EXISTS idx_usage_launch_count ON usage_stats(launch_count DESC);
`

// CreateSchema applies the schema to db. Safe to call on an existing index.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	return err
}
