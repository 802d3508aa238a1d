package searcher

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/novasearch/novasearch/internal/storage"
)

// DefaultLimit caps result sets when the caller doesn't supply a limit.
const DefaultLimit = 50

// Result is one ranked row from the index. Slices of Result are produced
// fresh by every call and owned by the caller.
type Result struct {
	Filename     string
	Path         string
	FileType     *string // nil when the indexer left the column unset
	Size         int64
	ModifiedTime int64
}

// Searcher runs ranked queries over an open read-only connection.
type Searcher struct {
	conn *storage.Conn
}

// New binds a Searcher to conn. The caller keeps ownership of conn and must
// open it before searching; Search does not auto-open.
func New(conn *storage.Conn) *Searcher {
	return &Searcher{conn: conn}
}

// searchSQL ranks matches in three tiers, then by launch count so the files
// the user actually opens float up, then by filename. The LEFT JOIN keeps
// never-launched files in the result with usage 0.
const searchSQL = `
SELECT f.filename, f.path, f.file_type, f.size, f.modified_time
FROM files f
LEFT JOIN usage_stats u ON f.id = u.file_id
WHERE f.filename LIKE '%' || ? || '%' ESCAPE '\'
ORDER BY
    CASE
        WHEN f.filename = ? THEN 0
        WHEN f.filename LIKE ? || '%' ESCAPE '\' THEN 1
        ELSE 2
    END,
    COALESCE(u.launch_count, 0) DESC,
    f.filename COLLATE NOCASE
LIMIT ?`

// Search runs one ranked query for the given text. An empty query returns
// an empty result without touching the database - that is the "no query
// yet" state, not an error. A limit of zero or less falls back to
// DefaultLimit.
func (s *Searcher) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	db, err := s.conn.Handle()
	if err != nil {
		return nil, err
	}

	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	pattern := escapeLike(query)
	rows, err := db.QueryContext(ctx, searchSQL, pattern, query, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("search query failed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanResults(rows)
}

// mostUsedSQL lists launched files by launch count, most recent first on
// ties. Files with no usage history are excluded.
const mostUsedSQL = `
SELECT f.filename, f.path, f.file_type, f.size, f.modified_time
FROM files f
JOIN usage_stats u ON f.id = u.file_id
ORDER BY u.launch_count DESC, u.last_launched DESC
LIMIT ?`

// MostUsed returns the files launched most often through the panel.
func (s *Searcher) MostUsed(ctx context.Context, limit int) ([]Result, error) {
	db, err := s.conn.Handle()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := db.QueryContext(ctx, mostUsedSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("most-used query failed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanResults(rows)
}

func scanResults(rows *sql.Rows) ([]Result, error) {
	results := make([]Result, 0)
	for rows.Next() {
		var r Result
		var fileType sql.NullString
		var size, modified sql.NullInt64

		if err := rows.Scan(&r.Filename, &r.Path, &fileType, &size, &modified); err != nil {
			return nil, err
		}
		if fileType.Valid {
			r.FileType = &fileType.String
		}
		r.Size = size.Int64
		r.ModifiedTime = modified.Int64

		results = append(results, r)
	}
	return results, rows.Err()
}

// escapeLike makes query safe to embed in a LIKE pattern so matching stays
// literal substring containment.
func escapeLike(query string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(query)
}
