// Package storage manages connections to the NovaSearch index database.
//
// The index file is shared with the indexer daemon, which may hold a write
// lock while it batches filesystem updates. The package therefore splits
// access into two roles:
//
//   - Conn: the long-lived read-only connection used for queries. Open
//     retries busy/locked conditions with capped exponential backoff and
//     never contends for the write lock.
//   - OpenWritable: a short-lived read-write connection used only for the
//     usage-stats upsert, opened and closed within a single call.
//
// # Basic Usage
//
//	conn, err := storage.New(config.DatabasePath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := conn.Open(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer conn.Close()
//
// Open blocks the calling goroutine for up to the cumulative backoff
// (about 3.1s over 5 attempts) when the daemon holds the write lock, so UI
// callers should run it off the latency-sensitive path.
//
// A Conn is not safe for concurrent use. The intended model is one
// goroutine per connection; callers that share one must serialize access
// externally.
//
// # Build Tags
//
// Two SQLite drivers are supported:
//
// Pure Go build (default):
//
//   - Uses modernc.org/sqlite
//
//   - No C compiler needed
//
//     CGO_ENABLED=0 go build ./...
//
// CGO build (cgosqlite tag):
//
//   - Uses github.com/mattn/go-sqlite3
//
//     CGO_ENABLED=1 go build -tags cgosqlite ./...
package storage
