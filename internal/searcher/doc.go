// Package searcher executes ranked lookups against the file index.
//
// Matching is literal substring containment on the filename. Results are
// ordered by three tiers - exact filename match, prefix match, then any
// other substring - with launch count (descending) breaking ties inside a
// tier and a case-insensitive filename sort as the final tie-break. The
// result cap applies after ordering, so truncation never reorders.
//
//	s := searcher.New(conn)
//	results, err := s.Search(ctx, "document", 50)
//	for _, r := range results {
//	    fmt.Printf("%s  %s\n", r.Filename, r.Path)
//	}
//
// Every call produces a fresh caller-owned slice; nothing is cached.
package searcher
