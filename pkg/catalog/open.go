package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/sync/semaphore"
)

// DefaultMaxConcurrentReads bounds the number of searches admitted past
// the catalog's gate at once, ahead of the *sql.DB connection pool, so
// a burst of cancelled callers never queues behind SQLite's own lock.
const DefaultMaxConcurrentReads = 8

// Catalog is the process-lifetime, read-only handle onto the bundled
// dictionary artifact. It is modeled as an explicit value owned by the
// caller rather than a package-level singleton; the outer binary
// (cmd/lexicore) is the only place that treats it as a shared default.
type Catalog struct {
	db   *sql.DB
	gate *semaphore.Weighted

	searchForward *sql.Stmt
	searchReverse *sql.Stmt
	fetchEntry    *sql.Stmt
}

// Handle is a scoped, released-on-every-exit-path view onto the shared
// connection pool, acquired per query and guaranteed to be released
// even on cancellation.
type Handle struct {
	cat *Catalog
}

// Release returns the handle's slot to the gate. Callers must invoke
// this on every exit path, including cancellation.
func (h *Handle) Release() {
	if h == nil {
		return
	}
	h.cat.gate.Release(1)
}

// Open opens the SQLite artifact at path read-only, applies the
// performance PRAGMAs, and verifies referential and FTS consistency. A
// non-nil error is always fatal (NotReady or Corruption) and should be
// surfaced to the caller once, never retried.
func Open(path string) (*Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, newNotReady(ErrSeedDatabaseNotFound, err)
		}
		return nil, newNotReady(ErrSeedDatabaseNotReadable, err)
	}

	dsn := fmt.Sprintf("file:%s?mode=ro&_query_only=1", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, newNotReady(ErrSeedDatabaseNotReadable, err)
	}

	pragmas := []string{
		"PRAGMA query_only = ON",
		"PRAGMA temp_store = MEMORY",
		"PRAGMA cache_size = -8000",
		"PRAGMA mmap_size = 268435456",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, newNotReady(ErrSeedDatabaseNotReadable, err)
		}
	}

	cat := &Catalog{db: db, gate: semaphore.NewWeighted(DefaultMaxConcurrentReads)}
	if err := cat.verify(); err != nil {
		db.Close()
		return nil, err
	}
	if err := cat.prepare(); err != nil {
		db.Close()
		return nil, newCorruption(ErrSchemaMismatch, err)
	}
	return cat, nil
}

// OpenFixture creates (or truncates) a SQLite file at path, applies the
// schema, and returns a writable *sql.DB for test/fixture population.
// This is a test convenience only — production artifacts are produced by
// a separate bundling pipeline — so it deliberately returns the raw
// *sql.DB rather than a *Catalog; call Open afterward to obtain the
// read-only query surface the rest of the package exposes.
func OpenFixture(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func (c *Catalog) verify() error {
	var integrity string
	if err := c.db.QueryRow("PRAGMA integrity_check").Scan(&integrity); err != nil {
		return newCorruption(ErrCorruptedDatabase, err)
	}
	if integrity != "ok" {
		return newCorruption(ErrCorruptedDatabase, fmt.Errorf("integrity_check reported %q", integrity))
	}

	fkRows, err := c.db.Query("PRAGMA foreign_key_check")
	if err != nil {
		return newCorruption(ErrCorruptedDatabase, err)
	}
	danglingRef := fkRows.Next()
	fkRows.Close()
	if danglingRef {
		return newCorruption(ErrCorruptedDatabase, fmt.Errorf("foreign_key_check reported dangling references"))
	}

	for _, name := range requiredTableNames {
		var count int
		err := c.db.QueryRow(
			"SELECT count(*) FROM sqlite_master WHERE name = ?", name,
		).Scan(&count)
		if err != nil {
			return newCorruption(ErrSchemaMismatch, err)
		}
		if count == 0 {
			return newCorruption(ErrSchemaMismatch, fmt.Errorf("missing table %q", name))
		}
	}

	var entryCount, ftsCount int64
	if err := c.db.QueryRow("SELECT count(*) FROM dictionary_entries").Scan(&entryCount); err != nil {
		return newCorruption(ErrSchemaMismatch, err)
	}
	if err := c.db.QueryRow("SELECT count(*) FROM dictionary_fts").Scan(&ftsCount); err != nil {
		return newCorruption(ErrFTSOutOfSync, err)
	}
	if entryCount != ftsCount {
		return newCorruption(ErrFTSOutOfSync, fmt.Errorf("entries=%d fts_rows=%d", entryCount, ftsCount))
	}

	return nil
}

func (c *Catalog) prepare() error {
	var err error
	c.searchForward, err = c.db.Prepare(searchForwardSQL)
	if err != nil {
		return fmt.Errorf("prepare search_forward: %w", err)
	}
	// search_reverse's WHERE/ORDER BY clause varies with the size of the
	// caller's canonical set, so it is built and prepared per call in
	// queries.go rather than once here.
	c.fetchEntry, err = c.db.Prepare(fetchEntrySQL)
	if err != nil {
		return fmt.Errorf("prepare fetch_entry: %w", err)
	}
	return nil
}

// Acquire blocks until a slot in the shared read-only pool is available
// or ctx is cancelled. The catalog methods that take a Handle do not
// release it: the caller must call Handle.Release on every exit path,
// including cancellation.
func (c *Catalog) Acquire(ctx context.Context) (*Handle, error) {
	if err := c.gate.Acquire(ctx, 1); err != nil {
		return nil, NewQueryFailed("acquire connection", err)
	}
	return &Handle{cat: c}, nil
}

// Close releases the underlying database connection. The Catalog must
// not be used after Close returns.
func (c *Catalog) Close() error {
	if c.searchForward != nil {
		c.searchForward.Close()
	}
	if c.fetchEntry != nil {
		c.fetchEntry.Close()
	}
	return c.db.Close()
}
