package catalog

import "github.com/japaniel/lexicore/pkg/lexerr"

// Kind and Error re-export the shared taxonomy from pkg/lexerr; catalog
// callers type-switch on catalog.Kind without importing lexerr directly.
type Kind = lexerr.Kind

const (
	KindNotReady    = lexerr.KindNotReady
	KindCorruption  = lexerr.KindCorruption
	KindBadQuery    = lexerr.KindBadQuery
	KindQueryFailed = lexerr.KindQueryFailed
)

type Error = lexerr.Error

func newNotReady(reason string, cause error) *Error {
	return lexerr.NewNotReady(reason, cause)
}

func newCorruption(reason string, cause error) *Error {
	return lexerr.NewCorruption(reason, cause)
}

// NewQueryFailed boxes an underlying SQL error as a recoverable
// QueryFailed error. Exported so the search package can wrap errors
// surfaced from catalog calls consistently.
func NewQueryFailed(reason string, cause error) *Error {
	return lexerr.NewQueryFailed(reason, cause)
}

// ErrSeedDatabaseNotFound, ErrSeedDatabaseNotReadable, and
// ErrInvalidConfiguration are the NotReady reasons. Open reports the
// first two; it never reports ErrInvalidConfiguration.
var (
	ErrSeedDatabaseNotFound    = "seed database not found"
	ErrSeedDatabaseNotReadable = "seed database not readable"
	ErrInvalidConfiguration    = "invalid configuration"
)

// Corruption reasons. Open and verify report the first three; neither
// reports ErrUnsupportedSchemaVersion.
var (
	ErrCorruptedDatabase        = "corrupted database"
	ErrSchemaMismatch           = "schema mismatch"
	ErrFTSOutOfSync             = "fts index out of sync with entries"
	ErrUnsupportedSchemaVersion = "unsupported schema version"
)
