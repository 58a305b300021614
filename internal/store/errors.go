package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUnknownBucket is returned when an operation targets a bucket name
	// that is not one of [Buckets].
	ErrUnknownBucket = errors.New("unknown library bucket")

	// ErrItemNotFound is returned when a delete targets an item key that
	// does not exist in the bucket.
	ErrItemNotFound = errors.New("library item was not found")

	// ErrItemNotSaved is returned when an upsert completes without error
	// but the number of affected rows is zero.
	ErrItemNotSaved = errors.New("library item was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back at this
	// point.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning column values during
	// result-set iteration fails.
	ErrScanningRows = errors.New("failed to scan library item rows")
)
