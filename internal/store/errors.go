package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDuplicateGroup is returned when a group with the same name already
	// exists.
	ErrDuplicateGroup = errors.New("group name already exists")

	// ErrGroupNotFound is returned when no group has the requested id.
	ErrGroupNotFound = errors.New("group was not found")

	// ErrEventNotFound is returned when no event has the requested id.
	ErrEventNotFound = errors.New("event was not found")

	// ErrCollectionExists is returned when a canister id is registered twice.
	ErrCollectionExists = errors.New("collection already exists")

	// ErrCollectionNotFound is returned when the canister id is not a known
	// collection.
	ErrCollectionNotFound = errors.New("collection was not found")

	// ErrTokenExists is returned when a token id is minted twice.
	ErrTokenExists = errors.New("token already exists")

	// ErrTokenIDOutOfRange is returned when a token id above
	// models.MaxTokenID is minted.
	ErrTokenIDOutOfRange = errors.New("token id is out of range")

	// ErrTokenNotFound is returned when a token id does not exist in the
	// collection.
	ErrTokenNotFound = errors.New("token was not found")

	// ErrIdentityNotFound is returned when the client has no identity file.
	ErrIdentityNotFound = errors.New("identity file not found")

	// ErrCorruptedIdentity is returned when the identity file cannot be
	// decoded.
	ErrCorruptedIdentity = errors.New("identity file is corrupted")

	// ErrUnsupportedDriver is returned for an unknown database driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
