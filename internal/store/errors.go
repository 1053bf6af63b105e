package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user cannot be registered
	// because another account already owns the same (lower-cased) email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrTrackIDAlreadyExists is returned when a shipment insert violates the
	// global uniqueness of track ids.
	ErrTrackIDAlreadyExists = errors.New("track id already exists")

	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("user not found")

	// ErrShipmentNotFound is returned when a shipment does not exist or is
	// owned by another user. The two cases are indistinguishable on purpose
	// so that callers cannot discover foreign ids.
	ErrShipmentNotFound = errors.New("shipment not found")

	// ErrQuoteNotFound is returned when no quote matches the id.
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrNotificationNotFound is returned when a notification does not exist
	// or is owned by another user.
	ErrNotificationNotFound = errors.New("notification not found")
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

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
