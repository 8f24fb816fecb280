package store

import "errors"

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when a stored value cannot be scanned.
	ErrScanningRow = errors.New("failed to scan local storage row")
)

// ErrEncodingNotes is returned when the note collection cannot be
// serialized for storage.
var ErrEncodingNotes = errors.New("failed to encode notes")
