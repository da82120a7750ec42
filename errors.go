package mongovalidator

import "errors"

var (
	// ErrNameConflict is returned by Extend when the name is already registered.
	ErrNameConflict = errors.New("validator name already registered")

	ErrEmptyName = errors.New("validator name cannot be empty")
	ErrNilFunc   = errors.New("validator function cannot be nil")

	// ErrNotPredicate is returned by New when a library export that passes the
	// name filter is not a predicate.
	ErrNotPredicate = errors.New("library export is not a predicate")
)
