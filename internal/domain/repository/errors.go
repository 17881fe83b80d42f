package repository

import "errors"

// Contract errors shared by all repository implementations.
var (
	// ErrNotFound is returned when no record matches the (owner, id) scope.
	// A record owned by a different user is reported the same way as a
	// missing one.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned by UserRepository.Create when the
	// normalized email already exists.
	ErrDuplicateEmail = errors.New("email already exists")
)
