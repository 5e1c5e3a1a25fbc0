package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSpecialNotFound is returned when no special has the requested id.
	// The zero id never matches.
	ErrSpecialNotFound = errors.New("pizza special was not found")

	// ErrSpecialAlreadyExists is returned by Add when the catalog already
	// holds a special with the same id.
	ErrSpecialAlreadyExists = errors.New("pizza special already exists")

	// ErrEmptySpecialID is returned by Add for a special without an id.
	ErrEmptySpecialID = errors.New("pizza special id is empty")
)
