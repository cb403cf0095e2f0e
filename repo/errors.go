package repo

import "errors"

// Sentinel errors returned by repositories. Controllers translate these
// into HTTP statuses; anything else is treated as a backend failure.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrValidation = errors.New("invalid input")
)
