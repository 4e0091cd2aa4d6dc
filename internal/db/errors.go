package db

import "errors"

// Domain-level database error sentinels.
var (
	// Place errors
	ErrPlaceNotFound   = errors.New("place not found")
	ErrPlaceNotPending = errors.New("place is not pending review")

	// User errors
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email is already registered")
	ErrUserNotPending = errors.New("user is not pending review")
)
