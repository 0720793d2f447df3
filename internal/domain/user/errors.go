package user

import "errors"

var (
	// ErrNotFound is returned when no user matches the lookup key.
	ErrNotFound = errors.New("user not found")

	// ErrEmailTaken is returned by Create when the email unique
	// constraint is violated.
	ErrEmailTaken = errors.New("email already in use")
)
