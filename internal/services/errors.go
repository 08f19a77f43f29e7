package services

import "errors"

// Sentinel errors the handlers map onto HTTP statuses.
var (
	// ErrNotFound means the toggle subject (post, comment, reply, user)
	// does not resolve.
	ErrNotFound = errors.New("subject not found")

	// ErrSelfFollow means a user tried to follow itself.
	ErrSelfFollow = errors.New("cannot follow yourself")
)
