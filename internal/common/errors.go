// Package common defines shared sentinel errors and helpers used across the
// server layers of linkboard. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors, rejected before any store write.
	ErrorValidation = errors.New("validation error")

	// ErrContentNotFound is returned when a vote references a content id
	// that does not exist.
	ErrContentNotFound = errors.New("content not found")

	// ErrVoteDirection is returned when a vote direction is not +1 or -1.
	ErrVoteDirection = errors.New("invalid vote direction")
)
