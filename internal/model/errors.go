package model

import "errors"

var (
	// ErrNotFound is returned when an entity does not exist or is
	// owned by someone else. Callers cannot tell the two apart.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateUser is returned when email or username is already taken.
	ErrDuplicateUser = errors.New("email or username already taken")
	// ErrInvalidCredentials is returned on any login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrCorruptCredential is returned when a stored password hash is malformed.
	ErrCorruptCredential = errors.New("stored credential is corrupt")
)

var (
	ErrWeakPassword     = errors.New("password must be at least 8 characters and contain upper, lower, digit and special characters")
	ErrPasswordMismatch = errors.New("password confirmation does not match")
	ErrInvalidInput     = errors.New("at least two numeric operands are required")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrUnknownOperation = errors.New("unknown operation type")
)
