package shared

import "errors"

var (
	// ErrInvalidInput indicates a malformed or missing request field.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmailInUse indicates a registration attempt with a taken email.
	ErrEmailInUse = errors.New("email already in use")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAuthRequired occurs when no session cookie is present.
	ErrAuthRequired = errors.New("authentication required")
	// ErrInvalidSession occurs when the session token fails verification.
	ErrInvalidSession = errors.New("invalid session")
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
)
