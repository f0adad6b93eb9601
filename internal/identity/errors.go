package identity

import "errors"

var (
	// ErrDuplicateEmail signals a registration attempt for an email that is
	// already taken. Mapped to HTTP 409 at the handler boundary.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned for both unknown emails and wrong
	// passwords so responses never reveal which half of the pair failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrCorruptCredential signals a stored hash that bcrypt cannot parse.
	// Fatal for the request, never for the process.
	ErrCorruptCredential = errors.New("stored credential is corrupt")

	// ErrNotFound signals a missing user row.
	ErrNotFound = errors.New("user not found")
)
