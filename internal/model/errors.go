package model

import "errors"

var (
	// User related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUser      = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Token related errors
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")

	// Federated identity errors
	ErrInvalidAssertion = errors.New("invalid identity assertion")

	// Job related errors
	ErrJobNotFound = errors.New("job not found")
	ErrNotOwner    = errors.New("not the owner of this job entry")
)
