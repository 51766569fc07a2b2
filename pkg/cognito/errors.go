package cognito

import "errors"

// Predefined errors for the cognito package.
var (
	// ErrDuplicateUser indicates a user with the same email already exists in
	// the pool. Not retryable without user correction.
	ErrDuplicateUser = errors.New("user already exists")

	// ErrCreateUser indicates the identity pool rejected the creation for any
	// other reason.
	ErrCreateUser = errors.New("failed to create user")
)
