package appconfig

import "errors"

// Predefined errors for the appconfig package.
var (
	// ErrFetch indicates the configuration agent was unreachable or answered
	// with a failure status. Retrying is the caller's decision.
	ErrFetch = errors.New("failed to fetch configuration")

	// ErrMalformed indicates the agent answered but the document could not be
	// parsed as a feature ruleset. Retrying will not help until a corrected
	// configuration is deployed.
	ErrMalformed = errors.New("malformed configuration document")
)
