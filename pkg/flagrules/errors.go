package flagrules

import "errors"

// Predefined errors for the flagrules package.
var (
	// ErrMalformedRuleset indicates the ruleset document could not be decoded.
	ErrMalformedRuleset = errors.New("malformed feature ruleset")

	// ErrUnknownAction indicates a condition referenced an action the engine
	// does not implement. This is a configuration fault, not a runtime one.
	ErrUnknownAction = errors.New("unknown condition action")
)
