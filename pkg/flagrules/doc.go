// Package flagrules implements a declarative feature-flag rule engine.
//
// A Ruleset is an immutable snapshot mapping flag names to boolean flags,
// each carrying an ordered list of rules. A rule matches when all of its
// conditions hold against the per-request evaluation Context; the first
// matching rule decides the flag's value, and a flag with no matching rule
// falls back to its default.
//
// # Usage
//
//	rs, err := flagrules.ParseRuleset(raw)
//	if err != nil {
//		// Handle malformed configuration
//	}
//
//	features, err := flagrules.Evaluate(rs, flagrules.Context{"tier": "premium"})
//
// Evaluate is a pure function of its inputs: it performs no I/O, holds no
// state, and is safe to call concurrently from multiple requests sharing the
// same snapshot.
//
// # Conditions
//
// Two actions are supported. EQUALS holds when the context attribute exists
// and equals the condition value with no type coercion. KEY_IN_VALUE holds
// when the context attribute exists and is a member of the condition's value
// sequence. An attribute missing from the context is a non-match rather than
// an error, so incomplete contexts simply leave features off. An action the
// engine does not recognize is a configuration fault and surfaces as an
// error wrapping ErrUnknownAction.
package flagrules
