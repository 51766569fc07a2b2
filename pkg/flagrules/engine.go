package flagrules

import (
	"errors"
	"fmt"
	"sort"
)

// Evaluate computes the set of enabled feature names for the given context.
//
// Flags are visited in sorted name order so results are deterministic
// regardless of map iteration. A flag whose rules reference an unknown
// action contributes an error (joined into the returned error) and is never
// reported enabled, but does not abort evaluation of the remaining flags.
// The returned slice is sorted.
func Evaluate(rs Ruleset, ctx Context) ([]string, error) {
	names := make([]string, 0, len(rs))
	for name := range rs {
		names = append(names, name)
	}
	sort.Strings(names)

	enabled := make([]string, 0, len(names))
	var errs []error
	for _, name := range names {
		on, err := EvaluateFlag(name, rs[name], ctx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if on {
			enabled = append(enabled, name)
		}
	}
	return enabled, errors.Join(errs...)
}

// EvaluateFlag resolves a single flag against the context. Rules are tried
// in declaration order and the first rule whose conditions all hold decides
// the outcome (its WhenMatch value). When no rule matches, the flag's
// Default applies.
func EvaluateFlag(name string, flag FeatureFlag, ctx Context) (bool, error) {
	for _, rule := range flag.Rules {
		matched, err := ruleMatches(rule, ctx)
		if err != nil {
			return false, fmt.Errorf("flag %q rule %q: %w", name, rule.Name, err)
		}
		if matched {
			return rule.WhenMatch, nil
		}
	}
	return flag.Default, nil
}

// ruleMatches reports whether every condition of the rule holds. It
// short-circuits on the first condition that does not.
func ruleMatches(rule Rule, ctx Context) (bool, error) {
	for _, cond := range rule.Conditions {
		holds, err := conditionHolds(cond, ctx)
		if err != nil {
			return false, err
		}
		if !holds {
			return false, nil
		}
	}
	return true, nil
}

// conditionHolds dispatches on the condition action. A key absent from the
// context is a non-match for every action, never an error; absent attributes
// leave features off rather than failing the request.
func conditionHolds(cond Condition, ctx Context) (bool, error) {
	value, present := ctx[cond.Key]

	switch cond.Action {
	case ActionEquals:
		return present && scalarEquals(value, cond.Value), nil
	case ActionKeyInValue:
		return present && memberOf(cond.Value, value), nil
	default:
		return false, errors.Join(ErrUnknownAction, fmt.Errorf("action %q", cond.Action))
	}
}

// scalarEquals compares two scalars without coercion. Values decoded from
// JSON compare as their decoded types (string, bool, float64).
func scalarEquals(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	default:
		return false
	}
}

// memberOf reports whether value is an element of the condition's value
// sequence. Non-sequence condition values never match.
func memberOf(set any, value any) bool {
	switch items := set.(type) {
	case []any:
		for _, item := range items {
			if scalarEquals(value, item) {
				return true
			}
		}
	case []string:
		s, ok := value.(string)
		if !ok {
			return false
		}
		for _, item := range items {
			if s == item {
				return true
			}
		}
	}
	return false
}
