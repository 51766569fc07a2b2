package flagrules

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Action identifies the comparison a condition performs against the
// evaluation context.
type Action string

const (
	// ActionEquals matches when the context value equals the condition value.
	// The comparison is type-sensitive; no coercion is performed.
	ActionEquals Action = "EQUALS"
	// ActionKeyInValue matches when the context value is a member of the
	// condition's value sequence.
	ActionKeyInValue Action = "KEY_IN_VALUE"
)

// Condition is a single predicate over one evaluation-context attribute.
type Condition struct {
	Action Action `json:"action"`
	Key    string `json:"key"`
	Value  any    `json:"value"`
}

// Rule holds an ordered set of conditions that must all hold (logical AND)
// for the rule to match.
type Rule struct {
	Name       string      `json:"-"`
	WhenMatch  bool        `json:"when_match"`
	Conditions []Condition `json:"conditions"`
}

// FeatureFlag is a named boolean toggle with an ordered list of rules.
// Rule order is the declaration order in the source document; the first
// matching rule wins.
type FeatureFlag struct {
	Default bool   `json:"default"`
	Rules   []Rule `json:"rules"`
}

// Ruleset is a complete flag snapshot keyed by flag name. Snapshots are
// immutable once parsed; updates arrive as whole new snapshots.
type Ruleset map[string]FeatureFlag

// Context is the per-request attribute bag rules are matched against.
// It is never persisted.
type Context map[string]any

// ParseRuleset decodes the wire format:
//
//	{"flag": {"default": bool, "rules": {"rule name": {"when_match": bool, "conditions": [...]}}}}
//
// Rule declaration order within each flag is preserved.
func ParseRuleset(data []byte) (Ruleset, error) {
	var rs Ruleset
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, errors.Join(ErrMalformedRuleset, err)
	}
	return rs, nil
}

// UnmarshalJSON decodes a flag while keeping the rules object in its
// declaration order, which encoding/json map decoding would lose.
func (f *FeatureFlag) UnmarshalJSON(data []byte) error {
	var raw struct {
		Default bool            `json:"default"`
		Rules   json.RawMessage `json:"rules"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	f.Default = raw.Default
	f.Rules = nil
	if len(raw.Rules) == 0 || bytes.Equal(raw.Rules, []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw.Rules))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("rules must be an object, got %v", tok)
	}

	for dec.More() {
		nameTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := nameTok.(string)
		if !ok {
			return fmt.Errorf("rule name must be a string, got %v", nameTok)
		}

		var rule Rule
		if err := dec.Decode(&rule); err != nil {
			return fmt.Errorf("rule %q: %w", name, err)
		}
		rule.Name = name
		f.Rules = append(f.Rules, rule)
	}

	_, err = dec.Token()
	return err
}
