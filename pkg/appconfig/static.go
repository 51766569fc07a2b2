package appconfig

import (
	"context"

	"github.com/saasfoundry/controlplane/pkg/flagrules"
)

// StaticSource is a Source returning a fixed in-memory ruleset. It's useful
// for testing and local development without a configuration agent.
type StaticSource struct {
	Ruleset flagrules.Ruleset
	Version string
	Err     error
}

// Fetch returns the configured ruleset, version and error.
func (s *StaticSource) Fetch(_ context.Context) (flagrules.Ruleset, string, error) {
	if s.Err != nil {
		return nil, "", s.Err
	}
	return s.Ruleset, s.Version, nil
}
