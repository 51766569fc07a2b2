package features

import (
	"context"
	"errors"
	"log/slog"

	"github.com/saasfoundry/controlplane/pkg/appconfig"
	"github.com/saasfoundry/controlplane/pkg/flagrules"
	"github.com/saasfoundry/controlplane/pkg/logger"
)

// Service evaluates the current feature ruleset for a tenant. It holds no
// state between calls; each evaluation observes a fresh snapshot from the
// configuration source.
type Service struct {
	source appconfig.Source
	log    *slog.Logger
}

// NewService returns a Service reading snapshots from source.
func NewService(source appconfig.Source, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		source: source,
		log:    log.With(logger.Component("features")),
	}
}

// EnabledFeatures returns the names of the features enabled for the given
// tier, sorted. Fetch failures and malformed configuration both fail the
// call but are logged distinctly so operators can tell an unreachable agent
// from a bad deployment.
func (s *Service) EnabledFeatures(ctx context.Context, tier string) ([]string, error) {
	rs, version, err := s.source.Fetch(ctx)
	if err != nil {
		if errors.Is(err, appconfig.ErrMalformed) {
			s.log.ErrorContext(ctx, "configuration snapshot is malformed", logger.Error(err))
		} else {
			s.log.ErrorContext(ctx, "configuration source unreachable", logger.Error(err))
		}
		return nil, err
	}

	evalCtx := flagrules.Context{"tier": tier}

	enabled, err := flagrules.Evaluate(rs, evalCtx)
	if err != nil {
		s.log.ErrorContext(ctx, "ruleset contains invalid rules",
			logger.Error(err),
			logger.ConfigVersion(version),
		)
		return nil, err
	}

	s.log.InfoContext(ctx, "features evaluated",
		slog.String("tier", tier),
		slog.Int("enabled", len(enabled)),
		logger.ConfigVersion(version),
	)
	return enabled, nil
}
