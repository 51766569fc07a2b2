package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/saasfoundry/controlplane/pkg/cognito"
	"github.com/saasfoundry/controlplane/pkg/logger"
	"github.com/saasfoundry/controlplane/pkg/tenantstore"
)

// IdentityProvider creates identity records for new tenant users.
type IdentityProvider interface {
	CreateUser(ctx context.Context, params cognito.CreateUserParams) error
}

// TenantStore persists tenant metadata records.
type TenantStore interface {
	Create(ctx context.Context, tenant tenantstore.Tenant) error
}

// Registration is the validated sign-up input.
type Registration struct {
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Email      string `json:"email"`
	TenantName string `json:"tenant_name"`
	TenantTier string `json:"tenant_tier"`
}

// Validate checks that every field is present and the email is plausible.
func (r Registration) Validate() error {
	var errs []error
	for field, value := range map[string]string{
		"given_name":  r.GivenName,
		"family_name": r.FamilyName,
		"email":       r.Email,
		"tenant_name": r.TenantName,
		"tenant_tier": r.TenantTier,
	} {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, fmt.Errorf("%s is required", field))
		}
	}
	if r.Email != "" {
		at := strings.Index(r.Email, "@")
		if at <= 0 || at == len(r.Email)-1 || strings.ContainsAny(r.Email, " \t") {
			errs = append(errs, fmt.Errorf("email %q is not a valid address", r.Email))
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidInput}, errs...)...)
	}
	return nil
}

// Service registers tenants: it creates an identity record, then a tenant
// metadata record, in that order.
//
// The two writes are not transactional. When the metadata write fails after
// the identity write succeeded, the identity record is left orphaned and the
// failure is surfaced; reconciliation of orphans is an operational runbook
// concern, deliberately not compensated in code.
type Service struct {
	identity IdentityProvider
	tenants  TenantStore
	log      *slog.Logger
}

// NewService returns a registration Service.
func NewService(identity IdentityProvider, tenants TenantStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		identity: identity,
		tenants:  tenants,
		log:      log.With(logger.Component("registration")),
	}
}

// Register signs up a new tenant and returns the generated tenant id.
func (s *Service) Register(ctx context.Context, reg Registration) (string, error) {
	if err := reg.Validate(); err != nil {
		return "", err
	}

	tenantID := uuid.NewString()
	log := s.log.With(logger.TenantID(tenantID))

	err := s.identity.CreateUser(ctx, cognito.CreateUserParams{
		Email:      reg.Email,
		GivenName:  reg.GivenName,
		FamilyName: reg.FamilyName,
		TenantID:   tenantID,
	})
	if err != nil {
		log.ErrorContext(ctx, "identity creation failed",
			logger.Operation("create_user"),
			logger.Error(err),
		)
		return "", err
	}
	log.InfoContext(ctx, "identity record created")

	err = s.tenants.Create(ctx, tenantstore.Tenant{
		TenantID:   tenantID,
		TenantName: reg.TenantName,
		TenantTier: reg.TenantTier,
		FullName:   reg.GivenName + " " + reg.FamilyName,
	})
	if err != nil {
		// The identity record now has no matching metadata; flag it loudly
		// for the reconciliation runbook.
		log.ErrorContext(ctx, "tenant metadata write failed, identity record orphaned",
			logger.Operation("create_tenant"),
			logger.Error(err),
		)
		return "", err
	}

	log.InfoContext(ctx, "tenant registered",
		slog.String("tenant_tier", reg.TenantTier),
	)
	return tenantID, nil
}
