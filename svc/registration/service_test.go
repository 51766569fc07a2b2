package registration_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saasfoundry/controlplane/pkg/cognito"
	"github.com/saasfoundry/controlplane/pkg/tenantstore"
	"github.com/saasfoundry/controlplane/svc/registration"
)

type mockIdentity struct {
	params *cognito.CreateUserParams
	err    error
}

func (m *mockIdentity) CreateUser(_ context.Context, params cognito.CreateUserParams) error {
	m.params = &params
	return m.err
}

type mockStore struct {
	tenant *tenantstore.Tenant
	err    error
}

func (m *mockStore) Create(_ context.Context, tenant tenantstore.Tenant) error {
	m.tenant = &tenant
	return m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validRegistration() registration.Registration {
	return registration.Registration{
		GivenName:  "Jane",
		FamilyName: "Doe",
		Email:      "jane@example.com",
		TenantName: "Acme Corp",
		TenantTier: "premium",
	}
}

func TestServiceRegister(t *testing.T) {
	t.Parallel()

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		identity := &mockIdentity{}
		store := &mockStore{}
		svc := registration.NewService(identity, store, discardLogger())

		tenantID, err := svc.Register(context.Background(), validRegistration())
		require.NoError(t, err)
		require.NoError(t, uuid.Validate(tenantID), "tenant id must be a well-formed UUID")

		require.NotNil(t, identity.params)
		assert.Equal(t, "jane@example.com", identity.params.Email)
		assert.Equal(t, tenantID, identity.params.TenantID)

		require.NotNil(t, store.tenant)
		assert.Equal(t, tenantID, store.tenant.TenantID)
		assert.Equal(t, "Acme Corp", store.tenant.TenantName)
		assert.Equal(t, "premium", store.tenant.TenantTier)
		assert.Equal(t, "Jane Doe", store.tenant.FullName)
	})

	t.Run("UniqueIDs", func(t *testing.T) {
		t.Parallel()

		svc := registration.NewService(&mockIdentity{}, &mockStore{}, discardLogger())

		first, err := svc.Register(context.Background(), validRegistration())
		require.NoError(t, err)
		second, err := svc.Register(context.Background(), validRegistration())
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("DuplicateEmailSkipsMetadataWrite", func(t *testing.T) {
		t.Parallel()

		identity := &mockIdentity{err: errors.Join(cognito.ErrDuplicateUser, errors.New("UsernameExistsException"))}
		store := &mockStore{}
		svc := registration.NewService(identity, store, discardLogger())

		_, err := svc.Register(context.Background(), validRegistration())
		require.Error(t, err)
		assert.ErrorIs(t, err, cognito.ErrDuplicateUser)
		assert.Nil(t, store.tenant, "no metadata record may be created when identity creation fails")
	})

	t.Run("MetadataWriteFailureSurfaces", func(t *testing.T) {
		t.Parallel()

		identity := &mockIdentity{}
		store := &mockStore{err: errors.Join(tenantstore.ErrCreateTenant, errors.New("service unavailable"))}
		svc := registration.NewService(identity, store, discardLogger())

		_, err := svc.Register(context.Background(), validRegistration())
		require.Error(t, err)
		assert.ErrorIs(t, err, tenantstore.ErrCreateTenant)
		assert.NotNil(t, identity.params, "identity record was created and is now orphaned")
	})

	t.Run("IDCollisionSurfaces", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{err: errors.Join(tenantstore.ErrTenantExists, errors.New("conditional check failed"))}
		svc := registration.NewService(&mockIdentity{}, store, discardLogger())

		_, err := svc.Register(context.Background(), validRegistration())
		require.Error(t, err)
		assert.ErrorIs(t, err, tenantstore.ErrTenantExists)
	})

	t.Run("InvalidInput", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name   string
			mutate func(*registration.Registration)
		}{
			{"MissingGivenName", func(r *registration.Registration) { r.GivenName = "" }},
			{"MissingFamilyName", func(r *registration.Registration) { r.FamilyName = "  " }},
			{"MissingEmail", func(r *registration.Registration) { r.Email = "" }},
			{"MissingTenantName", func(r *registration.Registration) { r.TenantName = "" }},
			{"MissingTenantTier", func(r *registration.Registration) { r.TenantTier = "" }},
			{"BadEmail", func(r *registration.Registration) { r.Email = "not-an-address" }},
			{"EmailTrailingAt", func(r *registration.Registration) { r.Email = "jane@" }},
		}

		for _, tc := range tests {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()

				identity := &mockIdentity{}
				store := &mockStore{}
				svc := registration.NewService(identity, store, discardLogger())

				reg := validRegistration()
				tc.mutate(&reg)

				_, err := svc.Register(context.Background(), reg)
				require.Error(t, err)
				assert.ErrorIs(t, err, registration.ErrInvalidInput)
				assert.Nil(t, identity.params, "validation must run before any collaborator call")
				assert.Nil(t, store.tenant)
			})
		}
	})
}
