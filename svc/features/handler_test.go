package features_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saasfoundry/controlplane/pkg/appconfig"
	"github.com/saasfoundry/controlplane/svc/features"
)

func TestHandlerGetFeatures(t *testing.T) {
	t.Parallel()

	newRouter := func(source appconfig.Source) http.Handler {
		svc := features.NewService(source, discardLogger())
		return features.NewHandler(svc, discardLogger()).Router()
	}

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		router := newRouter(&appconfig.StaticSource{Ruleset: tierRuleset(), Version: "3"})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Tenant-Id", "t-1")
		req.Header.Set("X-Tenant-Name", "Acme Corp")
		req.Header.Set("X-Tenant-Tier", "premium")
		req.Header.Set("X-Fullname", "Jane Doe")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			FullName string   `json:"fullname"`
			Tenant   string   `json:"tenant"`
			Tier     string   `json:"tier"`
			Features []string `json:"features"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Jane Doe", body.FullName)
		assert.Equal(t, "Acme Corp", body.Tenant)
		assert.Equal(t, "premium", body.Tier)
		assert.Equal(t, []string{"analytics", "crm", "email"}, body.Features)
	})

	t.Run("TierDefaultsToBasic", func(t *testing.T) {
		t.Parallel()

		router := newRouter(&appconfig.StaticSource{Ruleset: tierRuleset()})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Tenant-Id", "t-1")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Tier     string   `json:"tier"`
			Features []string `json:"features"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "basic", body.Tier)
		assert.Equal(t, []string{"analytics", "crm"}, body.Features)
	})

	t.Run("MissingIdentity", func(t *testing.T) {
		t.Parallel()

		router := newRouter(&appconfig.StaticSource{Ruleset: tierRuleset()})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("SourceFailure", func(t *testing.T) {
		t.Parallel()

		router := newRouter(&appconfig.StaticSource{
			Err: errors.Join(appconfig.ErrFetch, errors.New("agent down")),
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Tenant-Id", "t-1")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var body struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Message)
	})

	t.Run("CORSAllowsAnyOrigin", func(t *testing.T) {
		t.Parallel()

		router := newRouter(&appconfig.StaticSource{Ruleset: tierRuleset()})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Tenant-Id", "t-1")
		req.Header.Set("Origin", "https://app.example.com")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("CORSPreflight", func(t *testing.T) {
		t.Parallel()

		router := newRouter(&appconfig.StaticSource{Ruleset: tierRuleset()})

		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		req.Header.Set("Access-Control-Request-Headers", "Authorization")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodGet)
	})
}

func TestIdentityContext(t *testing.T) {
	t.Parallel()

	t.Run("RoundTrip", func(t *testing.T) {
		t.Parallel()

		id := features.Identity{TenantID: "t-1", Tier: "premium"}
		ctx := features.WithIdentity(context.Background(), id)

		got, ok := features.IdentityFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, id, got)
	})

	t.Run("Absent", func(t *testing.T) {
		t.Parallel()

		_, ok := features.IdentityFromContext(context.Background())
		assert.False(t, ok)
	})
}
