package features

import (
	"context"
	"net/http"
)

// Headers populated by the upstream authorizer. The service trusts them; the
// transport in front of it must strip client-supplied values.
const (
	headerTenantID   = "X-Tenant-Id"
	headerTenantName = "X-Tenant-Name"
	headerTenantTier = "X-Tenant-Tier"
	headerFullName   = "X-Fullname"
)

// defaultTier applies when the authorizer supplies no tenant tier.
const defaultTier = "basic"

// Identity is the caller identity established by the upstream authorizer.
type Identity struct {
	TenantID   string
	TenantName string
	Tier       string
	FullName   string
}

type identityContextKey struct{}

// WithIdentity returns a context carrying the caller identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, id)
}

// IdentityFromContext retrieves the caller identity, reporting whether one
// was set.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey{}).(Identity)
	return id, ok
}

// IdentityMiddleware extracts the authorizer-supplied identity headers into
// the request context. Requests without a tenant id are rejected with 401
// before reaching any handler.
func IdentityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.Header.Get(headerTenantID)
		if tenantID == "" {
			http.Error(w, "missing tenant identity", http.StatusUnauthorized)
			return
		}

		tier := r.Header.Get(headerTenantTier)
		if tier == "" {
			tier = defaultTier
		}

		id := Identity{
			TenantID:   tenantID,
			TenantName: r.Header.Get(headerTenantName),
			Tier:       tier,
			FullName:   r.Header.Get(headerFullName),
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}
