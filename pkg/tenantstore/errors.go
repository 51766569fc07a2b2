package tenantstore

import "errors"

// Predefined errors for the tenantstore package.
var (
	// ErrTenantExists indicates a record with the same tenant id is already
	// present. With freshly generated UUIDs this should never happen, but a
	// collision must not be silently swallowed.
	ErrTenantExists = errors.New("tenant record already exists")

	// ErrCreateTenant indicates the storage service rejected the write or was
	// unavailable.
	ErrCreateTenant = errors.New("failed to create tenant record")
)
