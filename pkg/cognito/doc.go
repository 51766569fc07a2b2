// Package cognito creates tenant users in a Cognito-compatible identity
// pool.
//
// The pool owns credential issuance and delivery: creating a user triggers
// an invitation email with a temporary password, so no secret material ever
// passes through this process. Each user carries a custom:tenant_id
// attribute binding the identity to its tenant.
//
// Provider takes a narrow Client interface covering only the operations it
// uses, so tests can substitute a mock without a real pool.
package cognito
