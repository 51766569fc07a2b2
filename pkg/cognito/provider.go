package cognito

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"
)

// tenantIDAttribute is the custom user-pool attribute linking a user to its
// tenant.
const tenantIDAttribute = "custom:tenant_id"

// Client defines the identity-pool operations used by Provider.
type Client interface {
	AdminCreateUser(ctx context.Context, params *cognitoidentityprovider.AdminCreateUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminCreateUserOutput, error)
}

// Config contains identity-pool settings.
type Config struct {
	UserPoolID string `env:"USER_POOL_ID,required"` // UserPoolID identifies the pool users are created in.
}

// Provider creates users in a Cognito-compatible identity pool. The pool
// itself delivers the temporary credential to the user's email; this package
// never handles passwords.
type Provider struct {
	client     Client
	userPoolID string
}

// NewProvider returns a Provider backed by the given client.
func NewProvider(client Client, cfg Config) *Provider {
	return &Provider{
		client:     client,
		userPoolID: cfg.UserPoolID,
	}
}

// CreateUserParams describes the identity record to create.
type CreateUserParams struct {
	Email      string
	GivenName  string
	FamilyName string
	TenantID   string
}

// CreateUser creates an identity record tagged with the tenant id. The email
// address doubles as the username. A user that already exists surfaces as
// ErrDuplicateUser; any other pool failure wraps ErrCreateUser with the
// provider's error code when available.
func (p *Provider) CreateUser(ctx context.Context, params CreateUserParams) error {
	_, err := p.client.AdminCreateUser(ctx, &cognitoidentityprovider.AdminCreateUserInput{
		UserPoolId: aws.String(p.userPoolID),
		Username:   aws.String(params.Email),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("given_name"), Value: aws.String(params.GivenName)},
			{Name: aws.String("family_name"), Value: aws.String(params.FamilyName)},
			{Name: aws.String("email"), Value: aws.String(params.Email)},
			{Name: aws.String(tenantIDAttribute), Value: aws.String(params.TenantID)},
		},
	})
	if err == nil {
		return nil
	}

	var exists *types.UsernameExistsException
	if errors.As(err, &exists) {
		return errors.Join(ErrDuplicateUser, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return errors.Join(ErrCreateUser, fmt.Errorf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage()))
	}
	return errors.Join(ErrCreateUser, err)
}
