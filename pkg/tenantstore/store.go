package tenantstore

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Client defines the table operations used by Store.
type Client interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Config contains tenant metadata table settings.
type Config struct {
	Table string `env:"TENANT_METADATA_TABLE_NAME,required"` // Table is the tenant metadata table name.
}

// Tenant is one tenant metadata record. Records are created once and never
// updated by this service.
type Tenant struct {
	TenantID   string `dynamodbav:"tenant_id"`
	TenantName string `dynamodbav:"tenant_name"`
	TenantTier string `dynamodbav:"tenant_tier"`
	FullName   string `dynamodbav:"fullname"`
}

// Store writes tenant metadata records to a DynamoDB-compatible table.
type Store struct {
	client Client
	table  string
}

// New returns a Store backed by the given client.
func New(client Client, cfg Config) *Store {
	return &Store{
		client: client,
		table:  cfg.Table,
	}
}

// Create inserts a tenant record. The write carries an
// attribute_not_exists(tenant_id) condition so a duplicate id can never
// silently overwrite an existing record; a failed condition surfaces as
// ErrTenantExists, any other storage failure as ErrCreateTenant.
func (s *Store) Create(ctx context.Context, tenant Tenant) error {
	item, err := attributevalue.MarshalMap(tenant)
	if err != nil {
		return errors.Join(ErrCreateTenant, err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(tenant_id)"),
	})
	if err != nil {
		var conflict *types.ConditionalCheckFailedException
		if errors.As(err, &conflict) {
			return errors.Join(ErrTenantExists, err)
		}
		return errors.Join(ErrCreateTenant, err)
	}
	return nil
}
