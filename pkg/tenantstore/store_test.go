package tenantstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saasfoundry/controlplane/pkg/tenantstore"
)

type mockClient struct {
	input *dynamodb.PutItemInput
	err   error
}

func (m *mockClient) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	m.input = params
	if m.err != nil {
		return nil, m.err
	}
	return &dynamodb.PutItemOutput{}, nil
}

func stringAttr(t *testing.T, item map[string]types.AttributeValue, key string) string {
	t.Helper()
	attr, ok := item[key]
	require.True(t, ok, "item attribute %q missing", key)
	s, ok := attr.(*types.AttributeValueMemberS)
	require.True(t, ok, "item attribute %q is not a string", key)
	return s.Value
}

func TestStoreCreate(t *testing.T) {
	t.Parallel()

	tenant := tenantstore.Tenant{
		TenantID:   "5f7a0af2-5a50-4c7b-8a7c-123456789abc",
		TenantName: "Acme Corp",
		TenantTier: "premium",
		FullName:   "Jane Doe",
	}

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		client := &mockClient{}
		store := tenantstore.New(client, tenantstore.Config{Table: "tenant_metadata"})

		err := store.Create(context.Background(), tenant)
		require.NoError(t, err)

		require.NotNil(t, client.input)
		assert.Equal(t, "tenant_metadata", *client.input.TableName)
		require.NotNil(t, client.input.ConditionExpression)
		assert.Equal(t, "attribute_not_exists(tenant_id)", *client.input.ConditionExpression)

		assert.Equal(t, tenant.TenantID, stringAttr(t, client.input.Item, "tenant_id"))
		assert.Equal(t, "Acme Corp", stringAttr(t, client.input.Item, "tenant_name"))
		assert.Equal(t, "premium", stringAttr(t, client.input.Item, "tenant_tier"))
		assert.Equal(t, "Jane Doe", stringAttr(t, client.input.Item, "fullname"))
	})

	t.Run("IDCollision", func(t *testing.T) {
		t.Parallel()

		client := &mockClient{err: &types.ConditionalCheckFailedException{}}
		store := tenantstore.New(client, tenantstore.Config{Table: "tenant_metadata"})

		err := store.Create(context.Background(), tenant)
		require.Error(t, err)
		assert.ErrorIs(t, err, tenantstore.ErrTenantExists)
	})

	t.Run("StorageFailure", func(t *testing.T) {
		t.Parallel()

		client := &mockClient{err: errors.New("service unavailable")}
		store := tenantstore.New(client, tenantstore.Config{Table: "tenant_metadata"})

		err := store.Create(context.Background(), tenant)
		require.Error(t, err)
		assert.ErrorIs(t, err, tenantstore.ErrCreateTenant)
		assert.NotErrorIs(t, err, tenantstore.ErrTenantExists)
	})
}
