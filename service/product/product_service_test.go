package product

import (
	"context"
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product.GO/service/catalog"
)

func TestService_GetProduct(t *testing.T) {
	ctx := context.Background()
	prices := gormPrices(t)
	require.NoError(t, NewSeeder(prices, DefaultFixture()).Seed(ctx))

	svc := NewService(catalog.DefaultLoader(), NewAssembler(prices))
	resp := svc.GetProduct(ctx, "72456")

	assert.Equal(t, Response{
		ID:           "72456",
		Name:         fixtureTitle,
		CurrentPrice: CurrentPrice{Value: "54.99", CurrencyCode: "USD"},
	}, resp)
}

func TestService_IgnoresRequestedID(t *testing.T) {
	ctx := context.Background()
	prices := newMemoryPrices(DefaultFixture())
	svc := NewService(catalog.DefaultLoader(), NewAssembler(prices))

	assert.Equal(t, svc.GetProduct(ctx, "72456"), svc.GetProduct(ctx, "1"))
	assert.Equal(t, []string{"72456", "72456"}, prices.lookups)
}

func TestService_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc := NewService(catalog.DefaultLoader(), NewAssembler(newMemoryPrices(DefaultFixture())))

	first, err := json.Marshal(svc.GetProduct(ctx, "1"))
	require.NoError(t, err)
	second, err := json.Marshal(svc.GetProduct(ctx, "1"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestService_NoPrice(t *testing.T) {
	svc := NewService(catalog.DefaultLoader(), NewAssembler(newMemoryPrices()))

	resp := svc.GetProduct(context.Background(), "72456")
	assert.Equal(t, "72456", resp.ID)
	assert.Equal(t, fixtureTitle, resp.Name)
	assert.Equal(t, CurrentPrice{}, resp.CurrentPrice)
}

func TestService_UnreadableDocument(t *testing.T) {
	prices := newMemoryPrices(DefaultFixture())
	svc := NewService(catalog.NewLoader(fstest.MapFS{}, catalog.DocumentName), NewAssembler(prices))

	resp := svc.GetProduct(context.Background(), "72456")
	assert.Equal(t, Response{}, resp)
	assert.Equal(t, []string{""}, prices.lookups)
}
