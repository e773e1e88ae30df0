package graphqlserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	productService "product.GO/service/product"
)

type fixedProducts productService.Response

func (f fixedProducts) GetProduct(context.Context, string) productService.Response {
	return productService.Response(f)
}

func TestSchema_ProductQuery(t *testing.T) {
	schema, err := NewSchema(fixedProducts{
		ID:           "72456",
		Name:         "Pink Ralph Lauren Polo Shirt, Petite Small",
		CurrentPrice: productService.CurrentPrice{Value: "54.99", CurrencyCode: "USD"},
	})
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}

	res := schema.Exec(context.Background(),
		`query($id: ID!) { product(id: $id) { id name current_price { value currency_code } } }`,
		"", map[string]interface{}{"id": "1"})
	if len(res.Errors) > 0 {
		t.Fatalf("errors: %v", res.Errors)
	}
	assert.JSONEq(t,
		`{"product":{"id":"72456","name":"Pink Ralph Lauren Polo Shirt, Petite Small","current_price":{"value":"54.99","currency_code":"USD"}}}`,
		string(res.Data))
}

func TestSchema_EmptyPrice(t *testing.T) {
	schema, err := NewSchema(fixedProducts{})
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}
	res := schema.Exec(context.Background(), `{ product(id: "1") { current_price { value currency_code } } }`, "", nil)
	if len(res.Errors) > 0 {
		t.Fatalf("errors: %v", res.Errors)
	}
	assert.JSONEq(t, `{"product":{"current_price":{"value":"","currency_code":""}}}`, string(res.Data))
}
