package graphqlserver

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"product.GO/graphql"
	productService "product.GO/service/product"
)

// ProductGetter is the query side of the product service.
type ProductGetter interface {
	GetProduct(ctx context.Context, requestedID string) productService.Response
}

// RootResolver is the root for graphql-go.
type RootResolver struct {
	Products ProductGetter
}

// ProductArgs matches the product query arguments.
type ProductArgs struct {
	ID gql.ID
}

func (r *RootResolver) Product(ctx context.Context, args ProductArgs) *ProductResolver {
	resp := r.Products.GetProduct(ctx, string(args.ID))
	return &ProductResolver{resp: resp}
}

type ProductResolver struct {
	resp productService.Response
}

func (p *ProductResolver) ID() string   { return p.resp.ID }
func (p *ProductResolver) Name() string { return p.resp.Name }

// CurrentPrice resolves current_price.
func (p *ProductResolver) CurrentPrice() *PriceResolver {
	return &PriceResolver{price: p.resp.CurrentPrice}
}

type PriceResolver struct {
	price productService.CurrentPrice
}

func (p *PriceResolver) Value() string { return p.price.Value }

// CurrencyCode resolves currency_code.
func (p *PriceResolver) CurrencyCode() string { return p.price.CurrencyCode }

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(products ProductGetter) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema, &RootResolver{Products: products})
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
