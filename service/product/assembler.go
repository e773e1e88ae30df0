package product

import (
	"context"
	"log/slog"

	catalogEntity "product.GO/model/entity/catalog"
	priceEntity "product.GO/model/entity/price"
	priceRepo "product.GO/model/repository/price"
)

// Product is the catalog product information with its current price merged in.
type Product struct {
	SKU         string
	Information catalogEntity.ProductInformation
	Price       priceEntity.Price
}

type Assembler struct {
	prices priceRepo.Repository
}

func NewAssembler(prices priceRepo.Repository) *Assembler {
	return &Assembler{prices: prices}
}

// Assemble joins rec with its price by product id. A missing price, or a
// failing store, leaves Price zero; the read path never fails.
func (a *Assembler) Assemble(ctx context.Context, rec catalogEntity.Record) Product {
	info := rec.ProductInformation
	p := Product{SKU: rec.SKU, Information: info}

	found, ok, err := a.prices.FindByProductID(ctx, info.ProductID)
	switch {
	case err != nil:
		slog.WarnContext(ctx, "price lookup failed, serving empty price", "product_id", info.ProductID, "error", err)
	case !ok:
		slog.DebugContext(ctx, "no price for product", "product_id", info.ProductID)
	default:
		p.Price = found
	}
	return p
}
