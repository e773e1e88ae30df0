package product

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	priceEntity "product.GO/model/entity/price"
	priceRepo "product.GO/model/repository/price"
)

// DefaultFixture is the price record written on startup.
func DefaultFixture() priceEntity.Price {
	return priceEntity.Price{ProductID: "72456", Value: "54.99", CurrencyCode: "USD"}
}

// Seeder resets the price store to a single fixture record.
type Seeder struct {
	prices  priceRepo.Repository
	fixture priceEntity.Price
}

func NewSeeder(prices priceRepo.Repository, fixture priceEntity.Price) *Seeder {
	return &Seeder{prices: prices, fixture: fixture}
}

// Seed deletes every price and inserts the fixture. The fixture is checked
// before anything is deleted.
func (s *Seeder) Seed(ctx context.Context) error {
	if err := ValidateFixture(s.fixture); err != nil {
		return err
	}
	if err := s.prices.DeleteAll(ctx); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	rec := s.fixture
	rec.ID = ""
	if err := s.prices.Save(ctx, &rec); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	slog.InfoContext(ctx, "price store seeded",
		"product_id", rec.ProductID,
		"value", rec.Value,
		"currency_code", rec.CurrencyCode,
	)
	return nil
}

// ValidateFixture rejects fixtures that could not be served back as a price.
func ValidateFixture(p priceEntity.Price) error {
	if p.ProductID == "" {
		return errors.New("seed fixture: product id is required")
	}
	if p.CurrencyCode == "" {
		return errors.New("seed fixture: currency code is required")
	}
	if _, err := decimal.NewFromString(p.Value); err != nil {
		return fmt.Errorf("seed fixture: value %q is not a decimal: %w", p.Value, err)
	}
	// strict-mode SQL stores reject oversized values only after DeleteAll has run
	switch {
	case len(p.ProductID) > priceEntity.MaxProductIDLen:
		return fmt.Errorf("seed fixture: product id longer than %d bytes", priceEntity.MaxProductIDLen)
	case len(p.Value) > priceEntity.MaxValueLen:
		return fmt.Errorf("seed fixture: value longer than %d bytes", priceEntity.MaxValueLen)
	case len(p.CurrencyCode) > priceEntity.MaxCurrencyCodeLen:
		return fmt.Errorf("seed fixture: currency code %q longer than %d bytes", p.CurrencyCode, priceEntity.MaxCurrencyCodeLen)
	}
	return nil
}
