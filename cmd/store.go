package cmd

import (
	"context"
	"fmt"

	"product.GO/config"
	priceEntity "product.GO/model/entity/price"
	priceRepo "product.GO/model/repository/price"
)

// openPriceStore connects the backend selected by PRICE_STORE. The returned
// close func releases the connection.
func openPriceStore(ctx context.Context, cfg *config.Config) (priceRepo.Repository, func(), error) {
	switch cfg.PriceStore {
	case config.StoreRedis:
		client, err := config.NewRedis(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return priceRepo.NewRedisRepository(client), func() { _ = client.Close() }, nil

	case config.StoreMongo:
		db, err := config.NewMongo(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		repo := priceRepo.NewMongoRepository(db)
		closeFn := func() { _ = db.Client().Disconnect(context.Background()) }
		if err := repo.CreateIndexes(ctx); err != nil {
			closeFn()
			return nil, nil, err
		}
		return repo, closeFn, nil

	case config.StoreSQLite, config.StoreMySQL:
		db, err := config.NewDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() { _ = sqlDB.Close() }
		repo, err := priceRepo.NewGormRepository(db)
		if err != nil {
			closeFn()
			return nil, nil, err
		}
		return repo, closeFn, nil
	}
	return nil, nil, fmt.Errorf("unknown price store %q", cfg.PriceStore)
}

func seedFixture(cfg *config.Config) priceEntity.Price {
	return priceEntity.Price{
		ProductID:    cfg.Seed.ProductID,
		Value:        cfg.Seed.Value,
		CurrencyCode: cfg.Seed.CurrencyCode,
	}
}
