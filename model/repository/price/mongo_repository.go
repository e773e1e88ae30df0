package price

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	priceEntity "product.GO/model/entity/price"
)

const mongoCollection = "price"

type MongoRepository struct {
	collection *mongo.Collection
}

var _ Repository = (*MongoRepository)(nil)

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection(mongoCollection)}
}

// CreateIndexes ensures product_id is unique.
func (m *MongoRepository) CreateIndexes(ctx context.Context) error {
	_, err := m.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "product_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create price indexes: %w", err)
	}
	return nil
}

func (m *MongoRepository) DeleteAll(ctx context.Context) error {
	if _, err := m.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to delete prices: %w", err)
	}
	return nil
}

func (m *MongoRepository) Save(ctx context.Context, p *priceEntity.Price) error {
	assignID(p)
	opts := options.Replace().SetUpsert(true)
	if _, err := m.collection.ReplaceOne(ctx, bson.M{"_id": p.ID}, p, opts); err != nil {
		return fmt.Errorf("failed to save price %s: %w", p.ProductID, err)
	}
	return nil
}

func (m *MongoRepository) FindByProductID(ctx context.Context, productID string) (priceEntity.Price, bool, error) {
	var p priceEntity.Price
	err := m.collection.FindOne(ctx, bson.M{"product_id": productID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return priceEntity.Price{}, false, nil
	}
	if err != nil {
		return priceEntity.Price{}, false, fmt.Errorf("failed to find price %s: %w", productID, err)
	}
	return p, true, nil
}
