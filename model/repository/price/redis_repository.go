package price

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	priceEntity "product.GO/model/entity/price"
)

const (
	redisKeyPrefix = "price:"
	redisIndexKey  = "price:index"
)

// RedisRepository stores each price as a hash under price:<productId> and
// tracks the product ids in a set so DeleteAll only touches its own keys.
type RedisRepository struct {
	client *redis.Client
}

var _ Repository = (*RedisRepository)(nil)

func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

func redisKey(productID string) string {
	return redisKeyPrefix + productID
}

func (r *RedisRepository) DeleteAll(ctx context.Context) error {
	ids, err := r.client.SMembers(ctx, redisIndexKey).Result()
	if err != nil {
		return fmt.Errorf("redis list prices: %w", err)
	}
	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, redisKey(id))
	}
	keys = append(keys, redisIndexKey)
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis delete prices: %w", err)
	}
	return nil
}

func (r *RedisRepository) Save(ctx context.Context, p *priceEntity.Price) error {
	assignID(p)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, redisKey(p.ProductID), p)
		pipe.SAdd(ctx, redisIndexKey, p.ProductID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis save price %s: %w", p.ProductID, err)
	}
	return nil
}

func (r *RedisRepository) FindByProductID(ctx context.Context, productID string) (priceEntity.Price, bool, error) {
	res := r.client.HGetAll(ctx, redisKey(productID))
	if err := res.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return priceEntity.Price{}, false, nil
		}
		return priceEntity.Price{}, false, fmt.Errorf("redis find price %s: %w", productID, err)
	}
	// HGETALL on a missing key is an empty map, not redis.Nil.
	if len(res.Val()) == 0 {
		return priceEntity.Price{}, false, nil
	}
	var p priceEntity.Price
	if err := res.Scan(&p); err != nil {
		return priceEntity.Price{}, false, fmt.Errorf("redis decode price %s: %w", productID, err)
	}
	return p, true, nil
}
