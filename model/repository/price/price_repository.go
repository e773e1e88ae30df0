package price

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	priceEntity "product.GO/model/entity/price"
)

// Repository is the price lookup store. A miss is reported by the bool,
// never by an error.
type Repository interface {
	DeleteAll(ctx context.Context) error
	Save(ctx context.Context, p *priceEntity.Price) error
	FindByProductID(ctx context.Context, productID string) (priceEntity.Price, bool, error)
}

// GormRepository backs the store with a SQL table (sqlite or mysql).
type GormRepository struct {
	db *gorm.DB
}

var _ Repository = (*GormRepository)(nil)

// NewGormRepository migrates the price table and returns the repository.
func NewGormRepository(db *gorm.DB) (*GormRepository, error) {
	if err := db.AutoMigrate(&priceEntity.Price{}); err != nil {
		return nil, fmt.Errorf("migrate price table: %w", err)
	}
	return &GormRepository{db: db}, nil
}

func (r *GormRepository) DeleteAll(ctx context.Context) error {
	// gorm refuses unconditioned deletes without AllowGlobalUpdate.
	err := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&priceEntity.Price{}).Error
	if err != nil {
		return fmt.Errorf("delete prices: %w", err)
	}
	return nil
}

func (r *GormRepository) Save(ctx context.Context, p *priceEntity.Price) error {
	assignID(p)
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("save price %s: %w", p.ProductID, err)
	}
	return nil
}

func (r *GormRepository) FindByProductID(ctx context.Context, productID string) (priceEntity.Price, bool, error) {
	var p priceEntity.Price
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return priceEntity.Price{}, false, nil
	}
	if err != nil {
		return priceEntity.Price{}, false, fmt.Errorf("find price %s: %w", productID, err)
	}
	return p, true, nil
}

// Count returns the number of stored price rows.
func (r *GormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&priceEntity.Price{}).Count(&n).Error
	return n, err
}

func assignID(p *priceEntity.Price) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
}
