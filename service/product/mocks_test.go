package product

import (
	"context"
	"errors"
	"sync"

	priceEntity "product.GO/model/entity/price"
)

var errStoreDown = errors.New("store down")

// memoryPrices is an in-memory price store that records lookups.
type memoryPrices struct {
	mu      sync.Mutex
	rows    map[string]priceEntity.Price
	lookups []string
	findErr error
	delErr  error
}

func newMemoryPrices(rows ...priceEntity.Price) *memoryPrices {
	m := &memoryPrices{rows: make(map[string]priceEntity.Price)}
	for _, r := range rows {
		m.rows[r.ProductID] = r
	}
	return m
}

func (m *memoryPrices) DeleteAll(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.delErr != nil {
		return m.delErr
	}
	m.rows = make(map[string]priceEntity.Price)
	return nil
}

func (m *memoryPrices) Save(_ context.Context, p *priceEntity.Price) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == "" {
		p.ID = "mem-" + p.ProductID
	}
	m.rows[p.ProductID] = *p
	return nil
}

func (m *memoryPrices) FindByProductID(_ context.Context, productID string) (priceEntity.Price, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups = append(m.lookups, productID)
	if m.findErr != nil {
		return priceEntity.Price{}, false, m.findErr
	}
	p, ok := m.rows[productID]
	return p, ok, nil
}

func (m *memoryPrices) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}
