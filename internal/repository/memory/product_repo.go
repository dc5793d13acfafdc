package memory

import (
	"context"
	"sync"

	"github.com/espressoflow/pos-backend/internal/domain"
	"github.com/espressoflow/pos-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

// ProductRepo хранит каталог в памяти. Порядок добавления сохраняется.
type ProductRepo struct {
	mu       sync.RWMutex
	products []domain.Product
	index    map[string]int // ID -> позиция в срезе
}

func NewProductRepo(seed []domain.Product) *ProductRepo {
	repo := &ProductRepo{
		products: make([]domain.Product, 0, len(seed)),
		index:    make(map[string]int, len(seed)),
	}
	for _, p := range seed {
		repo.index[p.ID] = len(repo.products)
		repo.products = append(repo.products, p)
	}
	return repo
}

func (r *ProductRepo) Insert(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.index[product.ID] = len(r.products)
	r.products = append(r.products, *product)
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	product := r.products[i]
	return &product, nil
}

func (r *ProductRepo) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Product, len(r.products))
	copy(result, r.products)
	return result, nil
}

// DecrementStock списывает остаток, не опуская его ниже нуля.
// Превышение остатка не считается ошибкой.
func (r *ProductRepo) DecrementStock(_ context.Context, id string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	newStock := r.products[i].Stock - qty
	if newStock < 0 {
		newStock = 0
	}
	r.products[i].Stock = newStock
	return nil
}
