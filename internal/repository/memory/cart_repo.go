package memory

import (
	"context"
	"sync"

	"github.com/espressoflow/pos-backend/internal/domain"
	"github.com/espressoflow/pos-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

// CartRepo хранит открытые заказы касс. Заказы не переживают перезапуск.
type CartRepo struct {
	mu    sync.RWMutex
	carts map[string]domain.Cart
}

func NewCartRepo() *CartRepo {
	return &CartRepo{
		carts: make(map[string]domain.Cart),
	}
}

func (r *CartRepo) Create(_ context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[cart.ID] = cloneCart(cart)
	return nil
}

func (r *CartRepo) Get(_ context.Context, id string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[id]
	if !ok {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrCartNotFound)
	}

	clone := cloneCart(&cart)
	return &clone, nil
}

func (r *CartRepo) Save(_ context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[cart.ID]; !ok {
		return e.Wrap(whereami.WhereAmI(), e.ErrCartNotFound)
	}

	r.carts[cart.ID] = cloneCart(cart)
	return nil
}

func (r *CartRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[id]; !ok {
		return e.Wrap(whereami.WhereAmI(), e.ErrCartNotFound)
	}

	delete(r.carts, id)
	return nil
}

// cloneCart копирует заказ вместе со строками, чтобы вызывающий код
// не делил срез с хранилищем.
func cloneCart(cart *domain.Cart) domain.Cart {
	clone := *cart
	clone.Lines = make([]domain.CartLine, len(cart.Lines))
	copy(clone.Lines, cart.Lines)
	return clone
}
