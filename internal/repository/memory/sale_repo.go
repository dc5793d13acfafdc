package memory

import (
	"context"
	"sync"

	"github.com/espressoflow/pos-backend/internal/domain"
)

// SaleRepo — журнал продаж в памяти, упорядоченный от новых к старым.
// Записи только добавляются и никогда не изменяются.
type SaleRepo struct {
	mu    sync.RWMutex
	sales []domain.Sale
}

func NewSaleRepo(seed []domain.Sale) *SaleRepo {
	sales := make([]domain.Sale, len(seed))
	copy(sales, seed)
	return &SaleRepo{sales: sales}
}

func (r *SaleRepo) Prepend(_ context.Context, sale *domain.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sales = append([]domain.Sale{*sale}, r.sales...)
	return nil
}

func (r *SaleRepo) List(_ context.Context) ([]domain.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Sale, len(r.sales))
	copy(result, r.sales)
	return result, nil
}
