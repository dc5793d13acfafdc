package usecase

import (
	"context"

	"github.com/espressoflow/pos-backend/internal/domain"
)

type ProductRepository interface {
	Insert(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	// DecrementStock уменьшает остаток на qty, не опускаясь ниже нуля.
	DecrementStock(ctx context.Context, id string, qty int) error
}

type SaleRepository interface {
	// Prepend добавляет продажу в начало журнала (журнал упорядочен от новых к старым).
	Prepend(ctx context.Context, sale *domain.Sale) error
	List(ctx context.Context) ([]domain.Sale, error)
}

type CartRepository interface {
	Create(ctx context.Context, cart *domain.Cart) error
	Get(ctx context.Context, id string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, id string) error
}

type SupplyRepository interface {
	List(ctx context.Context) ([]domain.Supply, error)
}

type ClientRepository interface {
	List(ctx context.Context) ([]domain.Client, error)
}

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type SessionRepository interface {
	Set(ctx context.Context, token string, user *domain.User) error
	Get(ctx context.Context, token string) (*domain.User, error)
	Delete(ctx context.Context, token string) error
}
