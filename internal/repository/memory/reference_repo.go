package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/espressoflow/pos-backend/internal/domain"
	"github.com/espressoflow/pos-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

// SupplyRepo — склад сырья, справочные данные.
type SupplyRepo struct {
	mu       sync.RWMutex
	supplies []domain.Supply
}

func NewSupplyRepo(seed []domain.Supply) *SupplyRepo {
	supplies := make([]domain.Supply, len(seed))
	copy(supplies, seed)
	return &SupplyRepo{supplies: supplies}
}

func (r *SupplyRepo) List(_ context.Context) ([]domain.Supply, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Supply, len(r.supplies))
	copy(result, r.supplies)
	return result, nil
}

// ClientRepo — база постоянных клиентов, справочные данные.
type ClientRepo struct {
	mu      sync.RWMutex
	clients []domain.Client
}

func NewClientRepo(seed []domain.Client) *ClientRepo {
	clients := make([]domain.Client, len(seed))
	copy(clients, seed)
	return &ClientRepo{clients: clients}
}

func (r *ClientRepo) List(_ context.Context) ([]domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Client, len(r.clients))
	copy(result, r.clients)
	return result, nil
}

// UserRepo — сотрудники, имеющие доступ к системе.
type UserRepo struct {
	mu    sync.RWMutex
	users []domain.User
}

func NewUserRepo(seed []domain.User) *UserRepo {
	users := make([]domain.User, len(seed))
	copy(users, seed)
	return &UserRepo{users: users}
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			user := u
			return &user, nil
		}
	}

	return nil, e.Wrap(whereami.WhereAmI(), e.ErrUserNotFound)
}
