package memory_test

import (
	"context"
	"testing"

	"github.com/espressoflow/pos-backend/internal/domain"
	"github.com/espressoflow/pos-backend/internal/repository/memory"
	"github.com/espressoflow/pos-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepoInsertAndGet(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepo(nil)

	product := domain.NewProduct("p-1", "Espresso", "Coffee", 350, 150, "", "")
	require.NoError(t, repo.Insert(ctx, product))

	got, err := repo.GetByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Espresso", got.Name)

	_, err = repo.GetByID(ctx, "p-2")
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestProductRepoListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepo([]domain.Product{
		*domain.NewProduct("p-1", "Espresso", "Coffee", 350, 150, "", ""),
		*domain.NewProduct("p-2", "Latte", "Coffee", 450, 80, "", ""),
	})

	require.NoError(t, repo.Insert(ctx, domain.NewProduct("p-3", "Croissant", "Pastry", 300, 20, "", "")))

	products, err := repo.List(ctx)
	require.NoError(t, err)

	require.Len(t, products, 3)
	assert.Equal(t, "Espresso", products[0].Name)
	assert.Equal(t, "Croissant", products[2].Name)
}

func TestProductRepoDecrementStockClampsAtZero(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepo([]domain.Product{
		*domain.NewProduct("p-1", "Avocado Toast", "Food", 850, 5, "", ""),
	})

	require.NoError(t, repo.DecrementStock(ctx, "p-1", 8))

	got, err := repo.GetByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock)

	assert.ErrorIs(t, repo.DecrementStock(ctx, "p-ghost", 1), e.ErrProductNotFound)
}
