package usecase_test

import (
	"context"
	"testing"

	"github.com/espressoflow/pos-backend/internal/domain"
	"github.com/espressoflow/pos-backend/internal/repository/memory"
	"github.com/espressoflow/pos-backend/internal/usecase"
	"github.com/espressoflow/pos-backend/pkg/e"
	"github.com/espressoflow/pos-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogUC(t *testing.T) *usecase.CatalogUseCase {
	t.Helper()

	products := []domain.Product{
		*domain.NewProduct("p-espresso", "Espresso", "Coffee", 350, 150, "", ""),
		*domain.NewProduct("p-latte", "Latte", "Coffee", 450, 80, "", ""),
		*domain.NewProduct("p-croissant", "Croissant", "Pastry", 300, 20, "", ""),
	}

	return usecase.NewCatalogUC(memory.NewProductRepo(products), logger.NewSlogLogger())
}

func TestAddProductValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     *usecase.AddProductReq
		wantErr error
	}{
		{
			name:    "empty name",
			req:     usecase.NewAddProductReq("   ", "Coffee", 350, 10, ""),
			wantErr: e.ErrProductNameRequired,
		},
		{
			name:    "zero price",
			req:     usecase.NewAddProductReq("Flat White", "Coffee", 0, 10, ""),
			wantErr: e.ErrPriceMustBePositive,
		},
		{
			name:    "negative price",
			req:     usecase.NewAddProductReq("Flat White", "Coffee", -100, 10, ""),
			wantErr: e.ErrPriceMustBePositive,
		},
		{
			name:    "negative stock",
			req:     usecase.NewAddProductReq("Flat White", "Coffee", 400, -1, ""),
			wantErr: e.ErrNegativeStock,
		},
	}

	uc := newCatalogUC(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.AddProduct(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAddProductAppendsToCatalog(t *testing.T) {
	ctx := context.Background()
	uc := newCatalogUC(t)

	created, err := uc.AddProduct(ctx, usecase.NewAddProductReq("Flat White", "Coffee", 475, 30, "Velvety microfoam"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.ImageURL)

	products, err := uc.ListProducts(ctx, usecase.NewListProductsReq("", ""))
	require.NoError(t, err)
	require.Len(t, products, 4)

	// Новая позиция встаёт в конец каталога.
	assert.Equal(t, "Flat White", products[3].Name)
}

func TestListProductsSearchIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	uc := newCatalogUC(t)

	products, err := uc.ListProducts(ctx, usecase.NewListProductsReq("LAT", "All"))
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, "Latte", products[0].Name)
}

func TestListProductsCategoryFilter(t *testing.T) {
	ctx := context.Background()
	uc := newCatalogUC(t)

	products, err := uc.ListProducts(ctx, usecase.NewListProductsReq("", "Pastry"))
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, "Croissant", products[0].Name)
}

func TestListProductsPreservesOrder(t *testing.T) {
	ctx := context.Background()
	uc := newCatalogUC(t)

	products, err := uc.ListProducts(ctx, usecase.NewListProductsReq("", "Coffee"))
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "Espresso", products[0].Name)
	assert.Equal(t, "Latte", products[1].Name)
}

func TestCategories(t *testing.T) {
	ctx := context.Background()
	uc := newCatalogUC(t)

	categories, err := uc.Categories(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"All", "Coffee", "Pastry"}, categories)
}
