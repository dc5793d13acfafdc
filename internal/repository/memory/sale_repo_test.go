package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/espressoflow/pos-backend/internal/domain"
	"github.com/espressoflow/pos-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaleRepoPrependPutsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSaleRepo([]domain.Sale{
		*domain.NewSale("s-old", time.Now(), 450, domain.PaymentCash, 1, ""),
	})

	require.NoError(t, repo.Prepend(ctx, domain.NewSale("s-new", time.Now(), 1200, domain.PaymentCard, 2, "Alice")))

	sales, err := repo.List(ctx)
	require.NoError(t, err)

	require.Len(t, sales, 2)
	assert.Equal(t, "s-new", sales[0].ID)
	assert.Equal(t, "s-old", sales[1].ID)
}
