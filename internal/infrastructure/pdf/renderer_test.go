package pdf_test

import (
	"testing"
	"time"

	"github.com/espressoflow/pos-backend/internal/domain"
	"github.com/espressoflow/pos-backend/internal/infrastructure/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generatedAt = time.Date(2023, 10, 26, 12, 0, 0, 0, time.UTC)

func TestRenderSales(t *testing.T) {
	r := pdf.NewRenderer()

	data, err := r.RenderSales([]domain.Sale{
		*domain.NewSale("8f7c2a10-0000-0000-0000-000000000000", generatedAt, 1550, domain.PaymentCard, 3, "Alice Johnson"),
		*domain.NewSale("11112222-0000-0000-0000-000000000000", generatedAt, 450, domain.PaymentCash, 1, ""),
	}, generatedAt)
	require.NoError(t, err)

	require.True(t, len(data) > 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderInventory(t *testing.T) {
	r := pdf.NewRenderer()

	data, err := r.RenderInventory(
		[]domain.Product{*domain.NewProduct("p-1", "Espresso", "Coffee", 350, 150, "", "")},
		[]domain.Supply{{ID: "s-1", Name: "Sugar", Unit: "kg", Quantity: 2, Threshold: 2, Status: domain.SupplyCritical}},
		generatedAt,
	)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderClients(t *testing.T) {
	r := pdf.NewRenderer()

	data, err := r.RenderClients([]domain.Client{
		{ID: "c-1", Name: "Alice Johnson", Email: "alice@example.com", Points: 450, TotalSpent: 32050, LastVisit: generatedAt},
	}, generatedAt)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderEmptySections(t *testing.T) {
	r := pdf.NewRenderer()

	data, err := r.RenderSales(nil, generatedAt)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}
