package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/espressoflow/pos-backend/internal/domain"
	"github.com/espressoflow/pos-backend/internal/repository/memory"
	"github.com/espressoflow/pos-backend/internal/usecase"
	"github.com/espressoflow/pos-backend/pkg/e"
	"github.com/espressoflow/pos-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProducer struct {
	published []*domain.Sale
	err       error
}

func (p *stubProducer) PublishSaleCompleted(_ context.Context, sale *domain.Sale) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, sale)
	return nil
}

type cartFixture struct {
	uc          *usecase.CartUseCase
	productRepo *memory.ProductRepo
	saleRepo    *memory.SaleRepo
	producer    *stubProducer
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()

	products := []domain.Product{
		*domain.NewProduct("p-espresso", "Espresso", "Coffee", 350, 150, "", ""),
		*domain.NewProduct("p-matcha", "Iced Matcha", "Tea", 500, 5, "", ""),
	}

	productRepo := memory.NewProductRepo(products)
	saleRepo := memory.NewSaleRepo(nil)
	producer := &stubProducer{}

	uc := usecase.NewCartUC(
		memory.NewCartRepo(),
		productRepo,
		saleRepo,
		producer,
		logger.NewSlogLogger(),
	)

	return &cartFixture{
		uc:          uc,
		productRepo: productRepo,
		saleRepo:    saleRepo,
		producer:    producer,
	}
}

func TestAddItemAccumulatesQuantity(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)

	cart, err := f.uc.OpenCart(ctx)
	require.NoError(t, err)
	require.Empty(t, cart.Lines)

	_, err = f.uc.AddItem(ctx, cart.ID, "p-espresso")
	require.NoError(t, err)

	res, err := f.uc.AddItem(ctx, cart.ID, "p-espresso")
	require.NoError(t, err)

	require.Len(t, res.Lines, 1)
	assert.Equal(t, 2, res.Lines[0].Quantity)
	assert.Equal(t, int64(700), res.Lines[0].LineTotal)
}

func TestAddItemUnknownProduct(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)

	cart, err := f.uc.OpenCart(ctx)
	require.NoError(t, err)

	_, err = f.uc.AddItem(ctx, cart.ID, "p-ghost")
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestCartTotals(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)

	cart, err := f.uc.OpenCart(ctx)
	require.NoError(t, err)

	// Два эспрессо и один матча: 2*350 + 500 = 1200 центов.
	_, err = f.uc.AddItem(ctx, cart.ID, "p-espresso")
	require.NoError(t, err)
	_, err = f.uc.AddItem(ctx, cart.ID, "p-espresso")
	require.NoError(t, err)
	res, err := f.uc.AddItem(ctx, cart.ID, "p-matcha")
	require.NoError(t, err)

	assert.Equal(t, int64(1200), res.Subtotal)
	assert.Equal(t, int64(96), res.Tax)
	assert.Equal(t, int64(1296), res.Total)
}

func TestAdjustQuantityRemovesLineAtZero(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)

	cart, err := f.uc.OpenCart(ctx)
	require.NoError(t, err)

	_, err = f.uc.AddItem(ctx, cart.ID, "p-espresso")
	require.NoError(t, err)

	res, err := f.uc.AdjustQuantity(ctx, cart.ID, "p-espresso", -1)
	require.NoError(t, err)

	assert.Empty(t, res.Lines)
	assert.Equal(t, int64(0), res.Total)
}

func TestAdjustQuantityUnknownProductIsNoop(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)

	cart, err := f.uc.OpenCart(ctx)
	require.NoError(t, err)

	_, err = f.uc.AddItem(ctx, cart.ID, "p-espresso")
	require.NoError(t, err)

	res, err := f.uc.AdjustQuantity(ctx, cart.ID, "p-ghost", 5)
	require.NoError(t, err)

	require.Len(t, res.Lines, 1)
	assert.Equal(t, 1, res.Lines[0].Quantity)
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)

	cart, err := f.uc.OpenCart(ctx)
	require.NoError(t, err)

	_, err = f.uc.AddItem(ctx, cart.ID, "p-espresso")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = f.uc.AddItem(ctx, cart.ID, "p-matcha")
		require.NoError(t, err)
	}

	sale, err := f.uc.Checkout(ctx, usecase.NewCheckoutReq(cart.ID, domain.PaymentCard, "Alice Johnson"))
	require.NoError(t, err)

	// 350 + 3*500 = 1850; налог 8% = 148.
	assert.Equal(t, int64(1998), sale.Total)
	assert.Equal(t, 4, sale.Items)
	assert.Equal(t, domain.PaymentCard, sale.PaymentMethod)
	assert.Equal(t, "Alice Johnson", sale.ClientName)

	// Продажа встаёт в начало журнала.
	sales, err := f.saleRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, sale.ID, sales[0].ID)

	// Остатки списаны, заказ закрыт, событие опубликовано.
	espresso, err := f.productRepo.GetByID(ctx, "p-espresso")
	require.NoError(t, err)
	assert.Equal(t, 149, espresso.Stock)

	_, err = f.uc.GetCart(ctx, cart.ID)
	assert.ErrorIs(t, err, e.ErrCartNotFound)

	require.Len(t, f.producer.published, 1)
	assert.Equal(t, sale.ID, f.producer.published[0].ID)
}

func TestCheckoutClampsStockAtZero(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)

	cart, err := f.uc.OpenCart(ctx)
	require.NoError(t, err)

	// Матчи на складе 5, в заказе 8.
	for i := 0; i < 8; i++ {
		_, err = f.uc.AddItem(ctx, cart.ID, "p-matcha")
		require.NoError(t, err)
	}

	_, err = f.uc.Checkout(ctx, usecase.NewCheckoutReq(cart.ID, domain.PaymentCash, ""))
	require.NoError(t, err)

	matcha, err := f.productRepo.GetByID(ctx, "p-matcha")
	require.NoError(t, err)
	assert.Equal(t, 0, matcha.Stock)
}

func TestCheckoutEmptyCart(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)

	cart, err := f.uc.OpenCart(ctx)
	require.NoError(t, err)

	_, err = f.uc.Checkout(ctx, usecase.NewCheckoutReq(cart.ID, domain.PaymentCash, ""))
	assert.ErrorIs(t, err, e.ErrEmptyCart)
}

func TestCheckoutSurvivesPublishFailure(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)
	f.producer.err = errors.New("broker unavailable")

	cart, err := f.uc.OpenCart(ctx)
	require.NoError(t, err)

	_, err = f.uc.AddItem(ctx, cart.ID, "p-espresso")
	require.NoError(t, err)

	sale, err := f.uc.Checkout(ctx, usecase.NewCheckoutReq(cart.ID, domain.PaymentDigital, ""))
	require.NoError(t, err)
	assert.NotEmpty(t, sale.ID)
}

func TestCancelCartHasNoEffects(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)

	cart, err := f.uc.OpenCart(ctx)
	require.NoError(t, err)

	_, err = f.uc.AddItem(ctx, cart.ID, "p-matcha")
	require.NoError(t, err)

	require.NoError(t, f.uc.CancelCart(ctx, cart.ID))

	sales, err := f.saleRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, sales)

	matcha, err := f.productRepo.GetByID(ctx, "p-matcha")
	require.NoError(t, err)
	assert.Equal(t, 5, matcha.Stock)

	_, err = f.uc.GetCart(ctx, cart.ID)
	assert.ErrorIs(t, err, e.ErrCartNotFound)
}
