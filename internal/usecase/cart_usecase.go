package usecase

import (
	"context"
	"time"

	"github.com/espressoflow/pos-backend/internal/domain"
	"github.com/espressoflow/pos-backend/pkg/e"
	"github.com/espressoflow/pos-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Фиксированная ставка налога 8%, не конфигурируется.
var taxRate = decimal.NewFromFloat(0.08)

// CartUseCase реализует кассовый движок: открытый заказ, итоги и завершение продажи.
type CartUseCase struct {
	cartRepo    CartRepository
	productRepo ProductRepository
	saleRepo    SaleRepository
	producer    SaleEventProducer
	logger      logger.Logger
}

func NewCartUC(
	cartRepo CartRepository,
	productRepo ProductRepository,
	saleRepo SaleRepository,
	producer SaleEventProducer,
	logger logger.Logger,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		saleRepo:    saleRepo,
		producer:    producer,
		logger:      logger,
	}
}

// OpenCart создаёт пустой заказ кассы.
func (c *CartUseCase) OpenCart(ctx context.Context) (*CartRes, error) {
	const op = "CartUseCase.OpenCart"

	cart := domain.NewCart(uuid.NewString())
	if err := c.cartRepo.Create(ctx, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.toCartRes(cart), nil
}

// GetCart возвращает заказ с посчитанными итогами.
func (c *CartUseCase) GetCart(ctx context.Context, cartID string) (*CartRes, error) {
	const op = "CartUseCase.GetCart"

	cart, err := c.cartRepo.Get(ctx, cartID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.toCartRes(cart), nil
}

// AddItem добавляет товар в заказ: существующая строка увеличивается на единицу,
// иначе вставляется новая строка с количеством 1.
func (c *CartUseCase) AddItem(ctx context.Context, cartID string, productID string) (*CartRes, error) {
	const op = "CartUseCase.AddItem"

	cart, err := c.cartRepo.Get(ctx, cartID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := c.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if i := lineIndex(cart, productID); i >= 0 {
		cart.Lines[i].Quantity++
	} else {
		cart.Lines = append(cart.Lines, domain.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  1,
		})
	}

	if err := c.cartRepo.Save(ctx, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.toCartRes(cart), nil
}

// AdjustQuantity меняет количество строки на delta. Результат ограничивается
// нулём снизу; строка с нулевым количеством удаляется из заказа.
// Если товара в заказе нет — операция ничего не делает.
func (c *CartUseCase) AdjustQuantity(ctx context.Context, cartID string, productID string, delta int) (*CartRes, error) {
	const op = "CartUseCase.AdjustQuantity"

	cart, err := c.cartRepo.Get(ctx, cartID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	i := lineIndex(cart, productID)
	if i < 0 {
		return c.toCartRes(cart), nil
	}

	newQty := cart.Lines[i].Quantity + delta
	if newQty <= 0 {
		cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
	} else {
		cart.Lines[i].Quantity = newQty
	}

	if err := c.cartRepo.Save(ctx, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.toCartRes(cart), nil
}

// Checkout завершает продажу: формирует запись журнала, добавляет её в начало,
// списывает остатки по каждой строке (не ниже нуля) и очищает заказ.
// Эффекты выполняются синхронно в программном порядке.
func (c *CartUseCase) Checkout(ctx context.Context, req *CheckoutReq) (*SaleRes, error) {
	const op = "CartUseCase.Checkout"

	cart, err := c.cartRepo.Get(ctx, req.CartID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(cart.Lines) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyCart)
	}

	_, _, total := totals(cart)

	items := 0
	for _, line := range cart.Lines {
		items += line.Quantity
	}

	sale := domain.NewSale(uuid.NewString(), time.Now(), total, req.Method, items, req.ClientName)

	if err := c.saleRepo.Prepend(ctx, sale); err != nil {
		return nil, e.Wrap(op, err)
	}

	for _, line := range cart.Lines {
		if err := c.productRepo.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	if err := c.cartRepo.Delete(ctx, cart.ID); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Публикация события не влияет на исход продажи.
	if err := c.producer.PublishSaleCompleted(ctx, sale); err != nil {
		c.logger.Warnf("failed to publish sale event: %v", e.Wrap(op, err))
	}

	return NewSaleRes(sale), nil
}

// CancelCart отменяет заказ: журнал и остатки не меняются.
func (c *CartUseCase) CancelCart(ctx context.Context, cartID string) error {
	const op = "CartUseCase.CancelCart"

	if err := c.cartRepo.Delete(ctx, cartID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// totals считает subtotal, налог и сумму к оплате в центах.
// Налог округляется до цента (half away from zero).
func totals(cart *domain.Cart) (subtotal int64, tax int64, total int64) {
	for _, line := range cart.Lines {
		subtotal += line.UnitPrice * int64(line.Quantity)
	}

	tax = decimal.NewFromInt(subtotal).Mul(taxRate).Round(0).IntPart()
	total = subtotal + tax
	return subtotal, tax, total
}

// lineIndex возвращает индекс строки с данным товаром либо -1.
func lineIndex(cart *domain.Cart, productID string) int {
	for i, line := range cart.Lines {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}

func (c *CartUseCase) toCartRes(cart *domain.Cart) *CartRes {
	subtotal, tax, total := totals(cart)

	lines := make([]CartLineRes, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, CartLineRes{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			LineTotal: line.UnitPrice * int64(line.Quantity),
		})
	}

	return &CartRes{
		ID:       cart.ID,
		Lines:    lines,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
	}
}
