package http

import (
	"net/http"

	"github.com/espressoflow/pos-backend/internal/domain"
	"github.com/espressoflow/pos-backend/internal/usecase"
	"github.com/espressoflow/pos-backend/pkg/e"
	"github.com/espressoflow/pos-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

// openCart
//
//	@Summary		Открытие заказа
//	@Description	Создаёт пустой заказ кассы
//	@Tags			carts
//	@Produce		json
//	@Success		201	{object}	cartResponse	"Новый заказ"
//	@Failure		500	{object}	ErrorResponse	"Внутренняя ошибка"
//	@Router			/carts [post]
func (h *CartHandler) openCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartUsecase.OpenCart(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toCartResponse(cart))
}

// getCart
//
//	@Summary		Текущий заказ
//	@Description	Возвращает заказ с итогами: subtotal, налог и сумма к оплате
//	@Tags			carts
//	@Produce		json
//	@Param			cartID	path		string			true	"Идентификатор заказа"
//	@Success		200		{object}	cartResponse	"Заказ"
//	@Failure		404		{object}	ErrorResponse	"Заказ не найден"
//	@Router			/carts/{cartID} [get]
func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartUsecase.GetCart(r.Context(), chi.URLParam(r, "cartID"))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// addItem
//
//	@Summary		Добавление позиции в заказ
//	@Description	Добавляет единицу товара: существующая строка получает +1 к количеству
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			cartID	path		string			true	"Идентификатор заказа"
//	@Param			body	body		addItemRequest	true	"Товар"
//	@Success		200		{object}	cartResponse	"Обновлённый заказ"
//	@Failure		404		{object}	ErrorResponse	"Заказ или товар не найден"
//	@Router			/carts/{cartID}/items [post]
func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	if req.ProductID == "" {
		WriteError(w, e.ErrMissingFields)
		return
	}

	cart, err := h.cartUsecase.AddItem(r.Context(), chi.URLParam(r, "cartID"), req.ProductID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// adjustQuantity
//
//	@Summary		Изменение количества
//	@Description	Меняет количество на delta; нулевое и отрицательное количество убирает строку
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			cartID		path		string					true	"Идентификатор заказа"
//	@Param			productID	path		string					true	"Идентификатор товара"
//	@Param			body		body		adjustQuantityRequest	true	"Сдвиг количества"
//	@Success		200			{object}	cartResponse			"Обновлённый заказ"
//	@Failure		404			{object}	ErrorResponse			"Заказ не найден"
//	@Router			/carts/{cartID}/items/{productID} [patch]
func (h *CartHandler) adjustQuantity(w http.ResponseWriter, r *http.Request) {
	var req adjustQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	cart, err := h.cartUsecase.AdjustQuantity(r.Context(), chi.URLParam(r, "cartID"), chi.URLParam(r, "productID"), req.Delta)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// checkout
//
//	@Summary		Завершение продажи
//	@Description	Фиксирует продажу, списывает остатки и закрывает заказ
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			cartID	path		string			true	"Идентификатор заказа"
//	@Param			body	body		checkoutRequest	true	"Способ оплаты"
//	@Success		201		{object}	saleResponse	"Зафиксированная продажа"
//	@Failure		400		{object}	ErrorResponse	"Пустой заказ или неизвестный способ оплаты"
//	@Router			/carts/{cartID}/checkout [post]
func (h *CartHandler) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	method, ok := domain.ParsePaymentMethod(req.PaymentMethod)
	if !ok {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrInvalidPayment.Error(), req.PaymentMethod)
		WriteError(w, e.ErrInvalidPayment)
		return
	}

	sale, err := h.cartUsecase.Checkout(r.Context(), usecase.NewCheckoutReq(chi.URLParam(r, "cartID"), method, req.ClientName))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toSaleResponse(sale))
}

// cancelCart
//
//	@Summary		Отмена заказа
//	@Description	Закрывает заказ без продажи; каталог и журнал не меняются
//	@Tags			carts
//	@Produce		json
//	@Param			cartID	path		string					true	"Идентификатор заказа"
//	@Success		200		{object}	map[string]interface{}	"Заказ отменён"
//	@Failure		404		{object}	ErrorResponse			"Заказ не найден"
//	@Router			/carts/{cartID} [delete]
func (h *CartHandler) cancelCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cartUsecase.CancelCart(r.Context(), chi.URLParam(r, "cartID")); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"Cancelled": true,
	})
}
