package http

import (
	"net/http"

	"github.com/espressoflow/pos-backend/internal/usecase"
	"github.com/espressoflow/pos-backend/pkg/e"
	"github.com/espressoflow/pos-backend/pkg/logger"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// addProduct
//
//	@Summary		Добавление позиции меню
//	@Description	Создаёт новую позицию каталога
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			body	body		addProductRequest	true	"Позиция каталога"
//	@Success		201		{object}	productResponse		"Созданная позиция"
//	@Failure		400		{object}	ErrorResponse		"Ошибка валидации"
//	@Router			/products [post]
func (h *CatalogHandler) addProduct(w http.ResponseWriter, r *http.Request) {
	var req addProductRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	priceCents, err := parsePriceToCents(req.Price)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	product, err := h.catalogUsecase.AddProduct(r.Context(), usecase.NewAddProductReq(
		req.Name,
		req.Category,
		priceCents,
		req.Stock,
		req.Description,
	))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(product))
}

// listProducts
//
//	@Summary		Список позиций меню
//	@Description	Возвращает каталог с фильтрами по подстроке имени и категории
//	@Tags			products
//	@Produce		json
//	@Param			search		query		string			false	"Подстрока имени"
//	@Param			category	query		string			false	"Категория (All — без фильтра)"
//	@Success		200			{array}		productResponse	"Каталог"
//	@Failure		500			{object}	ErrorResponse	"Внутренняя ошибка"
//	@Router			/products [get]
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogUsecase.ListProducts(r.Context(), usecase.NewListProductsReq(
		r.URL.Query().Get("search"),
		r.URL.Query().Get("category"),
	))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductListResponse(products))
}

// listCategories
//
//	@Summary		Категории каталога
//	@Description	Возвращает "All" и категории в порядке появления
//	@Tags			products
//	@Produce		json
//	@Success		200	{array}		string			"Категории"
//	@Failure		500	{object}	ErrorResponse	"Внутренняя ошибка"
//	@Router			/products/categories [get]
func (h *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogUsecase.Categories(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, categories)
}
