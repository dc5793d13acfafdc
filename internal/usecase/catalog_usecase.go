package usecase

import (
	"context"
	"strings"

	"github.com/espressoflow/pos-backend/internal/domain"
	"github.com/espressoflow/pos-backend/pkg/e"
	"github.com/espressoflow/pos-backend/pkg/logger"
	"github.com/google/uuid"
)

// Категория, к которой не привязан фильтр поиска.
const categoryAll = "All"

// CatalogUseCase реализует управление каталогом и поиск по нему.
type CatalogUseCase struct {
	productRepo ProductRepository
	logger      logger.Logger
}

func NewCatalogUC(productRepo ProductRepository, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// AddProduct добавляет новую позицию каталога со свежим идентификатором.
// Запрос отклоняется при пустом имени или неположительной цене.
func (c *CatalogUseCase) AddProduct(ctx context.Context, req *AddProductReq) (*ProductRes, error) {
	const op = "CatalogUseCase.AddProduct"

	if err := c.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	product := domain.NewProduct(
		uuid.NewString(),
		req.Name,
		req.Category,
		req.Price,
		req.Stock,
		req.Description,
		placeholderImageURL(),
	)

	if err := c.productRepo.Insert(ctx, product); err != nil {
		return nil, e.Wrap(op, err)
	}

	c.logger.Infof("product added: %s (%s)", product.Name, product.ID)
	return NewProductRes(product), nil
}

// ListProducts возвращает подпоследовательность каталога: имя содержит
// подстроку поиска без учёта регистра, категория совпадает с фильтром
// (или фильтр — "All"). Порядок каталога сохраняется.
func (c *CatalogUseCase) ListProducts(ctx context.Context, req *ListProductsReq) ([]ProductRes, error) {
	const op = "CatalogUseCase.ListProducts"

	products, err := c.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	search := strings.ToLower(req.Search)
	result := make([]ProductRes, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if req.Category != "" && req.Category != categoryAll && p.Category != req.Category {
			continue
		}
		result = append(result, *NewProductRes(&p))
	}

	return result, nil
}

// Categories возвращает "All" плюс различные категории каталога в порядке появления.
func (c *CatalogUseCase) Categories(ctx context.Context) ([]string, error) {
	const op = "CatalogUseCase.Categories"

	products, err := c.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	seen := make(map[string]struct{}, len(products))
	categories := []string{categoryAll}
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}

	return categories, nil
}

// validateProduct проверяет корректность входных данных запроса на добавление позиции.
func (c *CatalogUseCase) validateProduct(req *AddProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}

	if req.Price <= 0 {
		return e.ErrPriceMustBePositive
	}

	if req.Stock < 0 {
		return e.ErrNegativeStock
	}

	return nil
}

// placeholderImageURL возвращает адрес изображения-заглушки для новой позиции.
func placeholderImageURL() string {
	return "https://picsum.photos/200/200?random=" + uuid.NewString()[:8]
}
