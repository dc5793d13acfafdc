package http

import (
	"time"

	"github.com/espressoflow/pos-backend/internal/usecase"
)

// Тела запросов.

type addProductRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       string `json:"price"` // "4.50"
	Stock       int    `json:"stock"`
	Description string `json:"description"`
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
}

type adjustQuantityRequest struct {
	Delta int `json:"delta"`
}

type checkoutRequest struct {
	PaymentMethod string `json:"payment_method"`
	ClientName    string `json:"client_name"`
}

type insightRequest struct {
	Prompt string `json:"prompt"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Тела ответов.

type productResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	PriceCents  int64  `json:"price_cents"`
	Stock       int    `json:"stock"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

type cartLineResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price_cents"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"line_total_cents"`
}

type cartResponse struct {
	ID       string             `json:"id"`
	Lines    []cartLineResponse `json:"lines"`
	Subtotal int64              `json:"subtotal_cents"`
	Tax      int64              `json:"tax_cents"`
	Total    int64              `json:"total_cents"`
}

type saleResponse struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	TotalCents    int64  `json:"total_cents"`
	PaymentMethod string `json:"payment_method"`
	Items         int    `json:"items"`
	ClientName    string `json:"client_name,omitempty"`
}

type summaryResponse struct {
	TotalRevenueCents int64 `json:"total_revenue_cents"`
	SalesCount        int   `json:"sales_count"`
	ProductCount      int   `json:"product_count"`
	LowStockAlerts    int   `json:"low_stock_alerts"`
}

type weeklyPointResponse struct {
	Day   string `json:"day"`
	Sales int64  `json:"sales"`
}

type weeklySalesResponse struct {
	Points     []weeklyPointResponse `json:"points"`
	SampleData bool                  `json:"sample_data"`
}

type insightResponse struct {
	Answer string `json:"answer"`
}

type exportObjectResponse struct {
	Key         string    `json:"key"`
	Size        int64     `json:"size"`
	GeneratedAt time.Time `json:"generated_at"`
}

type userResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

type sessionResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// Маппинг DTO usecase-слоя в JSON-представление.

func toProductResponse(p *usecase.ProductRes) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		PriceCents:  p.Price,
		Stock:       p.Stock,
		Description: p.Description,
		ImageURL:    p.ImageURL,
	}
}

func toProductListResponse(products []usecase.ProductRes) []productResponse {
	out := make([]productResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return out
}

func toCartResponse(c *usecase.CartRes) cartResponse {
	lines := make([]cartLineResponse, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, cartLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal,
		})
	}

	return cartResponse{
		ID:       c.ID,
		Lines:    lines,
		Subtotal: c.Subtotal,
		Tax:      c.Tax,
		Total:    c.Total,
	}
}

func toSaleResponse(s *usecase.SaleRes) saleResponse {
	return saleResponse{
		ID:            s.ID,
		Date:          s.Date.Format("2006-01-02"),
		TotalCents:    s.Total,
		PaymentMethod: string(s.PaymentMethod),
		Items:         s.Items,
		ClientName:    s.ClientName,
	}
}

func toSaleListResponse(sales []usecase.SaleRes) []saleResponse {
	out := make([]saleResponse, 0, len(sales))
	for i := range sales {
		out = append(out, toSaleResponse(&sales[i]))
	}
	return out
}

func toUserResponse(u *usecase.UserRes) userResponse {
	return userResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   string(u.Role),
		Avatar: u.Avatar,
	}
}
