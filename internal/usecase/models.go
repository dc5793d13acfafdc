package usecase

import (
	"time"

	"github.com/espressoflow/pos-backend/internal/domain"
)

// CATALOG USECASE

// AddProductReq — запрос на добавление позиции каталога.
type AddProductReq struct {
	Name        string
	Category    string
	Price       int64 // в центах
	Stock       int
	Description string
}

// ListProductsReq — фильтр каталога: подстрока имени и категория ("All" — без фильтра).
type ListProductsReq struct {
	Search   string
	Category string
}

// ProductRes — DTO позиции каталога для внешнего использования.
type ProductRes struct {
	ID          string
	Name        string
	Category    string
	Price       int64
	Stock       int
	Description string
	ImageURL    string
}

// CART USECASE

// CartLineRes — строка заказа с посчитанной суммой.
type CartLineRes struct {
	ProductID string
	Name      string
	UnitPrice int64
	Quantity  int
	LineTotal int64
}

// CartRes — заказ с итогами: subtotal, налог 8% и сумма к оплате.
type CartRes struct {
	ID       string
	Lines    []CartLineRes
	Subtotal int64
	Tax      int64
	Total    int64
}

// CheckoutReq — запрос на завершение продажи.
type CheckoutReq struct {
	CartID     string
	Method     domain.PaymentMethod
	ClientName string
}

// SaleRes — DTO завершённой продажи.
type SaleRes struct {
	ID            string
	Date          time.Time
	Total         int64
	PaymentMethod domain.PaymentMethod
	Items         int
	ClientName    string
}

// METRICS USECASE

// SummaryRes — сводные показатели панели.
type SummaryRes struct {
	TotalRevenue   int64
	SalesCount     int
	ProductCount   int
	LowStockAlerts int
}

// WeeklyPoint — точка недельного графика продаж.
type WeeklyPoint struct {
	Day   string
	Sales int64
}

// WeeklySalesRes — недельный график. SampleData помечает, что значения
// иллюстративные и не выводятся из журнала продаж.
type WeeklySalesRes struct {
	Points     []WeeklyPoint
	SampleData bool
}

// InsightContext — сводка данных, передаваемая текстовой модели вместе с вопросом.
type InsightContext struct {
	SalesCount int
	Products   []string // "Latte ($4.50)"
	Supplies   []string // "Sugar: CRITICAL"
}

type InsightReq struct {
	Prompt  string
	Context InsightContext
}

type InsightRes struct {
	Answer string
}

// REPORT USECASE

// ExportRes — сгенерированный документ отчёта.
type ExportRes struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportObjectRes — запись списка последних экспортов.
type ExportObjectRes struct {
	Key         string
	Size        int64
	GeneratedAt time.Time
}

// SESSION USECASE

type LoginReq struct {
	Email    string
	Password string
}

type UserRes struct {
	ID     string
	Name   string
	Email  string
	Role   domain.Role
	Avatar string
}

type SessionRes struct {
	Token string
	User  UserRes
}

// MAPPERS

func NewAddProductReq(name string, category string, price int64, stock int, description string) *AddProductReq {
	return &AddProductReq{
		Name:        name,
		Category:    category,
		Price:       price,
		Stock:       stock,
		Description: description,
	}
}

func NewListProductsReq(search string, category string) *ListProductsReq {
	return &ListProductsReq{
		Search:   search,
		Category: category,
	}
}

func NewProductRes(p *domain.Product) *ProductRes {
	return &ProductRes{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		Description: p.Description,
		ImageURL:    p.ImageURL,
	}
}

func NewCheckoutReq(cartID string, method domain.PaymentMethod, clientName string) *CheckoutReq {
	return &CheckoutReq{
		CartID:     cartID,
		Method:     method,
		ClientName: clientName,
	}
}

func NewSaleRes(s *domain.Sale) *SaleRes {
	return &SaleRes{
		ID:            s.ID,
		Date:          s.Date,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		Items:         s.Items,
		ClientName:    s.ClientName,
	}
}

func NewInsightReq(prompt string, context InsightContext) *InsightReq {
	return &InsightReq{
		Prompt:  prompt,
		Context: context,
	}
}

func NewLoginReq(email string, password string) *LoginReq {
	return &LoginReq{
		Email:    email,
		Password: password,
	}
}

func NewUserRes(u *domain.User) *UserRes {
	return &UserRes{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Avatar: u.Avatar,
	}
}
