package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/espressoflow/pos-backend/internal/domain"
	"github.com/espressoflow/pos-backend/pkg/e"
	"github.com/espressoflow/pos-backend/pkg/logger"
)

// Ответ-заглушка при недоступности текстовой модели. Ошибка наружу не уходит.
const insightFallback = "Sorry, I am having trouble connecting to the AI brain right now. Please check your API key."

// MetricsUseCase — чтение сводных показателей панели и проксирование
// вопросов к текстовой модели.
type MetricsUseCase struct {
	saleRepo    SaleRepository
	productRepo ProductRepository
	supplyRepo  SupplyRepository
	insight     InsightInfra
	logger      logger.Logger
}

func NewMetricsUC(
	saleRepo SaleRepository,
	productRepo ProductRepository,
	supplyRepo SupplyRepository,
	insight InsightInfra,
	logger logger.Logger,
) *MetricsUseCase {
	return &MetricsUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		supplyRepo:  supplyRepo,
		insight:     insight,
		logger:      logger,
	}
}

// Summary — чистые свёртки по журналу и складу: общая выручка и число
// позиций сырья со статусом, отличным от OK.
func (m *MetricsUseCase) Summary(ctx context.Context) (*SummaryRes, error) {
	const op = "MetricsUseCase.Summary"

	sales, err := m.saleRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	supplies, err := m.supplyRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err := m.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var revenue int64
	for _, s := range sales {
		revenue += s.Total
	}

	lowStock := 0
	for _, s := range supplies {
		if s.Status != domain.SupplyOK {
			lowStock++
		}
	}

	return &SummaryRes{
		TotalRevenue:   revenue,
		SalesCount:     len(sales),
		ProductCount:   len(products),
		LowStockAlerts: lowStock,
	}, nil
}

// WeeklySales возвращает фиксированный иллюстративный ряд. Значения не
// выводятся из журнала продаж, на что указывает флаг SampleData.
func (m *MetricsUseCase) WeeklySales(_ context.Context) (*WeeklySalesRes, error) {
	return &WeeklySalesRes{
		Points: []WeeklyPoint{
			{Day: "Mon", Sales: 450},
			{Day: "Tue", Sales: 380},
			{Day: "Wed", Sales: 620},
			{Day: "Thu", Sales: 500},
			{Day: "Fri", Sales: 890},
			{Day: "Sat", Sales: 1200},
			{Day: "Sun", Sales: 950},
		},
		SampleData: true,
	}, nil
}

// ListSales возвращает журнал продаж от новых к старым.
func (m *MetricsUseCase) ListSales(ctx context.Context) ([]SaleRes, error) {
	const op = "MetricsUseCase.ListSales"

	sales, err := m.saleRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]SaleRes, 0, len(sales))
	for _, s := range sales {
		result = append(result, *NewSaleRes(&s))
	}

	return result, nil
}

// Insight передаёт вопрос текстовой модели вместе со сводкой данных.
// Любая ошибка модели заменяется фиксированным ответом-заглушкой.
func (m *MetricsUseCase) Insight(ctx context.Context, req *InsightReq) (*InsightRes, error) {
	const op = "MetricsUseCase.Insight"

	if strings.TrimSpace(req.Prompt) == "" {
		return nil, e.Wrap(op, e.ErrEmptyPrompt)
	}

	insightCtx, err := m.buildContext(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	req.Context = *insightCtx

	answer, err := m.insight.GenerateInsight(ctx, req)
	if err != nil {
		m.logger.Warnf("insight generation failed: %v", e.Wrap(op, err))
		return &InsightRes{Answer: insightFallback}, nil
	}

	return &InsightRes{Answer: answer}, nil
}

// buildContext собирает сводку для модели: число продаж, список
// товаров с ценами и статусы запасов.
func (m *MetricsUseCase) buildContext(ctx context.Context) (*InsightContext, error) {
	sales, err := m.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	products, err := m.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	supplies, err := m.supplyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	productLines := make([]string, 0, len(products))
	for _, p := range products {
		productLines = append(productLines, fmt.Sprintf("%s ($%.2f)", p.Name, float64(p.Price)/100))
	}

	supplyLines := make([]string, 0, len(supplies))
	for _, s := range supplies {
		supplyLines = append(supplyLines, fmt.Sprintf("%s: %s", s.Name, s.Status))
	}

	return &InsightContext{
		SalesCount: len(sales),
		Products:   productLines,
		Supplies:   supplyLines,
	}, nil
}
