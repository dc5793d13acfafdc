package http

import (
	"net/http"

	"github.com/espressoflow/pos-backend/internal/usecase"
	"github.com/espressoflow/pos-backend/pkg/e"
	"github.com/espressoflow/pos-backend/pkg/logger"
)

type MetricsHandler struct {
	metricsUsecase usecase.MetricsUC
	logger         logger.Logger
}

func NewMetricsHandler(metricsUsecase usecase.MetricsUC, logger logger.Logger) *MetricsHandler {
	return &MetricsHandler{metricsUsecase: metricsUsecase, logger: logger}
}

// summary
//
//	@Summary		Сводные показатели
//	@Description	Выручка, число продаж, размер каталога и предупреждения по запасам
//	@Tags			metrics
//	@Produce		json
//	@Success		200	{object}	summaryResponse	"Сводка"
//	@Failure		500	{object}	ErrorResponse	"Внутренняя ошибка"
//	@Router			/metrics/summary [get]
func (h *MetricsHandler) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.metricsUsecase.Summary(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, summaryResponse{
		TotalRevenueCents: summary.TotalRevenue,
		SalesCount:        summary.SalesCount,
		ProductCount:      summary.ProductCount,
		LowStockAlerts:    summary.LowStockAlerts,
	})
}

// weeklySales
//
//	@Summary		Недельный график продаж
//	@Description	Точки графика по дням недели; sample_data помечает иллюстративные значения
//	@Tags			metrics
//	@Produce		json
//	@Success		200	{object}	weeklySalesResponse	"График"
//	@Failure		500	{object}	ErrorResponse		"Внутренняя ошибка"
//	@Router			/metrics/weekly [get]
func (h *MetricsHandler) weeklySales(w http.ResponseWriter, r *http.Request) {
	weekly, err := h.metricsUsecase.WeeklySales(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	points := make([]weeklyPointResponse, 0, len(weekly.Points))
	for _, p := range weekly.Points {
		points = append(points, weeklyPointResponse{Day: p.Day, Sales: p.Sales})
	}

	WriteSuccess(w, http.StatusOK, weeklySalesResponse{
		Points:     points,
		SampleData: weekly.SampleData,
	})
}

// listSales
//
//	@Summary		Журнал продаж
//	@Description	Возвращает продажи, новые первыми
//	@Tags			metrics
//	@Produce		json
//	@Success		200	{array}		saleResponse	"Журнал"
//	@Failure		500	{object}	ErrorResponse	"Внутренняя ошибка"
//	@Router			/sales [get]
func (h *MetricsHandler) listSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.metricsUsecase.ListSales(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toSaleListResponse(sales))
}

// insight
//
//	@Summary		Вопрос AI-ассистенту
//	@Description	Отвечает на вопрос о бизнесе по данным продаж, каталога и запасов
//	@Tags			metrics
//	@Accept			json
//	@Produce		json
//	@Param			body	body		insightRequest	true	"Вопрос"
//	@Success		200		{object}	insightResponse	"Ответ ассистента"
//	@Failure		400		{object}	ErrorResponse	"Пустой вопрос"
//	@Router			/metrics/insight [post]
func (h *MetricsHandler) insight(w http.ResponseWriter, r *http.Request) {
	var req insightRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	res, err := h.metricsUsecase.Insight(r.Context(), usecase.NewInsightReq(req.Prompt, usecase.InsightContext{}))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, insightResponse{Answer: res.Answer})
}
