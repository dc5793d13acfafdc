package http

import (
	"fmt"
	"net/http"

	"github.com/espressoflow/pos-backend/internal/usecase"
	"github.com/espressoflow/pos-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUC
	logger        logger.Logger
}

func NewReportHandler(reportUsecase usecase.ReportUC, logger logger.Logger) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase, logger: logger}
}

// export
//
//	@Summary		Экспорт отчёта
//	@Description	Генерирует PDF-отчёт указанного вида и отдаёт файл
//	@Tags			reports
//	@Produce		application/pdf
//	@Param			kind	path		string	true	"Вид отчёта: sales, inventory или clients"
//	@Success		200		{file}		file			"PDF-документ"
//	@Failure		400		{object}	ErrorResponse	"Неизвестный вид отчёта"
//	@Router			/reports/{kind} [get]
func (h *ReportHandler) export(w http.ResponseWriter, r *http.Request) {
	export, err := h.reportUsecase.Export(r.Context(), chi.URLParam(r, "kind"))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(export.Data)
}

// recentExports
//
//	@Summary		Последние экспорты
//	@Description	Возвращает список сохранённых отчётов, новые первыми
//	@Tags			reports
//	@Produce		json
//	@Success		200	{array}		exportObjectResponse	"Список экспортов"
//	@Failure		500	{object}	ErrorResponse			"Внутренняя ошибка"
//	@Router			/reports/recent [get]
func (h *ReportHandler) recentExports(w http.ResponseWriter, r *http.Request) {
	exports, err := h.reportUsecase.RecentExports(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	out := make([]exportObjectResponse, 0, len(exports))
	for _, ex := range exports {
		out = append(out, exportObjectResponse{
			Key:         ex.Key,
			Size:        ex.Size,
			GeneratedAt: ex.GeneratedAt,
		})
	}

	WriteSuccess(w, http.StatusOK, out)
}
