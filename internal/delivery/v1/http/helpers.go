package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/espressoflow/pos-backend/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrProductNameRequired):
		return http.StatusBadRequest, e.ErrProductNameRequired.Error()
	case errors.Is(err, e.ErrPriceMustBePositive):
		return http.StatusBadRequest, e.ErrPriceMustBePositive.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrNegativeStock):
		return http.StatusBadRequest, e.ErrNegativeStock.Error()
	case errors.Is(err, e.ErrInvalidPayment):
		return http.StatusBadRequest, e.ErrInvalidPayment.Error()
	case errors.Is(err, e.ErrEmptyCart):
		return http.StatusBadRequest, e.ErrEmptyCart.Error()
	case errors.Is(err, e.ErrEmptyPrompt):
		return http.StatusBadRequest, e.ErrEmptyPrompt.Error()
	case errors.Is(err, e.ErrUnknownReportKind):
		return http.StatusBadRequest, e.ErrUnknownReportKind.Error()
	case errors.Is(err, e.ErrSessionTokenRequired):
		return http.StatusUnauthorized, e.ErrSessionTokenRequired.Error()
	case errors.Is(err, e.ErrSessionNotFound):
		return http.StatusUnauthorized, e.ErrSessionNotFound.Error()
	case errors.Is(err, e.ErrCartNotFound):
		return http.StatusNotFound, e.ErrCartNotFound.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}
	return nil
}

// sessionToken извлекает токен сессии из заголовка запроса.
func sessionToken(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("X-Session-Token"))
}

// parsePriceToCents конвертирует строку вида "4.50" или "5" в int64 центов.
// Отклоняет неверный формат, более двух знаков после запятой,
// отрицательные значения и суммы сверх разумного предела.
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	maxPrice := decimal.NewFromInt(1_000_000).Mul(decimal.NewFromInt(100))
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	cents := d.Mul(decimal.NewFromInt(100)).Round(0)

	return cents.IntPart(), nil
}
