package e

import "fmt"

var (
	// Внутренние ошибки
	ErrSessionNotFound = fmt.Errorf("session not found")
	ErrCartNotFound    = fmt.Errorf("cart not found")
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrUserNotFound    = fmt.Errorf("user not found")

	// 400 Bad Request
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrPriceMustBePositive  = fmt.Errorf("price must be positive")
	ErrInvalidPrice         = fmt.Errorf("invalid price format")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrNegativeStock        = fmt.Errorf("stock must not be negative")
	ErrInvalidPayment       = fmt.Errorf("unknown payment method")
	ErrEmptyCart            = fmt.Errorf("cart is empty")
	ErrEmptyPrompt          = fmt.Errorf("prompt is empty")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrUnknownReportKind    = fmt.Errorf("unknown report kind")
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrInternalServerError  = fmt.Errorf("internal server error")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 401 Unauthorized
	ErrSessionTokenRequired = fmt.Errorf("session token is required")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
