package domain

import "time"

// PaymentMethod — закрытый перечень способов оплаты.
type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "Cash"
	PaymentCard    PaymentMethod = "Card"
	PaymentDigital PaymentMethod = "Digital"
)

// ParsePaymentMethod проверяет, что строка входит в перечень способов оплаты.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentCard, PaymentDigital:
		return PaymentMethod(s), true
	default:
		return "", false
	}
}

// Sale описывает завершённую продажу. Запись неизменяема после создания
// и добавляется в начало журнала продаж.
type Sale struct {
	ID            string
	Date          time.Time
	Total         int64 // в центах
	PaymentMethod PaymentMethod
	Items         int // суммарное количество позиций
	ClientName    string
}

func NewSale(id string, date time.Time, total int64, method PaymentMethod, items int, clientName string) *Sale {
	return &Sale{
		ID:            id,
		Date:          date,
		Total:         total,
		PaymentMethod: method,
		Items:         items,
		ClientName:    clientName,
	}
}
