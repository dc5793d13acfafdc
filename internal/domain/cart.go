package domain

// CartLine — одна позиция открытого заказа: товар плюс выбранное количество.
// Пока строка существует, Quantity >= 1; строка с нулевым количеством удаляется.
type CartLine struct {
	ProductID string
	Name      string
	UnitPrice int64 // в центах
	Quantity  int
}

// Cart — открытый, ещё не завершённый заказ кассы.
// На каждый товар в корзине приходится не более одной строки.
type Cart struct {
	ID    string
	Lines []CartLine
}

func NewCart(id string) *Cart {
	return &Cart{
		ID: id,
	}
}
