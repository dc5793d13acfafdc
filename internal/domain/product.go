package domain

// Product описывает позицию каталога (меню)
type Product struct {
	ID          string
	Name        string
	Category    string
	Price       int64 // Цена хранится в центах
	Stock       int
	Description string
	ImageURL    string
}

func NewProduct(id string, name string, category string, price int64, stock int, description string, imageURL string) *Product {
	return &Product{
		ID:          id,
		Name:        name,
		Category:    category,
		Price:       price,
		Stock:       stock,
		Description: description,
		ImageURL:    imageURL,
	}
}
