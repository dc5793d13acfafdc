package memory

import (
	"time"

	"github.com/espressoflow/pos-backend/internal/domain"
	"github.com/google/uuid"
)

// Демонстрационные данные кофейни. Приложение работает без внешней БД,
// каталог и журнал живут в памяти процесса.

func SeedProducts() []domain.Product {
	return []domain.Product{
		*domain.NewProduct(uuid.NewString(), "Espresso", "Coffee", 350, 150, "Rich and intense shot", "https://picsum.photos/200/200?random=1"),
		*domain.NewProduct(uuid.NewString(), "Latte", "Coffee", 450, 80, "Espresso with steamed milk", "https://picsum.photos/200/200?random=2"),
		*domain.NewProduct(uuid.NewString(), "Cappuccino", "Coffee", 450, 90, "Espresso with foam", "https://picsum.photos/200/200?random=3"),
		*domain.NewProduct(uuid.NewString(), "Croissant", "Pastry", 300, 20, "Buttery flaky pastry", "https://picsum.photos/200/200?random=4"),
		*domain.NewProduct(uuid.NewString(), "Blueberry Muffin", "Pastry", 325, 15, "Fresh baked daily", "https://picsum.photos/200/200?random=5"),
		*domain.NewProduct(uuid.NewString(), "Iced Matcha", "Tea", 500, 40, "Premium ceremonial grade", "https://picsum.photos/200/200?random=6"),
		*domain.NewProduct(uuid.NewString(), "Cold Brew", "Coffee", 475, 60, "Steeped for 12 hours", "https://picsum.photos/200/200?random=7"),
		*domain.NewProduct(uuid.NewString(), "Avocado Toast", "Food", 850, 10, "Sourdough with toppings", "https://picsum.photos/200/200?random=8"),
	}
}

func SeedSales() []domain.Sale {
	return []domain.Sale{
		*domain.NewSale(uuid.NewString(), date(2023, 10, 26), 1550, domain.PaymentCard, 3, "Alice Johnson"),
		*domain.NewSale(uuid.NewString(), date(2023, 10, 26), 450, domain.PaymentCash, 1, ""),
		*domain.NewSale(uuid.NewString(), date(2023, 10, 25), 2200, domain.PaymentDigital, 4, "Bob Smith"),
		*domain.NewSale(uuid.NewString(), date(2023, 10, 25), 875, domain.PaymentCard, 2, ""),
		*domain.NewSale(uuid.NewString(), date(2023, 10, 24), 1200, domain.PaymentCash, 3, ""),
	}
}

func SeedSupplies() []domain.Supply {
	return []domain.Supply{
		{ID: uuid.NewString(), Name: "Coffee Beans (Dark)", Unit: "kg", Quantity: 12, Threshold: 5, Status: domain.SupplyOK},
		{ID: uuid.NewString(), Name: "Whole Milk", Unit: "L", Quantity: 8, Threshold: 10, Status: domain.SupplyLow},
		{ID: uuid.NewString(), Name: "Oat Milk", Unit: "L", Quantity: 4, Threshold: 5, Status: domain.SupplyLow},
		{ID: uuid.NewString(), Name: "Paper Cups", Unit: "pcs", Quantity: 500, Threshold: 100, Status: domain.SupplyOK},
		{ID: uuid.NewString(), Name: "Sugar", Unit: "kg", Quantity: 2, Threshold: 2, Status: domain.SupplyCritical},
	}
}

func SeedClients() []domain.Client {
	return []domain.Client{
		{ID: uuid.NewString(), Name: "Alice Johnson", Email: "alice@example.com", Phone: "555-0101", Points: 450, TotalSpent: 32050, LastVisit: date(2023, 10, 25)},
		{ID: uuid.NewString(), Name: "Bob Smith", Email: "bob@example.com", Phone: "555-0102", Points: 120, TotalSpent: 8500, LastVisit: date(2023, 10, 20)},
		{ID: uuid.NewString(), Name: "Charlie Davis", Email: "charlie@example.com", Phone: "555-0103", Points: 890, TotalSpent: 65075, LastVisit: date(2023, 10, 26)},
	}
}

func SeedUsers() []domain.User {
	return []domain.User{
		*domain.NewUser(uuid.NewString(), "Jane Doe", "jane@coffee.com", domain.RoleAdmin, "https://picsum.photos/100/100?random=10"),
		*domain.NewUser(uuid.NewString(), "John Barista", "john@coffee.com", domain.RoleStaff, "https://picsum.photos/100/100?random=11"),
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
