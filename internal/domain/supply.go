package domain

// SupplyStatus — презентационная классификация запаса сырья.
// Статус приходит вместе с данными и не пересчитывается.
type SupplyStatus string

const (
	SupplyOK       SupplyStatus = "OK"
	SupplyLow      SupplyStatus = "LOW"
	SupplyCritical SupplyStatus = "CRITICAL"
)

// Supply описывает складскую позицию (сырьё)
type Supply struct {
	ID        string
	Name      string
	Unit      string
	Quantity  int
	Threshold int
	Status    SupplyStatus
}
