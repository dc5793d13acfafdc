package domain

import "time"

// ReportKind — тип экспортируемого отчёта.
type ReportKind string

const (
	ReportSales     ReportKind = "sales"
	ReportInventory ReportKind = "inventory"
	ReportClients   ReportKind = "clients"
)

// ExportObject описывает сохранённый в архиве экспорт отчёта
type ExportObject struct {
	Key         string
	Size        int64
	GeneratedAt time.Time
}
