package usecase

import (
	"context"
	"time"

	"github.com/espressoflow/pos-backend/internal/domain"
)

type InsightInfra interface {
	GenerateInsight(ctx context.Context, req *InsightReq) (string, error)
}

type ReportRenderer interface {
	RenderSales(sales []domain.Sale, generatedAt time.Time) ([]byte, error)
	RenderInventory(products []domain.Product, supplies []domain.Supply, generatedAt time.Time) ([]byte, error)
	RenderClients(clients []domain.Client, generatedAt time.Time) ([]byte, error)
}

type ReportArchive interface {
	Store(ctx context.Context, key string, data []byte, contentType string) error
	Recent(ctx context.Context) ([]domain.ExportObject, error)
}

type SaleEventProducer interface {
	PublishSaleCompleted(ctx context.Context, sale *domain.Sale) error
}
