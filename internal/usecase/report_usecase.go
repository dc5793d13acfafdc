package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/espressoflow/pos-backend/internal/domain"
	"github.com/espressoflow/pos-backend/pkg/e"
	"github.com/espressoflow/pos-backend/pkg/logger"
)

const pdfContentType = "application/pdf"

// ReportUseCase собирает данные отчёта, отдаёт их генератору документов
// и сохраняет копию в архиве экспортов.
type ReportUseCase struct {
	saleRepo    SaleRepository
	productRepo ProductRepository
	supplyRepo  SupplyRepository
	clientRepo  ClientRepository
	renderer    ReportRenderer
	archive     ReportArchive
	logger      logger.Logger
}

func NewReportUC(
	saleRepo SaleRepository,
	productRepo ProductRepository,
	supplyRepo SupplyRepository,
	clientRepo ClientRepository,
	renderer ReportRenderer,
	archive ReportArchive,
	logger logger.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		supplyRepo:  supplyRepo,
		clientRepo:  clientRepo,
		renderer:    renderer,
		archive:     archive,
		logger:      logger,
	}
}

// Export формирует документ указанного типа. Имя файла содержит метку времени.
// Сбой архивирования логируется и не мешает выдаче документа.
func (r *ReportUseCase) Export(ctx context.Context, kind string) (*ExportRes, error) {
	const op = "ReportUseCase.Export"

	generatedAt := time.Now()

	var (
		data []byte
		err  error
	)
	switch domain.ReportKind(kind) {
	case domain.ReportSales:
		data, err = r.renderSales(ctx, generatedAt)
	case domain.ReportInventory:
		data, err = r.renderInventory(ctx, generatedAt)
	case domain.ReportClients:
		data, err = r.renderClients(ctx, generatedAt)
	default:
		return nil, e.Wrap(op, e.ErrUnknownReportKind)
	}
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	filename := fmt.Sprintf("%s_report_%d.pdf", kind, generatedAt.UnixMilli())

	if err := r.archive.Store(ctx, filename, data, pdfContentType); err != nil {
		r.logger.Warnf("failed to archive export %s: %v", filename, e.Wrap(op, err))
	}

	return &ExportRes{
		Filename:    filename,
		ContentType: pdfContentType,
		Data:        data,
	}, nil
}

// RecentExports возвращает последние сохранённые экспорты, новые первыми.
func (r *ReportUseCase) RecentExports(ctx context.Context) ([]ExportObjectRes, error) {
	const op = "ReportUseCase.RecentExports"

	objects, err := r.archive.Recent(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]ExportObjectRes, 0, len(objects))
	for _, o := range objects {
		result = append(result, ExportObjectRes{
			Key:         o.Key,
			Size:        o.Size,
			GeneratedAt: o.GeneratedAt,
		})
	}

	return result, nil
}

func (r *ReportUseCase) renderSales(ctx context.Context, generatedAt time.Time) ([]byte, error) {
	sales, err := r.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return r.renderer.RenderSales(sales, generatedAt)
}

func (r *ReportUseCase) renderInventory(ctx context.Context, generatedAt time.Time) ([]byte, error) {
	products, err := r.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	supplies, err := r.supplyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return r.renderer.RenderInventory(products, supplies, generatedAt)
}

func (r *ReportUseCase) renderClients(ctx context.Context, generatedAt time.Time) ([]byte, error) {
	clients, err := r.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return r.renderer.RenderClients(clients, generatedAt)
}
