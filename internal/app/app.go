package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/espressoflow/pos-backend/internal/cfg"
	v1Http "github.com/espressoflow/pos-backend/internal/delivery/v1/http"
	"github.com/espressoflow/pos-backend/internal/infrastructure/gemini"
	"github.com/espressoflow/pos-backend/internal/infrastructure/kafka"
	minioInfra "github.com/espressoflow/pos-backend/internal/infrastructure/minio"
	"github.com/espressoflow/pos-backend/internal/infrastructure/pdf"
	"github.com/espressoflow/pos-backend/internal/repository/memory"
	redisRepo "github.com/espressoflow/pos-backend/internal/repository/redis"
	"github.com/espressoflow/pos-backend/internal/usecase"
	"github.com/espressoflow/pos-backend/pkg/clients"
	"github.com/espressoflow/pos-backend/pkg/closer"
	"github.com/espressoflow/pos-backend/pkg/e"
	"github.com/espressoflow/pos-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// App держит собранные зависимости и управляет жизненным циклом сервиса.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	httpSrv *v1Http.Server
	closer  *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.New()

	// Хранилища бизнес-данных живут в памяти процесса и наполняются
	// демонстрационным набором при старте.
	productRepo := memory.NewProductRepo(memory.SeedProducts())
	saleRepo := memory.NewSaleRepo(memory.SeedSales())
	supplyRepo := memory.NewSupplyRepo(memory.SeedSupplies())
	clientRepo := memory.NewClientRepo(memory.SeedClients())
	userRepo := memory.NewUserRepo(memory.SeedUsers())
	cartRepo := memory.NewCartRepo()

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(_ context.Context) error {
		return redisClient.Client.Close()
	})

	sessionRepo := redisRepo.NewSessionRepo(redisClient, cfg.Redis, log)

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer minioCancel()
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	archive := minioInfra.NewArchive(minioClient, cfg.Minio, log)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(_ context.Context) error {
		return producer.Close()
	})

	insightCtx, insightCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer insightCancel()
	insight, err := gemini.NewInsight(insightCtx, cfg.Gemini, log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	renderer := pdf.NewRenderer()

	catalogUC := usecase.NewCatalogUC(productRepo, log)
	cartUC := usecase.NewCartUC(cartRepo, productRepo, saleRepo, producer, log)
	metricsUC := usecase.NewMetricsUC(saleRepo, productRepo, supplyRepo, insight, log)
	reportUC := usecase.NewReportUC(saleRepo, productRepo, supplyRepo, clientRepo, renderer, archive, log)
	sessionUC := usecase.NewSessionUC(userRepo, sessionRepo, cfg.Auth.LoginDelay, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(sessionUC, catalogUC, cartUC, metricsUC, reportUC)

	return &App{
		cfg:     cfg,
		logger:  log,
		httpSrv: v1Http.NewServer(r, cfg.Http),
		closer:  cl,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала завершения
// или фатальной ошибки сервера.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("%v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}
