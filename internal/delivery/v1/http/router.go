package http

import (
	_ "github.com/espressoflow/pos-backend/docs" // Импорт сгенерированных файлов
	"github.com/espressoflow/pos-backend/internal/usecase"
	"github.com/espressoflow/pos-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(
	sessionUC usecase.SessionUC,
	catalogUC usecase.CatalogUC,
	cartUC usecase.CartUC,
	metricsUC usecase.MetricsUC,
	reportUC usecase.ReportUC,
) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerSessionRoutes(v1, NewSessionHandler(sessionUC, r.logger))
		registerCatalogRoutes(v1, NewCatalogHandler(catalogUC, r.logger))
		registerCartRoutes(v1, NewCartHandler(cartUC, r.logger))
		registerMetricsRoutes(v1, NewMetricsHandler(metricsUC, r.logger))
		registerReportRoutes(v1, NewReportHandler(reportUC, r.logger))
	})
}

func registerSessionRoutes(router chi.Router, h *SessionHandler) {
	router.Route("/auth", func(auth chi.Router) {
		auth.Post("/login", h.login)
		auth.Get("/session", h.restore)
		auth.Post("/logout", h.logout)
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", h.addProduct)
		pr.Get("/", h.listProducts)
		pr.Get("/categories", h.listCategories)
	})
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/carts", func(ct chi.Router) {
		ct.Post("/", h.openCart)
		ct.Route("/{cartID}", func(one chi.Router) {
			one.Get("/", h.getCart)
			one.Delete("/", h.cancelCart)
			one.Post("/items", h.addItem)
			one.Patch("/items/{productID}", h.adjustQuantity)
			one.Post("/checkout", h.checkout)
		})
	})
}

func registerMetricsRoutes(router chi.Router, h *MetricsHandler) {
	router.Get("/sales", h.listSales)
	router.Route("/metrics", func(mt chi.Router) {
		mt.Get("/summary", h.summary)
		mt.Get("/weekly", h.weeklySales)
		mt.Post("/insight", h.insight)
	})
}

func registerReportRoutes(router chi.Router, h *ReportHandler) {
	router.Route("/reports", func(rp chi.Router) {
		rp.Get("/recent", h.recentExports)
		rp.Get("/{kind}", h.export)
	})
}
