package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	v1Http "github.com/espressoflow/pos-backend/internal/delivery/v1/http"
	"github.com/espressoflow/pos-backend/internal/domain"
	"github.com/espressoflow/pos-backend/internal/infrastructure/pdf"
	"github.com/espressoflow/pos-backend/internal/repository/memory"
	"github.com/espressoflow/pos-backend/internal/usecase"
	"github.com/espressoflow/pos-backend/pkg/e"
	"github.com/espressoflow/pos-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopProducer struct{}

func (noopProducer) PublishSaleCompleted(context.Context, *domain.Sale) error { return nil }

type fixedInsight struct{ answer string }

func (f fixedInsight) GenerateInsight(context.Context, *usecase.InsightReq) (string, error) {
	return f.answer, nil
}

type mapArchive struct {
	stored map[string][]byte
}

func (m *mapArchive) Store(_ context.Context, key string, data []byte, _ string) error {
	m.stored[key] = data
	return nil
}

func (m *mapArchive) Recent(context.Context) ([]domain.ExportObject, error) {
	objects := make([]domain.ExportObject, 0, len(m.stored))
	for key, data := range m.stored {
		objects = append(objects, domain.ExportObject{Key: key, Size: int64(len(data))})
	}
	return objects, nil
}

type mapSessionRepo struct {
	sessions map[string]*domain.User
}

func (m *mapSessionRepo) Set(_ context.Context, token string, user *domain.User) error {
	m.sessions[token] = user
	return nil
}

func (m *mapSessionRepo) Get(_ context.Context, token string) (*domain.User, error) {
	user, ok := m.sessions[token]
	if !ok {
		return nil, e.ErrSessionNotFound
	}
	return user, nil
}

func (m *mapSessionRepo) Delete(_ context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logger.NewSlogLogger()
	productRepo := memory.NewProductRepo(memory.SeedProducts())
	saleRepo := memory.NewSaleRepo(memory.SeedSales())
	supplyRepo := memory.NewSupplyRepo(memory.SeedSupplies())
	clientRepo := memory.NewClientRepo(memory.SeedClients())
	userRepo := memory.NewUserRepo(memory.SeedUsers())

	catalogUC := usecase.NewCatalogUC(productRepo, log)
	cartUC := usecase.NewCartUC(memory.NewCartRepo(), productRepo, saleRepo, noopProducer{}, log)
	metricsUC := usecase.NewMetricsUC(saleRepo, productRepo, supplyRepo, fixedInsight{answer: "Looking good."}, log)
	reportUC := usecase.NewReportUC(saleRepo, productRepo, supplyRepo, clientRepo, pdf.NewRenderer(), &mapArchive{stored: make(map[string][]byte)}, log)
	sessionUC := usecase.NewSessionUC(userRepo, &mapSessionRepo{sessions: make(map[string]*domain.User)}, time.Millisecond, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(sessionUC, catalogUC, cartUC, metricsUC, reportUC)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	res, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return res
}

func decodeBody(t *testing.T, res *http.Response, dst any) {
	t.Helper()
	defer res.Body.Close()
	require.NoError(t, json.NewDecoder(res.Body).Decode(dst))
}

func TestRegisterFlow(t *testing.T) {
	srv := newTestServer(t)

	// Каталог: ищем латте.
	res, err := http.Get(srv.URL + "/api/v1/products?search=lat&category=All")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var products []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	decodeBody(t, res, &products)
	require.Len(t, products, 1)
	assert.Equal(t, "Latte", products[0].Name)

	// Открываем заказ и кладём два латте.
	res = postJSON(t, srv.URL+"/api/v1/carts", nil)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var cart struct {
		ID string `json:"id"`
	}
	decodeBody(t, res, &cart)

	for i := 0; i < 2; i++ {
		res = postJSON(t, srv.URL+"/api/v1/carts/"+cart.ID+"/items", map[string]string{"product_id": products[0].ID})
		require.Equal(t, http.StatusOK, res.StatusCode)
		res.Body.Close()
	}

	res, err = http.Get(srv.URL + "/api/v1/carts/" + cart.ID)
	require.NoError(t, err)

	var current struct {
		Subtotal int64 `json:"subtotal_cents"`
		Tax      int64 `json:"tax_cents"`
		Total    int64 `json:"total_cents"`
	}
	decodeBody(t, res, &current)
	assert.Equal(t, int64(900), current.Subtotal)
	assert.Equal(t, int64(72), current.Tax)
	assert.Equal(t, int64(972), current.Total)

	// Завершаем продажу.
	res = postJSON(t, srv.URL+"/api/v1/carts/"+cart.ID+"/checkout", map[string]string{
		"payment_method": "Card",
		"client_name":    "Alice Johnson",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var sale struct {
		Total int64 `json:"total_cents"`
		Items int   `json:"items"`
	}
	decodeBody(t, res, &sale)
	assert.Equal(t, int64(972), sale.Total)
	assert.Equal(t, 2, sale.Items)
}

func TestCheckoutRejectsUnknownPaymentMethod(t *testing.T) {
	srv := newTestServer(t)

	res := postJSON(t, srv.URL+"/api/v1/carts", nil)
	var cart struct {
		ID string `json:"id"`
	}
	decodeBody(t, res, &cart)

	res = postJSON(t, srv.URL+"/api/v1/carts/"+cart.ID+"/checkout", map[string]string{"payment_method": "Barter"})
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestGetUnknownCartReturns404(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/api/v1/carts/missing")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestAuthFlow(t *testing.T) {
	srv := newTestServer(t)

	res := postJSON(t, srv.URL+"/api/v1/auth/login", map[string]string{
		"email":    "jane@coffee.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var session struct {
		Token string `json:"token"`
		User  struct {
			Name string `json:"name"`
			Role string `json:"role"`
		} `json:"user"`
	}
	decodeBody(t, res, &session)
	require.NotEmpty(t, session.Token)
	assert.Equal(t, "Jane Doe", session.User.Name)
	assert.Equal(t, "Admin", session.User.Role)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/auth/session", nil)
	require.NoError(t, err)
	req.Header.Set("X-Session-Token", session.Token)

	res, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var user struct {
		Email string `json:"email"`
	}
	decodeBody(t, res, &user)
	assert.Equal(t, "jane@coffee.com", user.Email)

	// Без токена сессия не восстанавливается.
	res, err = http.Get(srv.URL + "/api/v1/auth/session")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestMetricsEndpoints(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/api/v1/metrics/summary")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var summary struct {
		TotalRevenueCents int64 `json:"total_revenue_cents"`
		SalesCount        int   `json:"sales_count"`
	}
	decodeBody(t, res, &summary)
	assert.Equal(t, int64(6275), summary.TotalRevenueCents)
	assert.Equal(t, 5, summary.SalesCount)

	res = postJSON(t, srv.URL+"/api/v1/metrics/insight", map[string]string{"prompt": "How are sales?"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var insight struct {
		Answer string `json:"answer"`
	}
	decodeBody(t, res, &insight)
	assert.Equal(t, "Looking good.", insight.Answer)
}

func TestReportExportEndpoint(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/api/v1/reports/sales")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/pdf", res.Header.Get("Content-Type"))
	assert.Contains(t, res.Header.Get("Content-Disposition"), "sales_report_")

	buf := make([]byte, 4)
	_, err = io.ReadFull(res.Body, buf)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(buf))

	res, err = http.Get(srv.URL + "/api/v1/reports/payroll")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
