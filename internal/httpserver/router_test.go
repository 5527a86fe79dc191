package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"tienda-storefront/internal/backend"
	"tienda-storefront/internal/domain"
	"tienda-storefront/internal/repository/cartblob"
	"tienda-storefront/internal/service/adminauth"
	cartsvc "tienda-storefront/internal/service/cart"
	"tienda-storefront/internal/service/catalog"
	"tienda-storefront/internal/service/checkout"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubCatalog struct {
	products map[int64]*domain.Product
	listErr  error
}

func (s *stubCatalog) List(_ context.Context, _ catalog.Query) ([]domain.Product, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, *p)
	}
	return out, nil
}

func (s *stubCatalog) Get(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

type stubOrderBackend struct {
	order            *domain.Order
	createErr        error
	statusOrder      *domain.Order
	statusErr        error
	statusCalls      int
	createProductErr error
}

func (s *stubOrderBackend) CreateOrder(_ context.Context, _ domain.OrderInput) (*domain.Order, error) {
	return s.order, s.createErr
}

func (s *stubOrderBackend) CreateProduct(_ context.Context, _ domain.ProductInput) (*domain.Product, error) {
	if s.createProductErr != nil {
		return nil, s.createProductErr
	}
	return &domain.Product{ID: 1}, nil
}

func (s *stubOrderBackend) UpdateProduct(_ context.Context, id int64, _ domain.ProductInput) (*domain.Product, error) {
	return &domain.Product{ID: id}, nil
}

func (s *stubOrderBackend) DeleteProduct(_ context.Context, _ int64) error {
	return nil
}

func (s *stubOrderBackend) Orders(_ context.Context) ([]domain.Order, error) {
	if s.order == nil {
		return nil, nil
	}
	return []domain.Order{*s.order}, nil
}

func (s *stubOrderBackend) Order(_ context.Context, _ int64) (*domain.Order, error) {
	if s.order == nil {
		return nil, domain.ErrNotFound
	}
	return s.order, nil
}

func (s *stubOrderBackend) UpdateOrderStatus(_ context.Context, id int64, status string) (*domain.Order, error) {
	s.statusCalls++
	if s.statusErr != nil {
		return nil, s.statusErr
	}
	if s.statusOrder != nil {
		return s.statusOrder, nil
	}
	return &domain.Order{ID: id, Status: status}, nil
}

func (s *stubOrderBackend) Stats(_ context.Context) (*domain.Stats, error) {
	return &domain.Stats{TotalProducts: 4, TotalOrders: 2}, nil
}

type testEnv struct {
	router *gin.Engine
	auth   *adminauth.Service
}

func newTestEnv(t *testing.T, cat *stubCatalog, ob *stubOrderBackend) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	storage := cartblob.NewMemory()
	auth := adminauth.New("secreto")
	router, err := buildRouter(logDiscard(), storage, Deps{
		Carts:    cartsvc.NewManager(storage, logDiscard()),
		Catalog:  cat,
		Checkout: checkout.New(ob),
		Auth:     auth,
		Admin:    ob,
		Orders:   ob,
	}, []string{"*"})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return &testEnv{router: router, auth: auth}
}

// do performs a request, carrying the cart session cookie across calls.
func (e *testEnv) do(t *testing.T, method, path, body string, cookies []*http.Cookie, token string) (*httptest.ResponseRecorder, []*http.Cookie) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	next := cookies
	if set := rec.Result().Cookies(); len(set) > 0 {
		next = set
	}
	return rec, next
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) (items []domain.CartLine, total int64) {
	t.Helper()
	var view struct {
		Items []domain.CartLine `json:"items"`
		Total int64             `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode cart response: %v (%s)", err, rec.Body.String())
	}
	return view.Items, view.Total
}

func defaultCatalog() *stubCatalog {
	return &stubCatalog{products: map[int64]*domain.Product{
		1: {ID: 1, Name: "Mochila", Price: 50000, Stock: 10},
		2: {ID: 2, Name: "Sombrero", Price: 75000, Stock: 4},
	}}
}

func TestCartFlowAcrossRequests(t *testing.T) {
	env := newTestEnv(t, defaultCatalog(), &stubOrderBackend{})

	rec, cookies := env.do(t, http.MethodPost, "/api/cart/items", `{"productId":1,"quantity":1}`, nil, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("add: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	if len(cookies) == 0 {
		t.Fatalf("expected session cookie on first cart touch")
	}

	rec, cookies = env.do(t, http.MethodPost, "/api/cart/items", `{"productId":2,"quantity":2}`, cookies, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("add second: expected 201, got %d", rec.Code)
	}

	rec, cookies = env.do(t, http.MethodGet, "/api/cart", "", cookies, "")
	items, total := decodeCart(t, rec)
	if len(items) != 2 || total != 200000 {
		t.Fatalf("unexpected cart items=%d total=%d", len(items), total)
	}

	rec, cookies = env.do(t, http.MethodPatch, "/api/cart/items/2", `{"quantity":1}`, cookies, "")
	if _, total = decodeCart(t, rec); total != 125000 {
		t.Fatalf("after update: expected total 125000, got %d", total)
	}

	rec, cookies = env.do(t, http.MethodDelete, "/api/cart/items/1", "", cookies, "")
	if items, _ = decodeCart(t, rec); len(items) != 1 {
		t.Fatalf("after remove: expected 1 item, got %d", len(items))
	}

	rec, _ = env.do(t, http.MethodDelete, "/api/cart", "", cookies, "")
	if items, total = decodeCart(t, rec); len(items) != 0 || total != 0 {
		t.Fatalf("after clear: expected empty cart, got items=%d total=%d", len(items), total)
	}
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	env := newTestEnv(t, defaultCatalog(), &stubOrderBackend{})

	rec, _ := env.do(t, http.MethodPost, "/api/cart/items", `{"productId":99}`, nil, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAddCartItemInsufficientStock(t *testing.T) {
	env := newTestEnv(t, defaultCatalog(), &stubOrderBackend{})

	rec, cookies := env.do(t, http.MethodPost, "/api/cart/items", `{"productId":2,"quantity":3}`, nil, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	// 3 in cart + 2 requested > stock of 4.
	rec, _ = env.do(t, http.MethodPost, "/api/cart/items", `{"productId":2,"quantity":2}`, cookies, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestAddCartItemInactiveProduct(t *testing.T) {
	inactive := false
	cat := &stubCatalog{products: map[int64]*domain.Product{
		5: {ID: 5, Name: "Retirado", Price: 1000, Stock: 2, Active: &inactive},
	}}
	env := newTestEnv(t, cat, &stubOrderBackend{})

	rec, _ := env.do(t, http.MethodPost, "/api/cart/items", `{"productId":5}`, nil, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCheckoutClearsCart(t *testing.T) {
	ob := &stubOrderBackend{order: &domain.Order{ID: 42, Status: domain.OrderPending, Total: 50000}}
	env := newTestEnv(t, defaultCatalog(), ob)

	rec, cookies := env.do(t, http.MethodPost, "/api/cart/items", `{"productId":1}`, nil, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("add: expected 201, got %d", rec.Code)
	}

	rec, cookies = env.do(t, http.MethodPost, "/api/checkout", `{"customerName":"Ana"}`, cookies, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("checkout: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var order domain.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &order); err != nil || order.ID != 42 {
		t.Fatalf("unexpected order response %s (%v)", rec.Body.String(), err)
	}

	rec, _ = env.do(t, http.MethodGet, "/api/cart", "", cookies, "")
	if items, _ := decodeCart(t, rec); len(items) != 0 {
		t.Fatalf("expected cart cleared after checkout, got %d items", len(items))
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	env := newTestEnv(t, defaultCatalog(), &stubOrderBackend{})

	rec, _ := env.do(t, http.MethodPost, "/api/checkout", `{"customerName":"Ana"}`, nil, "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestCheckoutBackendValidationPassthrough(t *testing.T) {
	ob := &stubOrderBackend{createErr: &backend.APIError{StatusCode: http.StatusBadRequest, Message: "stock insuficiente"}}
	env := newTestEnv(t, defaultCatalog(), ob)

	rec, cookies := env.do(t, http.MethodPost, "/api/cart/items", `{"productId":1}`, nil, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("add: expected 201, got %d", rec.Code)
	}

	rec, cookies = env.do(t, http.MethodPost, "/api/checkout", `{"customerName":"Ana"}`, cookies, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "stock insuficiente") {
		t.Fatalf("expected backend message verbatim, got %s", rec.Body.String())
	}

	// A failed checkout must keep the cart.
	rec, _ = env.do(t, http.MethodGet, "/api/cart", "", cookies, "")
	if items, _ := decodeCart(t, rec); len(items) != 1 {
		t.Fatalf("expected cart kept after failed checkout, got %d items", len(items))
	}
}

func TestOrderTracking(t *testing.T) {
	ob := &stubOrderBackend{order: &domain.Order{ID: 9, Status: domain.OrderShipped}}
	env := newTestEnv(t, defaultCatalog(), ob)

	rec, _ := env.do(t, http.MethodGet, "/api/orders/9", "", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	env = newTestEnv(t, defaultCatalog(), &stubOrderBackend{})
	rec, _ = env.do(t, http.MethodGet, "/api/orders/9", "", nil, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
