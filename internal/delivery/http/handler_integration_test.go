package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/geerin/backend/config"
	"github.com/geerin/backend/internal/domain"
	"github.com/geerin/backend/internal/infrastructure/fakestore"
	"github.com/geerin/backend/internal/infrastructure/store"
	"github.com/geerin/backend/internal/usecase"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	// Set Gin to test mode once for all tests
	gin.SetMode(gin.TestMode)

	exitCode := m.Run()

	os.Exit(exitCode)
}

// newUpstream fakes the remote catalog: one product, id 1, with a detail
// description
func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/products":
			json.NewEncoder(w).Encode([]domain.FakeStoreItem{
				{ID: 1, Title: "Backpack", Price: 109.95, Image: "http://img/1.png", Category: "bags"},
			})
		case "/products/1":
			json.NewEncoder(w).Encode(domain.FakeStoreItem{
				ID: 1, Title: "Backpack", Price: 109.95, Image: "http://img/1.png",
				Category: "bags", Description: "Fits 15in laptops.",
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

// setupTestRouter creates a test router wired to the given upstream
func setupTestRouter(upstreamURL string) *gin.Engine {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		FakeStore: config.FakeStoreConfig{
			BaseURL: upstreamURL,
			Timeout: 5 * time.Second,
		},
		Store: config.StoreConfig{IDBase: 10000},
	}

	client := fakestore.NewClient(cfg.FakeStore.BaseURL, cfg.FakeStore.Timeout, 1000)
	localStore := store.NewMemoryStore(cfg.Store.IDBase)
	service := usecase.NewCatalogService(client, localStore)
	handler := NewHandler(service)

	return SetupRouter(cfg, handler)
}

func doJSON(router *gin.Engine, method, target string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeProducts(t *testing.T, w *httptest.ResponseRecorder) []domain.Product {
	t.Helper()
	var products []domain.Product
	if err := json.Unmarshal(w.Body.Bytes(), &products); err != nil {
		t.Fatalf("Failed to unmarshal products: %v", err)
	}
	return products
}

func decodeProduct(t *testing.T, w *httptest.ResponseRecorder) domain.Product {
	t.Helper()
	var p domain.Product
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("Failed to unmarshal product: %v", err)
	}
	return p
}

func TestHealthCheckEndpoint(t *testing.T) {
	upstream := newUpstream(t)
	defer upstream.Close()
	router := setupTestRouter(upstream.URL)

	w := doJSON(router, "GET", "/health", nil)

	if w.Code != http.StatusOK {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", response["status"])
	}
	if response["service"] != "geerin-backend" {
		t.Errorf("service = %v, want geerin-backend", response["service"])
	}
}

// TestProductLifecycle drives the catalog end to end: list the remote entry,
// create a local product, see both, delete it, see the original listing again.
func TestProductLifecycle(t *testing.T) {
	upstream := newUpstream(t)
	defer upstream.Close()
	router := setupTestRouter(upstream.URL)

	// Initial listing: the single remote product
	w := doJSON(router, "GET", "/api/products", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/products status = %d, want %d", w.Code, http.StatusOK)
	}
	products := decodeProducts(t, w)
	if len(products) != 1 {
		t.Fatalf("len(products) = %d, want 1", len(products))
	}
	if products[0].ID != 1 || products[0].IsLocal {
		t.Errorf("products[0] = %+v, want remote id 1", products[0])
	}
	if products[0].Name != "Backpack" || products[0].ImageURL != "http://img/1.png" {
		t.Errorf("upstream fields not mapped: %+v", products[0])
	}

	// Create a local product
	w = doJSON(router, "POST", "/api/products", map[string]interface{}{
		"name": "Mug", "price": 9.99, "imageUrl": "http://x/y.png",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /api/products status = %d, want %d (body %s)", w.Code, http.StatusCreated, w.Body.String())
	}
	created := decodeProduct(t, w)
	if created.ID != 10000 {
		t.Errorf("created.ID = %d, want 10000", created.ID)
	}
	if !created.IsLocal {
		t.Error("created.IsLocal = false, want true")
	}
	if created.Category != "" {
		t.Errorf("created.Category = %q, want empty", created.Category)
	}

	// Both products listed, local after remote
	w = doJSON(router, "GET", "/api/products", nil)
	products = decodeProducts(t, w)
	if len(products) != 2 {
		t.Fatalf("len(products) = %d, want 2", len(products))
	}
	if products[1].ID != 10000 || !products[1].IsLocal {
		t.Errorf("products[1] = %+v, want local id 10000", products[1])
	}

	// Delete it; the deleted object comes back
	w = doJSON(router, "DELETE", "/api/products?id=10000", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("DELETE status = %d, want %d", w.Code, http.StatusOK)
	}
	deleted := decodeProduct(t, w)
	if deleted.ID != 10000 || deleted.Name != "Mug" {
		t.Errorf("deleted = %+v, want the created product", deleted)
	}

	// Listing reverts to the single remote entry
	w = doJSON(router, "GET", "/api/products", nil)
	products = decodeProducts(t, w)
	if len(products) != 1 || products[0].ID != 1 {
		t.Errorf("final listing = %+v, want the remote product only", products)
	}

	// Deleting the same id again fails
	w = doJSON(router, "DELETE", "/api/products?id=10000", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("second DELETE status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestCreateProduct_MissingFields(t *testing.T) {
	upstream := newUpstream(t)
	defer upstream.Close()
	router := setupTestRouter(upstream.URL)

	w := doJSON(router, "POST", "/api/products", map[string]interface{}{
		"name": "Mug",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	// The failed create must not leave anything behind
	w = doJSON(router, "GET", "/api/products", nil)
	if products := decodeProducts(t, w); len(products) != 1 {
		t.Errorf("len(products) = %d, want 1", len(products))
	}
}

func TestDeleteProduct_RemoteID(t *testing.T) {
	upstream := newUpstream(t)
	defer upstream.Close()
	router := setupTestRouter(upstream.URL)

	w := doJSON(router, "DELETE", "/api/products?id=1", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestDeleteProduct_MissingID(t *testing.T) {
	upstream := newUpstream(t)
	defer upstream.Close()
	router := setupTestRouter(upstream.URL)

	w := doJSON(router, "DELETE", "/api/products", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestUpdateProduct(t *testing.T) {
	upstream := newUpstream(t)
	defer upstream.Close()
	router := setupTestRouter(upstream.URL)

	w := doJSON(router, "POST", "/api/products", map[string]interface{}{
		"name": "Mug", "price": 9.99, "imageUrl": "http://x/y.png",
	})
	created := decodeProduct(t, w)

	w = doJSON(router, "PUT", "/api/products?id=10000", map[string]interface{}{
		"name": "Big Mug", "price": 12.5, "imageUrl": "http://x/y2.png", "category": "kitchen",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}
	updated := decodeProduct(t, w)
	if updated.ID != created.ID || updated.Name != "Big Mug" || updated.Price != 12.5 {
		t.Errorf("updated = %+v", updated)
	}

	// Remote ids are not updatable
	w = doJSON(router, "PUT", "/api/products?id=1", map[string]interface{}{
		"name": "Hacked", "price": 1, "imageUrl": "http://x",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("PUT remote id status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestGetProductDetail(t *testing.T) {
	upstream := newUpstream(t)
	defer upstream.Close()
	router := setupTestRouter(upstream.URL)

	// Remote detail carries the upstream description
	w := doJSON(router, "GET", "/api/products/detail?id=1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	detail := decodeProduct(t, w)
	if detail.Description != "Fits 15in laptops." {
		t.Errorf("Description = %q, want the upstream one", detail.Description)
	}

	// Local detail without a description uses the fallback text
	doJSON(router, "POST", "/api/products", map[string]interface{}{
		"name": "Mug", "price": 9.99, "imageUrl": "http://x/y.png",
	})
	w = doJSON(router, "GET", "/api/products/detail?id=10000", nil)
	detail = decodeProduct(t, w)
	if detail.Description != usecase.FallbackDescription {
		t.Errorf("Description = %q, want %q", detail.Description, usecase.FallbackDescription)
	}
}

func TestListProducts_UpstreamDown(t *testing.T) {
	upstream := newUpstream(t)
	upstream.Close() // refuse connections
	router := setupTestRouter(upstream.URL)

	w := doJSON(router, "GET", "/api/products", nil)
	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadGateway)
	}
}
