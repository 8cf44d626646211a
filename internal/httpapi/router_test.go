package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"

	"github.com/seasonal-storefront/server/internal/catalog"
	"github.com/seasonal-storefront/server/internal/catalog/datasource"
	"github.com/seasonal-storefront/server/internal/catalog/model"
	"github.com/seasonal-storefront/server/internal/search"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	src := datasource.NewMockSource()
	svc := catalog.New(src)
	return NewRouter(RouterOpts{
		Catalog: NewCatalogHandler(
			svc,
			search.NewSuggester(svc, model.SearchConfig{SuggestLimit: 5, MinQueryLen: 2}),
			search.NewRedisRecentSearches(rdb, 5, time.Hour),
		),
		Backend: NewBackendHandler(src),
	})
}

func do(r http.Handler, method, target string, header map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("invalid json %q: %v", w.Body.String(), err)
	}
	return v
}

func viewIDs(views []ProductView) []string {
	ids := make([]string, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}
	return ids
}

func TestHealthz(t *testing.T) {
	w := do(newTestRouter(t), http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestCatalog_ByCategory(t *testing.T) {
	w := do(newTestRouter(t), http.MethodGet, "/api/catalog/categories/toys", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if w.Header().Get(headerRequestID) == "" {
		t.Fatalf("missing %s header", headerRequestID)
	}

	got := decode[productsResponse](t, w)
	if diff := cmp.Diff([]string{"toys-1", "toys-2", "toys-3"}, viewIDs(got.Products)); diff != "" {
		t.Fatalf("ids (-want +got):\n%s", diff)
	}
	if got.Count != 3 || !strings.Contains(got.Products[0].FormattedPrice, "999") {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestCatalog_ByCategoryRejectsBlank(t *testing.T) {
	w := do(newTestRouter(t), http.MethodGet, "/api/catalog/categories/%20", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestCatalog_RequestIDIsEchoed(t *testing.T) {
	w := do(newTestRouter(t), http.MethodGet, "/api/catalog/sale", map[string]string{headerRequestID: "abc-123"})
	if got := w.Header().Get(headerRequestID); got != "abc-123" {
		t.Fatalf("request id = %q", got)
	}
	if got := decode[productsResponse](t, w); got.Count != 3 {
		t.Fatalf("count = %d", got.Count)
	}
}

func TestCatalog_AllProductsWithFilters(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/catalog/products?category=clothing&sort=price-high-low", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	got := decode[productsResponse](t, w)
	if diff := cmp.Diff([]string{"clothing-3", "clothing-2", "clothing-1"}, viewIDs(got.Products)); diff != "" {
		t.Fatalf("ids (-want +got):\n%s", diff)
	}
	if got.PriceRange == nil || got.PriceRange.Min != 799 || got.PriceRange.Max != 5990 {
		t.Fatalf("price range = %+v", got.PriceRange)
	}

	w = do(r, http.MethodGet, "/api/catalog/products?min_price=1000&max_price=2000&on_sale=true", nil)
	got = decode[productsResponse](t, w)
	for _, p := range got.Products {
		if p.Price < 1000 || p.Price > 2000 || !p.IsOnSale {
			t.Fatalf("filter not applied: %+v", p.Product)
		}
	}
}

func TestCatalog_InvalidFilters(t *testing.T) {
	r := newTestRouter(t)

	for _, target := range []string{
		"/api/catalog/products?min_price=abc",
		"/api/catalog/products?min_price=-1",
		"/api/catalog/products?min_price=500&max_price=100",
	} {
		if w := do(r, http.MethodGet, target, nil); w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status=%d", target, w.Code)
		}
	}
}

func TestCatalog_ProductByID(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/catalog/products/clothing-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	got := decode[productResponse](t, w)
	if got.Product.Name != "Classic White T-Shirt" || got.Product.DiscountPercent != 38 || got.Product.FormattedOriginalPrice == "" {
		t.Fatalf("unexpected product: %+v", got.Product)
	}

	w = do(r, http.MethodGet, "/api/catalog/products/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d", w.Code)
	}
	if e := decode[errorResponse](t, w); e.Error != "product not found" {
		t.Fatalf("error = %q", e.Error)
	}

	w = do(r, http.MethodGet, "/api/catalog/products/generated-kitchenware-2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("synthesized id status=%d", w.Code)
	}
}

func TestCatalog_SearchRecordsRecentSearches(t *testing.T) {
	r := newTestRouter(t)
	user := map[string]string{headerUserID: "u1"}

	w := do(r, http.MethodGet, "/api/catalog/search?q=ceramic", user)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	got := decode[productsResponse](t, w)
	if got.Count != catalog.SearchMin || got.Query != "ceramic" {
		t.Fatalf("unexpected search response: count=%d query=%q", got.Count, got.Query)
	}

	w = do(r, http.MethodGet, "/api/catalog/search?q=ceramic&category=kitchenware", user)
	got = decode[productsResponse](t, w)
	for _, p := range got.Products {
		if p.Category != "kitchenware" {
			t.Fatalf("category filter not applied: %+v", p.Product)
		}
	}

	_ = do(r, http.MethodGet, "/api/catalog/search?q=mug", user)

	w = do(r, http.MethodGet, "/api/catalog/recent-searches", user)
	recent := decode[struct {
		Searches []string `json:"searches"`
	}](t, w)
	if diff := cmp.Diff([]string{"mug", "ceramic"}, recent.Searches); diff != "" {
		t.Fatalf("recent (-want +got):\n%s", diff)
	}

	if w := do(r, http.MethodDelete, "/api/catalog/recent-searches", user); w.Code != http.StatusNoContent {
		t.Fatalf("delete status=%d", w.Code)
	}
	w = do(r, http.MethodGet, "/api/catalog/recent-searches", user)
	recent = decode[struct {
		Searches []string `json:"searches"`
	}](t, w)
	if len(recent.Searches) != 0 {
		t.Fatalf("searches after clear = %v", recent.Searches)
	}
}

func TestCatalog_SearchAndRecentValidation(t *testing.T) {
	r := newTestRouter(t)

	if w := do(r, http.MethodGet, "/api/catalog/search?q=%20", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("blank query status=%d", w.Code)
	}
	if w := do(r, http.MethodGet, "/api/catalog/recent-searches", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("missing user status=%d", w.Code)
	}
}

func TestCatalog_RecentSearchesDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := catalog.New(datasource.NewMockSource())
	r := NewRouter(RouterOpts{Catalog: NewCatalogHandler(svc, nil, nil)})

	w := do(r, http.MethodGet, "/api/catalog/recent-searches", map[string]string{headerUserID: "u1"})
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status=%d", w.Code)
	}
	if w := do(r, http.MethodGet, "/api/catalog/suggest?q=mug", nil); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("suggest status=%d", w.Code)
	}
	if w := do(r, http.MethodGet, "/api/catalog/search?q=mug", map[string]string{headerUserID: "u1"}); w.Code != http.StatusOK {
		t.Fatalf("search without a recent store status=%d", w.Code)
	}
}

func TestCatalog_Suggest(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/catalog/suggest?q=mug", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	got := decode[productsResponse](t, w)
	if got.Count == 0 || got.Count > 5 {
		t.Fatalf("count = %d", got.Count)
	}

	w = do(r, http.MethodGet, "/api/catalog/suggest?q=m", nil)
	if got := decode[productsResponse](t, w); got.Count != 0 {
		t.Fatalf("short query count = %d", got.Count)
	}
}

func TestBackend_Routes(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/products/category/toys", nil)
	env := decode[model.ProductsEnvelope](t, w)
	if env.Count != 3 || len(env.Products) != 3 {
		t.Fatalf("category envelope = %+v", env)
	}

	w = do(r, http.MethodGet, "/api/products/sale?limit=2", nil)
	if env := decode[model.ProductsEnvelope](t, w); env.Count != 2 {
		t.Fatalf("sale count = %d", env.Count)
	}

	w = do(r, http.MethodGet, "/api/products?limit=4&offset=2", nil)
	if env := decode[model.ProductsEnvelope](t, w); env.Count != 4 || env.Products[0].ID != "clothing-3" {
		t.Fatalf("list envelope = %+v", env)
	}

	w = do(r, http.MethodGet, "/api/products/electronics-1", nil)
	if one := decode[model.ProductEnvelope](t, w); one.Product == nil || one.Product.Name != "Wireless Earbuds" {
		t.Fatalf("product envelope = %s", w.Body.String())
	}

	w = do(r, http.MethodGet, "/api/products/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d", w.Code)
	}
	if msg := decode[model.MessageEnvelope](t, w); msg.Message != "Product not found" {
		t.Fatalf("message = %q", msg.Message)
	}

	if w := do(r, http.MethodGet, "/api/products/search", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("search without q status=%d", w.Code)
	}
	w = do(r, http.MethodGet, "/api/products/search?q=jacket", nil)
	if env := decode[model.ProductsEnvelope](t, w); env.Query != "jacket" || env.Count != 1 {
		t.Fatalf("search envelope = %+v", env)
	}
}

func TestBackend_ServesHTTPSource(t *testing.T) {
	gin.SetMode(gin.TestMode)
	backend := httptest.NewServer(NewRouter(RouterOpts{Backend: NewBackendHandler(datasource.NewMockSource())}))
	defer backend.Close()

	svc := catalog.New(datasource.NewHTTPSource(backend.URL+"/api", time.Second))
	ctx := context.Background()

	got := svc.ProductsByCategory(ctx, "kitchenware")
	if diff := cmp.Diff([]string{"kitchenware-1", "kitchenware-2", "kitchenware-3"}, model.IDs(got)); diff != "" {
		t.Fatalf("ids (-want +got):\n%s", diff)
	}
	if got[0].OriginalPrice == nil || *got[0].OriginalPrice != 6999 || !got[0].IsOnSale {
		t.Fatalf("fields lost over the wire: %+v", got[0])
	}

	p, ok := svc.ProductByID(ctx, "home-decor-3")
	if !ok || p.OriginalPrice != nil {
		t.Fatalf("ProductByID = %+v, %v", p, ok)
	}
}
