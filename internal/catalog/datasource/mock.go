package datasource

import (
	"context"
	"strings"
	"time"

	"github.com/seasonal-storefront/server/internal/catalog/model"
	errx "github.com/seasonal-storefront/server/internal/core/error"
)

// defaultSearchLimit caps search results when the caller passes no limit.
const defaultSearchLimit = 10

// MockSource serves a fixed in-memory catalog. It behaves like the product
// API, including its 400 on an empty search and 404 on an unknown id.
type MockSource struct {
	products []model.RawProduct
	latency  time.Duration
}

type MockOption func(*MockSource)

// WithLatency delays every call, honouring context cancellation.
func WithLatency(d time.Duration) MockOption {
	return func(m *MockSource) { m.latency = d }
}

// WithProducts replaces the bundled catalog.
func WithProducts(products []model.RawProduct) MockOption {
	return func(m *MockSource) { m.products = products }
}

func NewMockSource(opts ...MockOption) *MockSource {
	m := &MockSource{products: MockProducts()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MockSource) All(ctx context.Context, limit, offset int) ([]model.RawProduct, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	if offset >= len(m.products) {
		return []model.RawProduct{}, nil
	}
	return capped(m.products[max(offset, 0):], limit), nil
}

func (m *MockSource) ByID(ctx context.Context, id string) (*model.RawProduct, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	for i := range m.products {
		if m.products[i].ID == id {
			p := m.products[i]
			return &p, nil
		}
	}
	return nil, errx.NotFound("Product not found")
}

func (m *MockSource) ByCategory(ctx context.Context, category string, limit int) ([]model.RawProduct, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return m.where(limit, func(p model.RawProduct) bool {
		return p.Category == category
	}), nil
}

func (m *MockSource) OnSale(ctx context.Context, limit int) ([]model.RawProduct, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return m.where(limit, func(p model.RawProduct) bool {
		return (p.IsOnSale != nil && *p.IsOnSale) || (p.IsOnSaleAlt != nil && *p.IsOnSaleAlt)
	}), nil
}

func (m *MockSource) Search(ctx context.Context, query string, limit int) ([]model.RawProduct, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, errx.BadRequest("Search query is required")
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return m.where(limit, func(p model.RawProduct) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q)
	}), nil
}

func (m *MockSource) where(limit int, keep func(model.RawProduct) bool) []model.RawProduct {
	out := []model.RawProduct{}
	for _, p := range m.products {
		if limit > 0 && len(out) >= limit {
			break
		}
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (m *MockSource) wait(ctx context.Context) error {
	if m.latency <= 0 {
		return errx.WrapDataSource(ctx.Err())
	}
	t := time.NewTimer(m.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return errx.WrapDataSource(ctx.Err())
	case <-t.C:
		return nil
	}
}

func capped(products []model.RawProduct, limit int) []model.RawProduct {
	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}
	return append([]model.RawProduct(nil), products...)
}
