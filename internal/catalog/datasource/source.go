// Package datasource talks to wherever product records come from: the
// storefront's product API over HTTP, or the bundled mock catalog.
package datasource

import (
	"context"

	"github.com/seasonal-storefront/server/internal/catalog/model"
)

// Source returns raw, un-normalized product records. Implementations report
// failures as errx.AppError values so callers can branch on their Kind.
type Source interface {
	All(ctx context.Context, limit, offset int) ([]model.RawProduct, error)
	ByID(ctx context.Context, id string) (*model.RawProduct, error)
	ByCategory(ctx context.Context, category string, limit int) ([]model.RawProduct, error)
	OnSale(ctx context.Context, limit int) ([]model.RawProduct, error)
	Search(ctx context.Context, query string, limit int) ([]model.RawProduct, error)
}
