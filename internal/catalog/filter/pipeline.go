// Package filter applies the storefront's category, price, sale and text
// filters followed by a stable sort. It never mutates its input.
package filter

import (
	"cmp"
	"slices"
	"strings"

	"github.com/seasonal-storefront/server/internal/catalog/model"
)

type SortKey string

const (
	SortDefault      SortKey = "default"
	SortPriceLowHigh SortKey = "price-low-high"
	SortPriceHighLow SortKey = "price-high-low"
	SortRating       SortKey = "rating"
)

// ParseSortKey maps a sort parameter onto a SortKey. The search page's
// relevance/price-low/price-high spellings are accepted; anything unknown
// sorts by input order.
func ParseSortKey(s string) SortKey {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "price-low-high", "price-low":
		return SortPriceLowHigh
	case "price-high-low", "price-high":
		return SortPriceHighLow
	case "rating":
		return SortRating
	default:
		return SortDefault
	}
}

// Criteria selects and orders products. Zero values disable a filter; a nil
// price bound is unbounded on that side.
type Criteria struct {
	Category   string
	MinPrice   *int
	MaxPrice   *int
	OnSaleOnly bool
	Query      string
	Sort       SortKey
}

// Apply filters by category, then price range, then sale status, then text,
// and finally sorts. Ties keep their input order.
func Apply(items []model.Product, c Criteria) []model.Product {
	out := make([]model.Product, 0, len(items))
	query := strings.ToLower(strings.TrimSpace(c.Query))
	for _, p := range items {
		if !matchCategory(p, c.Category) {
			continue
		}
		if c.MinPrice != nil && p.Price < *c.MinPrice {
			continue
		}
		if c.MaxPrice != nil && p.Price > *c.MaxPrice {
			continue
		}
		if c.OnSaleOnly && !p.IsOnSale {
			continue
		}
		if query != "" && !matchText(p, query) {
			continue
		}
		out = append(out, p)
	}

	switch c.Sort {
	case SortPriceLowHigh:
		slices.SortStableFunc(out, func(a, b model.Product) int { return cmp.Compare(a.Price, b.Price) })
	case SortPriceHighLow:
		slices.SortStableFunc(out, func(a, b model.Product) int { return cmp.Compare(b.Price, a.Price) })
	case SortRating:
		slices.SortStableFunc(out, func(a, b model.Product) int { return cmp.Compare(b.Rating, a.Rating) })
	}
	return out
}

// PriceBounds returns the lowest and highest price in items.
func PriceBounds(items []model.Product) (lo, hi int, ok bool) {
	if len(items) == 0 {
		return 0, 0, false
	}
	lo, hi = items[0].Price, items[0].Price
	for _, p := range items[1:] {
		lo = min(lo, p.Price)
		hi = max(hi, p.Price)
	}
	return lo, hi, true
}

func matchCategory(p model.Product, category string) bool {
	return category == "" || category == model.CategoryAll || p.Category == category
}

func matchText(p model.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Category), query)
}
