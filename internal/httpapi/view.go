package httpapi

import (
	"github.com/seasonal-storefront/server/internal/catalog/model"
	"github.com/seasonal-storefront/server/internal/catalog/pricing"
)

// ProductView is a product plus the display values the storefront renders.
type ProductView struct {
	model.Product
	FormattedPrice         string `json:"formattedPrice"`
	FormattedOriginalPrice string `json:"formattedOriginalPrice,omitempty"`
	DiscountPercent        int    `json:"discountPercent,omitempty"`
}

type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type productsResponse struct {
	Products   []ProductView `json:"products"`
	Count      int           `json:"count"`
	Query      string        `json:"query,omitempty"`
	PriceRange *PriceRange   `json:"priceRange,omitempty"`
}

type productResponse struct {
	Product ProductView `json:"product"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toView(p model.Product) ProductView {
	v := ProductView{
		Product:         p,
		FormattedPrice:  pricing.Format(p.Price),
		DiscountPercent: pricing.Discount(p),
	}
	if p.HasDiscount() {
		v.FormattedOriginalPrice = pricing.Format(*p.OriginalPrice)
	}
	return v
}

func toViews(products []model.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, toView(p))
	}
	return views
}

func listOf(products []model.Product) productsResponse {
	return productsResponse{Products: toViews(products), Count: len(products)}
}
