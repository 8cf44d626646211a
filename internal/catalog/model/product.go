package model

// Category names recognised by the storefront. Other values are accepted and
// fall back to generic images and sample names.
const (
	CategoryAll         = "all"
	CategoryClothing    = "clothing"
	CategoryElectronics = "electronics"
	CategoryHomeDecor   = "home-decor"
	CategoryToys        = "toys"
	CategoryKitchenware = "kitchenware"
)

// Categories lists every known category in display order.
var Categories = []string{
	CategoryClothing,
	CategoryElectronics,
	CategoryHomeDecor,
	CategoryToys,
	CategoryKitchenware,
}

// CoreCategories are the categories the all-products page must always show.
var CoreCategories = []string{
	CategoryClothing,
	CategoryElectronics,
	CategoryHomeDecor,
	CategoryToys,
}

// Product is the canonical product shape handed to every caller.
// Values are built once and never mutated afterwards.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         int      `json:"price"`
	OriginalPrice *int     `json:"originalPrice,omitempty"`
	Category      string   `json:"category"`
	Image         string   `json:"image"`
	Rating        float64  `json:"rating"`
	IsOnSale      bool     `json:"isOnSale"`
	Sizes         []string `json:"sizes,omitempty"`
	Discount      *int     `json:"discount,omitempty"`
	DealType      string   `json:"dealType,omitempty"`
	DealEnds      string   `json:"dealEnds,omitempty"`
	StockLeft     *int     `json:"stockLeft,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

// HasDiscount reports whether the product carries an original price above its price.
func (p Product) HasDiscount() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}

// IDs returns the ids of products in order.
func IDs(products []Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

// IntPtr is a small helper for optional integer attributes.
func IntPtr(v int) *int {
	return &v
}
