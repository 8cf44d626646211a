package model

// RawProduct is a product record as it arrives from a data source. The Flask
// backend sends snake_case fields, the bundled mock catalog sends camelCase;
// both spellings are accepted and the snake_case value wins when both are set.
// Prices are capped at one billion so they always fit the canonical int price.
type RawProduct struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0,lte=1000000000"`
	Category    string   `json:"category" validate:"required"`
	Image       string   `json:"image,omitempty"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=5"`
	Sizes       []string `json:"sizes,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Discount    *float64 `json:"discount,omitempty" validate:"omitempty,gte=0,lte=100"`

	OriginalPrice *float64 `json:"original_price,omitempty" validate:"omitempty,gte=0,lte=1000000000"`
	IsOnSale      *bool    `json:"is_on_sale,omitempty"`
	DealType      string   `json:"deal_type,omitempty"`
	DealEnds      string   `json:"deal_ends,omitempty"`
	StockLeft     *int     `json:"stock_left,omitempty" validate:"omitempty,gte=0"`

	OriginalPriceAlt *float64 `json:"originalPrice,omitempty" validate:"omitempty,gte=0,lte=1000000000"`
	IsOnSaleAlt      *bool    `json:"isOnSale,omitempty"`
	DealTypeAlt      string   `json:"dealType,omitempty"`
	DealEndsAlt      string   `json:"dealEnds,omitempty"`
	StockLeftAlt     *int     `json:"stockLeft,omitempty" validate:"omitempty,gte=0"`
}

// ProductsEnvelope is the list response shape of the data source API.
type ProductsEnvelope struct {
	Products []RawProduct `json:"products"`
	Count    int          `json:"count"`
	Query    string       `json:"query,omitempty"`
}

// ProductEnvelope is the single-product response shape of the data source API.
type ProductEnvelope struct {
	Product *RawProduct `json:"product"`
}

// MessageEnvelope carries the error message of a non-2xx data source response.
type MessageEnvelope struct {
	Message string `json:"message"`
}

// Float64Ptr is a small helper for optional numeric raw attributes.
func Float64Ptr(v float64) *float64 {
	return &v
}

// BoolPtr is a small helper for optional boolean raw attributes.
func BoolPtr(v bool) *bool {
	return &v
}
