// Package pricing formats prices for display and derives discount percentages.
package pricing

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/seasonal-storefront/server/internal/catalog/model"
)

const pesoSign = "₱"

var (
	printer = message.NewPrinter(language.MustParse("en-PH"))
	scale   = pesoScale()
)

func pesoScale() int {
	s, _ := currency.Standard.Rounding(currency.PHP)
	return s
}

// Format renders a whole-peso price the way the storefront shows it, e.g. ₱1,299.00.
func Format(price int) string {
	return pesoSign + printer.Sprint(number.Decimal(price, number.Scale(scale)))
}

// DiscountPercent is the rounded share of original knocked off by price.
// It is 0 when original is not above price.
func DiscountPercent(price, original int) int {
	if original <= 0 || original <= price {
		return 0
	}
	off := decimal.NewFromInt(int64(original - price))
	pct := off.Div(decimal.NewFromInt(int64(original))).Mul(decimal.NewFromInt(100))
	return int(pct.Round(0).IntPart())
}

// Discount returns the product's advertised discount, or one derived from its prices.
func Discount(p model.Product) int {
	if p.Discount != nil {
		return *p.Discount
	}
	if p.OriginalPrice == nil {
		return 0
	}
	return DiscountPercent(p.Price, *p.OriginalPrice)
}
