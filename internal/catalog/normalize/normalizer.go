// Package normalize turns data-source records into canonical products.
package normalize

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/seasonal-storefront/server/internal/catalog/images"
	"github.com/seasonal-storefront/server/internal/catalog/model"
	errx "github.com/seasonal-storefront/server/internal/core/error"
	logx "github.com/seasonal-storefront/server/pkg/logger"
)

// ParseError reports a record that failed schema validation.
type ParseError struct {
	ID     string
	Fields []string
	Err    error
}

func (e *ParseError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("product %q: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("product %q: invalid %s", e.ID, strings.Join(e.Fields, ", "))
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes every ParseError match errx.ErrMalformedResponse.
func (e *ParseError) Is(target error) bool {
	return target == errx.ErrMalformedResponse
}

type Normalizer struct {
	resolver *images.Resolver
	validate *validator.Validate
}

func New(resolver *images.Resolver) *Normalizer {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return &Normalizer{resolver: resolver, validate: v}
}

// Normalize validates raw and maps it onto the canonical Product. Field names
// are the only thing translated; no business rules are applied here.
func (n *Normalizer) Normalize(raw model.RawProduct) (model.Product, error) {
	if err := n.validate.Struct(raw); err != nil {
		return model.Product{}, toParseError(raw.ID, err)
	}

	p := model.Product{
		ID:            strings.TrimSpace(raw.ID),
		Name:          strings.TrimSpace(raw.Name),
		Description:   raw.Description,
		Price:         roundUnits(*raw.Price),
		OriginalPrice: optionalUnits(firstFloat(raw.OriginalPrice, raw.OriginalPriceAlt)),
		Category:      strings.TrimSpace(raw.Category),
		Image:         raw.Image,
		Rating:        raw.Rating,
		IsOnSale:      firstBool(raw.IsOnSale, raw.IsOnSaleAlt),
		Sizes:         cloneStrings(raw.Sizes),
		Discount:      optionalUnits(raw.Discount),
		DealType:      firstString(raw.DealType, raw.DealTypeAlt),
		DealEnds:      firstString(raw.DealEnds, raw.DealEndsAlt),
		StockLeft:     firstInt(raw.StockLeft, raw.StockLeftAlt),
		Tags:          cloneStrings(raw.Tags),
	}

	if !images.IsUsable(p.Image) {
		p.Image = n.resolver.Resolve(p.Name, p.Category)
	}
	return p, nil
}

// NormalizeAll keeps every valid record in order and drops the rest. The
// response as a whole is rejected only when it had records and none survived.
func (n *Normalizer) NormalizeAll(raws []model.RawProduct) ([]model.Product, error) {
	out := make([]model.Product, 0, len(raws))
	var errs []error
	for _, raw := range raws {
		p, err := n.Normalize(raw)
		if err != nil {
			logx.Warn().Err(err).Str("id", raw.ID).Msg("dropping malformed product record")
			errs = append(errs, err)
			continue
		}
		out = append(out, p)
	}
	if len(raws) > 0 && len(out) == 0 {
		return nil, errx.WrapMalformed(errors.Join(errs...))
	}
	return out, nil
}

func toParseError(id string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ParseError{ID: id, Err: err}
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &ParseError{ID: id, Fields: fields, Err: err}
}

func roundUnits(v float64) int {
	return int(math.Round(v))
}

func optionalUnits(v *float64) *int {
	if v == nil {
		return nil
	}
	return model.IntPtr(roundUnits(*v))
}

func firstFloat(vals ...*float64) *float64 {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstBool(vals ...*bool) bool {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return false
}

func firstInt(vals ...*int) *int {
	for _, v := range vals {
		if v != nil {
			return model.IntPtr(*v)
		}
	}
	return nil
}

func firstString(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	return append([]string(nil), in...)
}
