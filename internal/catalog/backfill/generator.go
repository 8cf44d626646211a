// Package backfill synthesizes placeholder products when a data source comes
// back short. Every synthesized product is a pure function of its id and the
// generator seed, so the same id always yields the same product.
package backfill

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/seasonal-storefront/server/internal/catalog/images"
	"github.com/seasonal-storefront/server/internal/catalog/model"
)

// Provenance tells which fallback path produced a product. It is also the id prefix.
type Provenance string

const (
	Generated Provenance = "generated"
	Fallback  Provenance = "fallback"
	Sale      Provenance = "sale-fallback"
	Featured  Provenance = "featured-fallback"
	Search    Provenance = "search-fallback"
	All       Provenance = "all-fallback"
)

// provenances is ordered so longer prefixes are tried before "fallback".
var provenances = []Provenance{Sale, Featured, Search, All, Generated, Fallback}

type profile int

const (
	standardProfile profile = iota
	saleProfile
	featuredProfile
)

var clothingSizes = []string{"S", "M", "L", "XL"}

var featuredTags = []string{"featured", "popular", "top-rated"}

type Generator struct {
	tables   model.Tables
	resolver *images.Resolver
	seed     uint64
}

func New(tables model.Tables, resolver *images.Resolver, seed uint64) *Generator {
	if resolver == nil {
		resolver = images.NewResolver(tables)
	}
	return &Generator{tables: tables, resolver: resolver, seed: seed}
}

// Backfill pads existing up to target with generated products for category.
// existing is returned unchanged (as a copy) when it already has enough items.
func (g *Generator) Backfill(existing []model.Product, category string, target int) []model.Product {
	out := make([]model.Product, len(existing), max(len(existing), target))
	copy(out, existing)
	for k := len(existing); k < target; k++ {
		out = append(out, g.Synthesize(Generated, category, k))
	}
	return out
}

// Synthesize builds the k-th product of a provenance. Sale and featured
// products pick their own category from the promo rotation; category is
// ignored for them.
func (g *Generator) Synthesize(prov Provenance, category string, k int) model.Product {
	category = g.categoryFor(prov, category, k)
	return g.build(prov, category, k, g.nameFor(prov, category, k))
}

// SynthesizeNamed is Synthesize with a caller supplied name. Search padding
// uses it to embed the query in the product name.
func (g *Generator) SynthesizeNamed(prov Provenance, category string, k int, name string) model.Product {
	category = g.categoryFor(prov, category, k)
	return g.build(prov, category, k, name)
}

// SearchName is the name given to the k-th padded search result.
func SearchName(query, category string, k int) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return fmt.Sprintf("%s %d", category, k+1)
	}
	return fmt.Sprintf("%s %s %d", query, category, k+1)
}

// Regenerate rebuilds a synthesized product from its id. Search padding
// names embed the query, which the id does not carry, so regenerated
// search products use the category's sample name instead.
func (g *Generator) Regenerate(id string) (model.Product, bool) {
	prov, category, k, ok := ParseID(id)
	if !ok {
		return model.Product{}, false
	}
	if category == "" {
		category = g.categoryFor(prov, "", k)
	}
	return g.build(prov, category, k, g.nameFor(prov, category, k)), true
}

// ID renders the id of the k-th product of a provenance.
func ID(prov Provenance, category string, k int) string {
	switch prov {
	case Sale, Featured:
		return fmt.Sprintf("%s-%d", prov, k)
	default:
		return fmt.Sprintf("%s-%s-%d", prov, category, k)
	}
}

// ParseID splits a synthesized id into its parts. category is empty for
// provenances that do not embed one.
func ParseID(id string) (prov Provenance, category string, k int, ok bool) {
	for _, p := range provenances {
		rest, found := strings.CutPrefix(id, string(p)+"-")
		if !found {
			continue
		}
		idx := rest
		if i := strings.LastIndexByte(rest, '-'); i >= 0 {
			category, idx = rest[:i], rest[i+1:]
		}
		n, err := strconv.Atoi(idx)
		if err != nil || n < 0 || strconv.Itoa(n) != idx {
			return "", "", 0, false
		}
		switch p {
		case Sale, Featured:
			if category != "" {
				return "", "", 0, false
			}
		default:
			if category == "" {
				return "", "", 0, false
			}
		}
		return p, category, n, true
	}
	return "", "", 0, false
}

// IsSynthesized reports whether id follows one of the synthesized id schemes.
func IsSynthesized(id string) bool {
	_, _, _, ok := ParseID(id)
	return ok
}

func (g *Generator) categoryFor(prov Provenance, category string, k int) string {
	switch prov {
	case Sale, Featured:
		return cycle(g.tables.PromoCategories, k, model.CategoryClothing)
	case Search:
		if category == "" {
			return cycle(model.Categories, k, model.CategoryClothing)
		}
	case All:
		if category == "" {
			return cycle(model.CoreCategories, k, model.CategoryClothing)
		}
	}
	return category
}

func (g *Generator) nameFor(prov Provenance, category string, k int) string {
	switch prov {
	case Sale:
		return fmt.Sprintf("Sale Item %d - %s", k+1, category)
	case Featured:
		return cycle(g.tables.FeaturedNames, k, "Featured Product")
	default:
		return cycle(g.tables.Names(category), k, "Product")
	}
}

func (g *Generator) build(prov Provenance, category string, k int, name string) model.Product {
	id := ID(prov, category, k)
	rng := rand.New(rand.NewPCG(g.seed, hashID(id)))

	p := model.Product{
		ID:          id,
		Name:        name,
		Description: describe(prov, category, name),
		Category:    category,
		Image:       g.resolver.Resolve(name, category),
	}

	switch profileOf(prov) {
	case saleProfile:
		p.Price = 500 + rng.IntN(1500)
		p.OriginalPrice = model.IntPtr(1500 + rng.IntN(3000))
		p.Rating = rating(rng, 50, 3.5)
		p.IsOnSale = true
		p.Discount = model.IntPtr(10 + rng.IntN(40))
		p.StockLeft = model.IntPtr(1 + rng.IntN(20))
	case featuredProfile:
		p.Price = 1000 + rng.IntN(3000)
		p.OriginalPrice = model.IntPtr(2000 + rng.IntN(5000))
		p.Rating = rating(rng, 20, 4.0)
		p.IsOnSale = rng.Float64() > 0.3
		p.Tags = append([]string(nil), featuredTags...)
		p.StockLeft = model.IntPtr(5 + rng.IntN(30))
	default:
		p.Price = 500 + rng.IntN(2000)
		p.OriginalPrice = model.IntPtr(1000 + rng.IntN(3000))
		p.Rating = rating(rng, 50, 3.0)
		p.IsOnSale = rng.Float64() > 0.5
		p.StockLeft = model.IntPtr(1 + rng.IntN(50))
	}

	// originalPrice must stay above price so the discount badge is never negative.
	if *p.OriginalPrice <= p.Price {
		p.OriginalPrice = model.IntPtr(p.Price + 100 + rng.IntN(500))
	}

	if category == model.CategoryClothing {
		p.Sizes = append([]string(nil), clothingSizes...)
	}
	return p
}

func profileOf(prov Provenance) profile {
	switch prov {
	case Sale:
		return saleProfile
	case Featured:
		return featuredProfile
	default:
		return standardProfile
	}
}

func describe(prov Provenance, category, name string) string {
	switch prov {
	case Fallback:
		return fmt.Sprintf("Quality %s for everyday use.", category)
	case Sale:
		return fmt.Sprintf("Special discounted %s item.", category)
	case Featured:
		return fmt.Sprintf("Premium quality %s, our customer favorite.", category)
	case Search:
		return fmt.Sprintf("%s - Perfect for all your needs.", name)
	case All:
		return fmt.Sprintf("High-quality %s for your everyday needs.", category)
	default:
		return fmt.Sprintf("High-quality %s for your needs.", category)
	}
}

// rating draws steps tenths above base, capped at 5.
func rating(rng *rand.Rand, steps int, base float64) float64 {
	r := float64(rng.IntN(steps))/10 + base
	return math.Min(5, math.Round(r*10)/10)
}

func cycle(values []string, k int, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return values[k%len(values)]
}

func hashID(id string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	return h.Sum64()
}
