// Package catalog answers the storefront's product queries. Every query
// resolves to a usable list: short results are padded and data-source
// failures are replaced by synthesized products, so callers never see an error.
package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/seasonal-storefront/server/internal/catalog/backfill"
	"github.com/seasonal-storefront/server/internal/catalog/datasource"
	"github.com/seasonal-storefront/server/internal/catalog/images"
	"github.com/seasonal-storefront/server/internal/catalog/model"
	"github.com/seasonal-storefront/server/internal/catalog/normalize"
	errx "github.com/seasonal-storefront/server/internal/core/error"
	logx "github.com/seasonal-storefront/server/pkg/logger"
)

// Result sizes per operation.
const (
	CategoryCount = 3
	OnSaleCount   = 3
	FeaturedCount = 3
	SearchMin     = 6
	AllMin        = 12
)

// Fetch limits passed to the data source.
const (
	categoryFetchLimit = 6
	promoFetchLimit    = 10
	searchFetchLimit   = 10
	allFetchLimit      = 10
)

// Service is the catalog query service. It is safe for concurrent use.
type Service struct {
	source     datasource.Source
	tables     model.Tables
	resolver   *images.Resolver
	normalizer *normalize.Normalizer
	generator  *backfill.Generator
	seed       uint64
	log        zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithTables replaces the built-in sample names and fallback images.
func WithTables(t model.Tables) Option {
	return func(s *Service) { s.tables = t }
}

// WithResolver replaces the image resolver built from the tables.
func WithResolver(r *images.Resolver) Option {
	return func(s *Service) { s.resolver = r }
}

// WithGenerator replaces the backfill generator built from the tables and seed.
func WithGenerator(g *backfill.Generator) Option {
	return func(s *Service) { s.generator = g }
}

// WithSeed seeds synthesized attributes. Ignored when WithGenerator is used.
func WithSeed(seed uint64) Option {
	return func(s *Service) { s.seed = seed }
}

// New returns a Service reading from source.
func New(source datasource.Source, opts ...Option) *Service {
	s := &Service{
		source: source,
		tables: model.DefaultTables(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.resolver == nil {
		s.resolver = images.NewResolver(s.tables)
	}
	if s.generator == nil {
		s.generator = backfill.New(s.tables, s.resolver, s.seed)
	}
	s.normalizer = normalize.New(s.resolver)
	s.log = logx.Component("catalog")
	return s
}

// ProductsByCategory returns exactly three products of category. A blank
// category is read as "all" so padded ids stay resolvable.
func (s *Service) ProductsByCategory(ctx context.Context, category string) []model.Product {
	category = strings.TrimSpace(category)
	if category == "" {
		category = model.CategoryAll
	}
	products, err := s.fetch(s.source.ByCategory(ctx, category, categoryFetchLimit))
	if err != nil {
		s.log.Warn().Err(err).Str("category", category).Msg("category fetch failed, using fallback products")
		return s.synthesize(backfill.Fallback, category, 0, CategoryCount)
	}
	if len(products) < CategoryCount {
		s.log.Debug().Str("category", category).Int("count", len(products)).Msg("backfilling category")
		products = s.generator.Backfill(products, category, CategoryCount)
	}
	return products[:CategoryCount]
}

// OnSaleProducts returns exactly three products, preferring ones on sale.
func (s *Service) OnSaleProducts(ctx context.Context) []model.Product {
	products, err := s.fetch(s.source.OnSale(ctx, promoFetchLimit))
	if err != nil {
		s.log.Warn().Err(err).Msg("on-sale fetch failed, using fallback products")
		return s.synthesize(backfill.Sale, "", 0, OnSaleCount)
	}

	out := make([]model.Product, 0, OnSaleCount)
	seen := make(map[string]struct{})
	out = appendUnique(out, seen, products, OnSaleCount, isOnSale)
	if len(out) < OnSaleCount {
		s.log.Debug().Int("count", len(out)).Msg("pulling on-sale products across categories")
		for _, c := range model.Categories {
			if len(out) >= OnSaleCount {
				break
			}
			out = appendUnique(out, seen, s.ProductsByCategory(ctx, c), OnSaleCount, isOnSale)
		}
	}
	for k := len(out); k < OnSaleCount; k++ {
		out = append(out, s.generator.Synthesize(backfill.Sale, "", k))
	}
	return out
}

// FeaturedProducts returns exactly three promoted products.
func (s *Service) FeaturedProducts(ctx context.Context) []model.Product {
	products, err := s.fetch(s.source.OnSale(ctx, promoFetchLimit))
	if err != nil {
		s.log.Warn().Err(err).Msg("featured fetch failed, using fallback products")
		return s.synthesize(backfill.Featured, "", 0, FeaturedCount)
	}

	out := make([]model.Product, 0, FeaturedCount)
	seen := make(map[string]struct{})
	out = appendUnique(out, seen, products, FeaturedCount, nil)
	if len(out) < FeaturedCount {
		s.log.Debug().Int("count", len(out)).Msg("pulling featured products across categories")
		for _, c := range model.Categories {
			if len(out) >= FeaturedCount {
				break
			}
			out = appendUnique(out, seen, s.ProductsByCategory(ctx, c), FeaturedCount, nil)
		}
	}
	for k := len(out); k < FeaturedCount; k++ {
		out = append(out, s.generator.Synthesize(backfill.Featured, "", k))
	}
	return out
}

// ProductByID rebuilds synthesized ids locally and looks every other id up
// in the data source.
func (s *Service) ProductByID(ctx context.Context, id string) (model.Product, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.Product{}, false
	}

	if backfill.IsSynthesized(id) {
		p, ok := s.generator.Regenerate(id)
		s.log.Debug().Str("id", id).Msg("regenerated synthesized product")
		return p, ok
	}

	raw, err := s.source.ByID(ctx, id)
	if err == nil {
		p, nerr := s.normalizer.Normalize(*raw)
		if nerr == nil {
			return p, true
		}
		err = nerr
	}
	if !errors.Is(err, errx.ErrNotFound) {
		s.log.Warn().Err(err).Str("id", id).Msg("product lookup failed")
	}

	return model.Product{}, false
}

// SearchProducts returns at least six products for query. Padding names
// embed the query so the page never looks empty.
func (s *Service) SearchProducts(ctx context.Context, query string) []model.Product {
	query = strings.TrimSpace(query)
	products, err := s.fetch(s.source.Search(ctx, query, searchFetchLimit))
	if err != nil {
		s.log.Warn().Err(err).Str("query", query).Msg("search failed, using fallback products")
		products = nil
	}
	if len(products) < SearchMin {
		s.log.Debug().Str("query", query).Int("count", len(products)).Msg("padding search results")
	}
	for k := len(products); k < SearchMin; k++ {
		c := model.Categories[k%len(model.Categories)]
		products = append(products, s.generator.SynthesizeNamed(backfill.Search, c, k, backfill.SearchName(query, c, k)))
	}
	return products
}

// AllProducts fetches the core categories concurrently and returns at least
// twelve products covering every one of them.
func (s *Service) AllProducts(ctx context.Context) []model.Product {
	perCategory := make([][]model.Product, len(model.CoreCategories))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range model.CoreCategories {
		g.Go(func() error {
			products, err := s.fetch(s.source.ByCategory(gctx, c, allFetchLimit))
			if err != nil {
				s.log.Warn().Err(err).Str("category", c).Msg("category fetch failed for all products")
				return nil
			}
			perCategory[i] = products
			return nil
		})
	}
	_ = g.Wait()

	var out []model.Product
	for _, products := range perCategory {
		out = append(out, products...)
	}

	for _, c := range model.CoreCategories {
		if !hasCategory(out, c) {
			out = append(out, s.generator.Synthesize(backfill.All, c, len(out)))
		}
	}
	if len(out) < AllMin {
		s.log.Debug().Int("count", len(out)).Msg("padding all products")
	}
	for k := len(out); k < AllMin; k++ {
		out = append(out, s.generator.Synthesize(backfill.All, "", k))
	}
	return out
}

// fetch normalizes a data-source response, folding both failure modes into one error.
func (s *Service) fetch(raws []model.RawProduct, err error) ([]model.Product, error) {
	if err != nil {
		return nil, err
	}
	return s.normalizer.NormalizeAll(raws)
}

func (s *Service) synthesize(prov backfill.Provenance, category string, from, to int) []model.Product {
	out := make([]model.Product, 0, to-from)
	for k := from; k < to; k++ {
		out = append(out, s.generator.Synthesize(prov, category, k))
	}
	return out
}

func appendUnique(out []model.Product, seen map[string]struct{}, products []model.Product, limit int, keep func(model.Product) bool) []model.Product {
	for _, p := range products {
		if len(out) >= limit {
			break
		}
		if keep != nil && !keep(p) {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}

func isOnSale(p model.Product) bool {
	return p.IsOnSale
}

func hasCategory(products []model.Product, category string) bool {
	for _, p := range products {
		if p.Category == category {
			return true
		}
	}
	return false
}
