package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/seasonal-storefront/server/internal/catalog/filter"
	"github.com/seasonal-storefront/server/internal/catalog/model"
	errx "github.com/seasonal-storefront/server/internal/core/error"
	"github.com/seasonal-storefront/server/internal/search"
	logx "github.com/seasonal-storefront/server/pkg/logger"
)

// Catalog is the query service behind the storefront pages.
type Catalog interface {
	ProductsByCategory(ctx context.Context, category string) []model.Product
	OnSaleProducts(ctx context.Context) []model.Product
	FeaturedProducts(ctx context.Context) []model.Product
	ProductByID(ctx context.Context, id string) (model.Product, bool)
	SearchProducts(ctx context.Context, query string) []model.Product
	AllProducts(ctx context.Context) []model.Product
}

type Suggester interface {
	Suggest(ctx context.Context, clientID, query string) ([]model.Product, error)
}

type CatalogHandler struct {
	catalog   Catalog
	suggester Suggester
	recent    search.RecentSearchStore
}

// NewCatalogHandler wires the catalog API. suggester and recent may be nil,
// which disables their endpoints.
func NewCatalogHandler(catalog Catalog, suggester Suggester, recent search.RecentSearchStore) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, suggester: suggester, recent: recent}
}

// filterQuery binds the listing filters from the query string.
type filterQuery struct {
	Category string `form:"category"`
	MinPrice *int   `form:"min_price" binding:"omitempty,gte=0"`
	MaxPrice *int   `form:"max_price" binding:"omitempty,gte=0"`
	OnSale   bool   `form:"on_sale"`
	Q        string `form:"q"`
	Sort     string `form:"sort"`
}

func (f filterQuery) criteria() filter.Criteria {
	return filter.Criteria{
		Category:   strings.ToLower(strings.TrimSpace(f.Category)),
		MinPrice:   f.MinPrice,
		MaxPrice:   f.MaxPrice,
		OnSaleOnly: f.OnSale,
		Query:      f.Q,
		Sort:       filter.ParseSortKey(f.Sort),
	}
}

func bindFilters(c *gin.Context) (filterQuery, bool) {
	var f filterQuery
	if err := c.ShouldBindQuery(&f); err != nil {
		respondError(c, errx.BadRequest("invalid filter: "+err.Error()))
		return f, false
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		respondError(c, errx.BadRequest("min_price must not exceed max_price"))
		return f, false
	}
	return f, true
}

func (h *CatalogHandler) ByCategory(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Param("category")))
	if category == "" {
		respondError(c, errx.BadRequest("category is required"))
		return
	}
	c.JSON(http.StatusOK, listOf(h.catalog.ProductsByCategory(c.Request.Context(), category)))
}

func (h *CatalogHandler) OnSale(c *gin.Context) {
	c.JSON(http.StatusOK, listOf(h.catalog.OnSaleProducts(c.Request.Context())))
}

func (h *CatalogHandler) Featured(c *gin.Context) {
	c.JSON(http.StatusOK, listOf(h.catalog.FeaturedProducts(c.Request.Context())))
}

// All serves the all-products page with its filter sidebar applied.
func (h *CatalogHandler) All(c *gin.Context) {
	f, ok := bindFilters(c)
	if !ok {
		return
	}
	all := h.catalog.AllProducts(c.Request.Context())
	resp := listOf(filter.Apply(all, f.criteria()))
	resp.PriceRange = priceRange(all)
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) ProductByID(c *gin.Context) {
	p, ok := h.catalog.ProductByID(c.Request.Context(), c.Param("id"))
	if !ok {
		respondError(c, errx.NotFound("product not found"))
		return
	}
	c.JSON(http.StatusOK, productResponse{Product: toView(p)})
}

// Search serves the search page. The query is recorded as a recent search
// when the caller identifies itself.
func (h *CatalogHandler) Search(c *gin.Context) {
	f, ok := bindFilters(c)
	if !ok {
		return
	}
	query := strings.TrimSpace(f.Q)
	if query == "" {
		respondError(c, errx.BadRequest("search query is required"))
		return
	}

	ctx := c.Request.Context()
	results := h.catalog.SearchProducts(ctx, query)

	if user := c.GetHeader(headerUserID); user != "" && h.recent != nil {
		if err := h.recent.Add(ctx, user, query); err != nil {
			logx.Warn().Err(err).Str("user", user).Msg("could not record recent search")
		}
	}

	// The text filter already ran in the search itself.
	criteria := f.criteria()
	criteria.Query = ""

	resp := listOf(filter.Apply(results, criteria))
	resp.Query = query
	resp.PriceRange = priceRange(results)
	c.JSON(http.StatusOK, resp)
}

// Suggest serves the debounced search-as-you-type dropdown.
func (h *CatalogHandler) Suggest(c *gin.Context) {
	if h.suggester == nil {
		respondError(c, errx.New(nil, http.StatusServiceUnavailable, "suggestions are disabled"))
		return
	}
	client := c.GetHeader(headerUserID)
	if client == "" {
		client = c.ClientIP()
	}
	products, err := h.suggester.Suggest(c.Request.Context(), client, c.Query("q"))
	if err != nil {
		if errors.Is(err, errx.ErrSuperseded) {
			respondError(c, err)
			return
		}
		respondError(c, errx.New(err, http.StatusServiceUnavailable, "suggestions unavailable"))
		return
	}
	c.JSON(http.StatusOK, listOf(products))
}

func (h *CatalogHandler) RecentSearches(c *gin.Context) {
	user, ok := h.recentUser(c)
	if !ok {
		return
	}
	terms, err := h.recent.List(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"searches": terms})
}

func (h *CatalogHandler) ClearRecentSearches(c *gin.Context) {
	user, ok := h.recentUser(c)
	if !ok {
		return
	}
	if err := h.recent.Clear(c.Request.Context(), user); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) recentUser(c *gin.Context) (string, bool) {
	if h.recent == nil {
		respondError(c, errx.New(nil, http.StatusServiceUnavailable, "recent searches are disabled"))
		return "", false
	}
	user := strings.TrimSpace(c.GetHeader(headerUserID))
	if user == "" {
		respondError(c, errx.BadRequest(headerUserID+" header is required"))
		return "", false
	}
	return user, true
}

func priceRange(products []model.Product) *PriceRange {
	lo, hi, ok := filter.PriceBounds(products)
	if !ok {
		return nil
	}
	return &PriceRange{Min: lo, Max: hi}
}

func respondError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(errx.StatusOf(err), errorResponse{Error: errx.PublicMessage(err)})
}
