package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/seasonal-storefront/server/internal/catalog/datasource"
	"github.com/seasonal-storefront/server/internal/catalog/model"
	errx "github.com/seasonal-storefront/server/internal/core/error"
)

// BackendHandler serves a Source over the product API's routes and
// envelopes, so the storefront can run against itself without the real
// backend.
type BackendHandler struct {
	source datasource.Source
}

func NewBackendHandler(source datasource.Source) *BackendHandler {
	return &BackendHandler{source: source}
}

func (h *BackendHandler) List(c *gin.Context) {
	products, err := h.source.All(c.Request.Context(), intQuery(c, "limit"), intQuery(c, "offset"))
	h.respondList(c, products, "", err)
}

func (h *BackendHandler) ByID(c *gin.Context) {
	p, err := h.source.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.ProductEnvelope{Product: p})
}

func (h *BackendHandler) ByCategory(c *gin.Context) {
	products, err := h.source.ByCategory(c.Request.Context(), c.Param("category"), intQuery(c, "limit"))
	h.respondList(c, products, "", err)
}

func (h *BackendHandler) OnSale(c *gin.Context) {
	products, err := h.source.OnSale(c.Request.Context(), intQuery(c, "limit"))
	h.respondList(c, products, "", err)
}

func (h *BackendHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		h.respondError(c, errx.BadRequest("Search query is required"))
		return
	}
	products, err := h.source.Search(c.Request.Context(), q, intQuery(c, "limit"))
	h.respondList(c, products, q, err)
}

func (h *BackendHandler) respondList(c *gin.Context, products []model.RawProduct, query string, err error) {
	if err != nil {
		h.respondError(c, err)
		return
	}
	if products == nil {
		products = []model.RawProduct{}
	}
	c.JSON(http.StatusOK, model.ProductsEnvelope{Products: products, Count: len(products), Query: query})
}

func (h *BackendHandler) respondError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(errx.StatusOf(err), model.MessageEnvelope{Message: errx.PublicMessage(err)})
}

// intQuery reads an optional integer parameter; absent or invalid means 0.
func intQuery(c *gin.Context, name string) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
