// Package httpapi is the storefront's HTTP surface: the catalog API the
// pages call and, optionally, a stand-in for the product backend.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type RouterOpts struct {
	Catalog *CatalogHandler
	// Backend, when set, is mounted under /api/products.
	Backend *BackendHandler
	Tools   *ToolsHandler
}

func NewRouter(opts RouterOpts) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), Logger())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	if h := opts.Catalog; h != nil {
		api := r.Group("/api/catalog")
		{
			api.GET("/categories/:category", h.ByCategory)
			api.GET("/sale", h.OnSale)
			api.GET("/featured", h.Featured)
			api.GET("/products", h.All)
			api.GET("/products/:id", h.ProductByID)
			api.GET("/search", h.Search)
			api.GET("/suggest", h.Suggest)
			api.GET("/recent-searches", h.RecentSearches)
			api.DELETE("/recent-searches", h.ClearRecentSearches)
		}
	}

	if h := opts.Backend; h != nil {
		products := r.Group("/api/products")
		{
			products.GET("", h.List)
			products.GET("/sale", h.OnSale)
			products.GET("/search", h.Search)
			products.GET("/category/:category", h.ByCategory)
			products.GET("/:id", h.ByID)
		}
	}

	if h := opts.Tools; h != nil {
		api := r.Group("/api/tools")
		{
			api.GET("", h.List)
			api.POST("/:name", h.Invoke)
		}
	}

	return r
}
