package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/seasonal-storefront/server/internal/catalog/filter"
	"github.com/seasonal-storefront/server/internal/catalog/model"
	"github.com/seasonal-storefront/server/internal/catalog/pricing"
)

const (
	defaultMaxResults = 10
	maxMaxResults     = 20
)

// ===================================
// Search Product Tool
// ===================================

type SearchProductInput struct {
	Query      string `json:"query"`
	Category   string `json:"category,omitempty"`
	MaxResults int    `json:"max_results,omitempty"`
	OnSaleOnly bool   `json:"on_sale_only,omitempty"`
	Sort       string `json:"sort,omitempty"`
}

type ProductSummary struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Price          int     `json:"price"`
	FormattedPrice string  `json:"formatted_price"`
	Rating         float64 `json:"rating"`
	IsOnSale       bool    `json:"is_on_sale"`
}

type SearchProductOutput struct {
	Products []ProductSummary `json:"products"`
	Total    int              `json:"total"`
}

func createSearchProductTool(c Catalog) tool.InvokableTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolSearchProduct,
			Desc: "Search the seasonal storefront catalog. Matches product name, description and category. Returns product ids, names, prices and sale status. Use this tool whenever a shopper mentions a product or category.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"query": {
					Type:     "string",
					Desc:     "Search keywords, e.g. sweater, mug, teddy bear.",
					Required: true,
				},
				"category": {
					Type: "string",
					Desc: "Optional category filter. Available categories: clothing, electronics, home-decor, toys, kitchenware",
				},
				"max_results": {
					Type: "number",
					Desc: "Maximum number of products to return (default: 10, max: 20)",
				},
				"on_sale_only": {
					Type: "boolean",
					Desc: "Only return products that are currently on sale",
				},
				"sort": {
					Type: "string",
					Desc: "Sort order: default, price-low-high, price-high-low or rating",
				},
			}),
		},
		func(ctx context.Context, in *SearchProductInput) (*SearchProductOutput, error) {
			if strings.TrimSpace(in.Query) == "" {
				return nil, fmt.Errorf("query is required")
			}

			limit := in.MaxResults
			if limit <= 0 {
				limit = defaultMaxResults
			}
			limit = min(limit, maxMaxResults)

			matched := filter.Apply(c.SearchProducts(ctx, in.Query), filter.Criteria{
				Category:   strings.ToLower(strings.TrimSpace(in.Category)),
				OnSaleOnly: in.OnSaleOnly,
				Sort:       filter.ParseSortKey(in.Sort),
			})
			if len(matched) > limit {
				matched = matched[:limit]
			}

			out := &SearchProductOutput{Products: make([]ProductSummary, 0, len(matched))}
			for _, p := range matched {
				out.Products = append(out.Products, summarize(p))
			}
			out.Total = len(out.Products)
			return out, nil
		},
	)
}

func summarize(p model.Product) ProductSummary {
	return ProductSummary{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		Price:          p.Price,
		FormattedPrice: pricing.Format(p.Price),
		Rating:         p.Rating,
		IsOnSale:       p.IsOnSale,
	}
}
