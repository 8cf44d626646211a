package tools

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/seasonal-storefront/server/internal/catalog/model"
	"github.com/seasonal-storefront/server/internal/catalog/pricing"
	errx "github.com/seasonal-storefront/server/internal/core/error"
)

type GetProductDetailsInput struct {
	ProductID string `json:"product_id"`
}

type GetProductDetailsOutput struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Price           int               `json:"price"`
	FormattedPrice  string            `json:"formatted_price"`
	DiscountPercent int               `json:"discount_percent,omitempty"`
	Specifications  map[string]string `json:"specifications"`
	InStock         bool              `json:"in_stock"`
}

func createGetProductDetailsTool(c Catalog) tool.InvokableTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolGetProductDetails,
			Desc: "Get full details of one product: description, price, discount, sizes, stock and tags. Use this tool when a shopper asks about a specific product from search_product results.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"product_id": {
					Type:     "string",
					Desc:     "Product ID obtained from search_product results (e.g., clothing-1, toys-3). Must be exact ID from search results.",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *GetProductDetailsInput) (*GetProductDetailsOutput, error) {
			if strings.TrimSpace(in.ProductID) == "" {
				return nil, fmt.Errorf("product_id is required")
			}

			p, ok := c.ProductByID(ctx, in.ProductID)
			if !ok {
				return nil, errx.NotFound(fmt.Sprintf("product not found: %s", in.ProductID))
			}
			return details(p), nil
		},
	)
}

func details(p model.Product) *GetProductDetailsOutput {
	specs := map[string]string{
		"category": p.Category,
		"rating":   strconv.FormatFloat(p.Rating, 'f', 1, 64),
		"on_sale":  strconv.FormatBool(p.IsOnSale),
	}
	if p.OriginalPrice != nil {
		specs["original_price"] = pricing.Format(*p.OriginalPrice)
	}
	if len(p.Sizes) > 0 {
		specs["sizes"] = strings.Join(p.Sizes, ", ")
	}
	if len(p.Tags) > 0 {
		specs["tags"] = strings.Join(p.Tags, ", ")
	}
	if p.StockLeft != nil {
		specs["stock_left"] = strconv.Itoa(*p.StockLeft)
	}
	if p.DealType != "" {
		specs["deal_type"] = p.DealType
	}
	if p.DealEnds != "" {
		specs["deal_ends"] = p.DealEnds
	}

	return &GetProductDetailsOutput{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		FormattedPrice:  pricing.Format(p.Price),
		DiscountPercent: pricing.Discount(p),
		Specifications:  specs,
		InStock:         p.StockLeft == nil || *p.StockLeft > 0,
	}
}
