// Package tools exposes the catalog as eino invokable tools so an assistant
// or any tool-calling client can search products and look them up by id.
package tools

import (
	"context"

	"github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"github.com/seasonal-storefront/server/internal/catalog/model"
)

const (
	ToolSearchProduct     = "search_product"
	ToolGetProductDetails = "get_product_details"
)

// Catalog is the slice of the catalog service the tools need.
type Catalog interface {
	SearchProducts(ctx context.Context, query string) []model.Product
	ProductByID(ctx context.Context, id string) (model.Product, bool)
}

// GetCatalogTools returns every catalog tool bound to c.
func GetCatalogTools(c Catalog) []tool.InvokableTool {
	return []tool.InvokableTool{
		createSearchProductTool(c),
		createGetProductDetailsTool(c),
	}
}

// GetToolInfos collects the schema of each tool.
func GetToolInfos(ctx context.Context, tools []tool.InvokableTool) ([]*schema.ToolInfo, error) {
	infos := make([]*schema.ToolInfo, 0, len(tools))
	for _, t := range tools {
		info, err := t.Info(ctx)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Run invokes t outside of a graph, reporting its lifecycle to handlers.
func Run(ctx context.Context, t tool.InvokableTool, args string, handlers ...callbacks.Handler) (string, error) {
	info, err := t.Info(ctx)
	if err != nil {
		return "", err
	}
	if len(handlers) > 0 {
		ctx = callbacks.InitCallbacks(ctx, &callbacks.RunInfo{
			Name:      info.Name,
			Type:      "CatalogTool",
			Component: components.ComponentOfTool,
		}, handlers...)
		ctx = callbacks.OnStart(ctx, &tool.CallbackInput{ArgumentsInJSON: args})
	}

	out, err := t.InvokableRun(ctx, args)
	if len(handlers) > 0 {
		if err != nil {
			callbacks.OnError(ctx, err)
		} else {
			callbacks.OnEnd(ctx, &tool.CallbackOutput{Response: out})
		}
	}
	return out, err
}
