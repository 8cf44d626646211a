package observers

import (
	"bytes"
	"context"
	"strings"
	"testing"

	einocb "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components"
	"github.com/cloudwego/eino/components/tool"

	"github.com/seasonal-storefront/server/internal/core"
	logx "github.com/seasonal-storefront/server/pkg/logger"
)

func TestToolCallbacks_LogLifecycle(t *testing.T) {
	var buf bytes.Buffer
	logx.Init(logx.LoggerOpts{Environment: core.Production, Level: "debug", Writer: &buf})
	t.Cleanup(func() { logx.Init() })

	ctx := einocb.InitCallbacks(context.Background(), &einocb.RunInfo{
		Name:      "search_product",
		Component: components.ComponentOfTool,
	}, NewToolCallbacks())
	ctx = einocb.OnStart(ctx, &tool.CallbackInput{ArgumentsInJSON: `{"query":"mug"}`})
	einocb.OnEnd(ctx, &tool.CallbackOutput{Response: `{"total":1}`})

	out := buf.String()
	for _, want := range []string{`"tool":"search_product"`, `"message":"tool start"`, `"message":"tool end"`, `"took"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %s:\n%s", want, out)
		}
	}
}
