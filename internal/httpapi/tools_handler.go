package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"

	einocb "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components/tool"
	"github.com/gin-gonic/gin"

	errx "github.com/seasonal-storefront/server/internal/core/error"
	"github.com/seasonal-storefront/server/internal/graph/observers"
	"github.com/seasonal-storefront/server/internal/graph/tools"
)

// maxToolArgsBytes bounds a tool call's JSON arguments.
const maxToolArgsBytes = 64 << 10

type toolDescription struct {
	Name string `json:"name"`
	Desc string `json:"desc"`
}

// ToolsHandler lets tool-calling clients list and invoke the catalog tools.
type ToolsHandler struct {
	tools     map[string]tool.InvokableTool
	descs     []toolDescription
	callbacks einocb.Handler
}

func NewToolsHandler(ctx context.Context, ts []tool.InvokableTool) (*ToolsHandler, error) {
	infos, err := tools.GetToolInfos(ctx, ts)
	if err != nil {
		return nil, err
	}
	h := &ToolsHandler{
		tools:     make(map[string]tool.InvokableTool, len(ts)),
		callbacks: observers.NewToolCallbacks(),
	}
	for i, info := range infos {
		h.tools[info.Name] = ts[i]
		h.descs = append(h.descs, toolDescription{Name: info.Name, Desc: info.Desc})
	}
	return h, nil
}

func (h *ToolsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": h.descs})
}

// Invoke runs the named tool with the request body as its JSON arguments.
func (h *ToolsHandler) Invoke(c *gin.Context) {
	t, ok := h.tools[c.Param("name")]
	if !ok {
		respondError(c, errx.NotFound("unknown tool"))
		return
	}
	args, err := io.ReadAll(io.LimitReader(c.Request.Body, maxToolArgsBytes))
	if err != nil {
		respondError(c, errx.BadRequest("could not read tool arguments"))
		return
	}
	if len(args) == 0 {
		args = []byte("{}")
	}

	out, err := tools.Run(c.Request.Context(), t, string(args), h.callbacks)
	if err != nil {
		var appErr *errx.AppError
		if errors.As(err, &appErr) {
			respondError(c, err)
			return
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(out))
}
