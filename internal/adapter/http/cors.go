package httpadapter

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const corsAllowMethods = "GET,POST,OPTIONS"
const corsAllowHeaders = "Content-Type,X-Agent-ID"

// corsMiddleware answers preflight requests itself. An empty origin allows any.
func corsMiddleware(origin string) app.HandlerFunc {
	if origin == "" {
		origin = "*"
	}
	return func(c context.Context, ctx *app.RequestContext) {
		applyCORSHeaders(ctx, origin)
		if string(ctx.Method()) == consts.MethodOptions {
			ctx.AbortWithStatus(consts.StatusNoContent)
			return
		}
		ctx.Next(c)
	}
}

func applyCORSHeaders(ctx *app.RequestContext, origin string) {
	h := &ctx.Response.Header
	h.Set("Access-Control-Allow-Origin", origin)
	h.Set("Access-Control-Allow-Methods", corsAllowMethods)
	h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
	h.Set("Access-Control-Max-Age", "600")
	if origin != "*" {
		h.Set("Vary", "Origin")
	}
}
