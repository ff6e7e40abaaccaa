package httpadapter

import (
	"context"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func TestApplyCORSHeaders(t *testing.T) {
	ctx := &app.RequestContext{}
	applyCORSHeaders(ctx, "*")

	if got, want := string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")), "*"; got != want {
		t.Fatalf("allow-origin mismatch: got=%q want=%q", got, want)
	}
	if got, want := string(ctx.Response.Header.Peek("Access-Control-Allow-Methods")), corsAllowMethods; got != want {
		t.Fatalf("allow-methods mismatch: got=%q want=%q", got, want)
	}
	if got, want := string(ctx.Response.Header.Peek("Access-Control-Allow-Headers")), corsAllowHeaders; got != want {
		t.Fatalf("allow-headers mismatch: got=%q want=%q", got, want)
	}
}

func TestCORSMiddleware_ShortCircuitsPreflight(t *testing.T) {
	ctx := &app.RequestContext{}
	ctx.Request.Header.SetMethod(consts.MethodOptions)

	corsMiddleware("")(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusNoContent; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if !ctx.IsAborted() {
		t.Fatalf("expected preflight to abort the chain")
	}
}

func TestCORSMiddleware_PinnedOrigin(t *testing.T) {
	ctx := &app.RequestContext{}
	ctx.Request.Header.SetMethod(consts.MethodGet)

	corsMiddleware("https://arena.example")(context.Background(), ctx)

	if got, want := string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")), "https://arena.example"; got != want {
		t.Fatalf("allow-origin mismatch: got=%q want=%q", got, want)
	}
	if got, want := string(ctx.Response.Header.Peek("Vary")), "Origin"; got != want {
		t.Fatalf("vary mismatch: got=%q want=%q", got, want)
	}
	if ctx.IsAborted() {
		t.Fatalf("non-preflight request must not abort")
	}
}
