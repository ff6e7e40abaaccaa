package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"snakepath/internal/app/history"
	"snakepath/internal/app/plan"
	"snakepath/internal/app/ports"
	"snakepath/internal/domain/pathfinding"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	log "github.com/sirupsen/logrus"
)

const agentIDHeader = "X-Agent-ID"

// Handler serves the planner API. CORSOrigin is echoed in
// Access-Control-Allow-Origin; empty means "*".
type Handler struct {
	PlanUC     plan.UseCase
	HistoryUC  history.UseCase
	KPI        kpiSnapshotProvider
	CORSOrigin string
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware(h.CORSOrigin))

	planner := s.Group("/api/planner")
	planner.POST("/path", h.planPath)
	planner.GET("/history", h.history)
	planner.GET("/config", h.config)

	s.GET("/ops/kpi", h.kpi)
}

type planRequest struct {
	IdempotencyKey string                 `json:"idempotency_key"`
	Body           []pathfinding.Position `json:"body"`
	Target         *pathfinding.Position  `json:"target"`
}

type configResponse struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

var ErrMissingAgentIDHeader = errors.New("missing x-agent-id header")
var ErrMissingTarget = errors.New("missing target")

func (h Handler) planPath(c context.Context, ctx *app.RequestContext) {
	agentID, err := requireAgentID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var body planRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if body.Target == nil {
		writeError(ctx, ErrMissingTarget)
		return
	}

	resp, err := h.PlanUC.Execute(c, plan.Request{
		AgentID:        agentID,
		IdempotencyKey: body.IdempotencyKey,
		Body:           body.Body,
		Target:         *body.Target,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) history(c context.Context, ctx *app.RequestContext) {
	agentID, err := requireAgentID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	occurredFrom, _ := strconv.ParseInt(string(ctx.Query("occurred_from")), 10, 64)
	occurredTo, _ := strconv.ParseInt(string(ctx.Query("occurred_to")), 10, 64)
	resp, err := h.HistoryUC.Execute(c, history.Request{
		AgentID:      agentID,
		Limit:        limit,
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) config(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, configResponse{
		Width:  h.PlanUC.Planner.Width(),
		Height: h.PlanUC.Planner.Height(),
	})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func requireAgentID(ctx *app.RequestContext) (string, error) {
	agentID := strings.TrimSpace(string(ctx.GetHeader(agentIDHeader)))
	if agentID == "" {
		return "", ErrMissingAgentIDHeader
	}
	return agentID, nil
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	var oob *pathfinding.OutOfBoundsError
	switch {
	case errors.Is(err, ErrMissingAgentIDHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_agent_id", err.Error())
	case errors.As(err, &oob):
		writeErrorDetails(ctx, consts.StatusBadRequest, "position_out_of_bounds", err.Error(), map[string]any{
			"pos":    map[string]int{"x": oob.Pos.X, "y": oob.Pos.Y},
			"width":  oob.Width,
			"height": oob.Height,
		})
	case errors.Is(err, ErrMissingTarget),
		errors.Is(err, plan.ErrInvalidRequest),
		errors.Is(err, history.ErrInvalidRequest),
		errors.Is(err, pathfinding.ErrEmptyBody):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		log.WithError(err).WithField("path", string(ctx.Path())).Error("request failed")
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

func writeErrorDetails(ctx *app.RequestContext, status int, code, message string, details map[string]any) {
	ctx.JSON(status, map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
