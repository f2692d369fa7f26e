package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"droneflow/internal/core/application/workflow"
	"droneflow/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Dispatcher is the part of workflow.Controller the server drives.
type Dispatcher interface {
	Dispatch(ctx context.Context, intent workflow.Intent) (workflow.Snapshot, error)
}

// Server maps the workflow presentation boundary onto HTTP.
type Server struct {
	dispatcher Dispatcher
	feed       *Feed
	logger     *slog.Logger
}

func NewServer(dispatcher Dispatcher, feed *Feed, logger *slog.Logger) *Server {
	return &Server{
		dispatcher: dispatcher,
		feed:       feed,
		logger:     logger.With("component", "http_server"),
	}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/workflow", s.GetWorkflow)
	api.POST("/workflow/intents", s.PostIntent)
	api.GET("/notifications", s.GetNotifications)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetWorkflow handles GET /api/v1/workflow - the latest rendered snapshot.
func (s *Server) GetWorkflow(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.feed.Latest())
}

// GetNotifications handles GET /api/v1/notifications - newest first.
func (s *Server) GetNotifications(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.feed.Notifications())
}

// PostIntent handles POST /api/v1/workflow/intents.
//
// 200 applied, 422 rejected with a taxonomy code, 409 blocked by the current
// state, 404 nothing to track, 503 shutting down, 400 malformed request.
func (s *Server) PostIntent(ctx echo.Context) error {
	var req IntentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    "BadRequest",
			Message: "Invalid request body",
		})
	}

	intent, err := req.toIntent()
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    "BadRequest",
			Message: "Invalid intent: " + err.Error(),
		})
	}

	snapshot, err := s.dispatcher.Dispatch(ctx.Request().Context(), intent)
	if err == nil {
		return ctx.JSON(http.StatusOK, IntentResponse{Snapshot: snapshot})
	}

	status, body := s.toError(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Intent failed", "intent", intent.Name(), "error", err)
	}
	return ctx.JSON(status, IntentResponse{Error: &body, Snapshot: snapshot})
}

func (s *Server) toError(err error) (int, Error) {
	if workflow.IsRejection(err) {
		return http.StatusUnprocessableEntity, Error{Code: string(workflow.RejectionCode(err)), Message: err.Error()}
	}

	switch {
	case errors.Is(err, order.ErrValidationBlocked):
		return http.StatusConflict, Error{Code: "ValidationBlocked", Message: "Fill in the required fields first"}
	case errors.Is(err, workflow.ErrDraftFrozen):
		return http.StatusConflict, Error{Code: "DraftFrozen", Message: err.Error()}
	case errors.Is(err, workflow.ErrWorkflowBusy):
		return http.StatusConflict, Error{Code: "WorkflowBusy", Message: err.Error()}
	case errors.Is(err, workflow.ErrNoTracker):
		return http.StatusNotFound, Error{Code: "NoTracker", Message: err.Error()}
	case errors.Is(err, workflow.ErrWorkflowClosed):
		return http.StatusServiceUnavailable, Error{Code: "WorkflowClosed", Message: err.Error()}
	default:
		return http.StatusInternalServerError, Error{Code: "Internal", Message: "Failed to apply intent"}
	}
}
