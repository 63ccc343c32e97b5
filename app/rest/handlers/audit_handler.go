package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cognito-auth-service/app/domain"
	"cognito-auth-service/app/port"
)

const maxAuditPageSize = 200

// AuditHandler exposes the append-only auth event trail
type AuditHandler struct {
	audit  port.AuditRepository
	logger *slog.Logger
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(audit port.AuditRepository, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{
		audit:  audit,
		logger: logger,
	}
}

// AuditEventsResponse wraps a page of audit events
type AuditEventsResponse struct {
	Events []*domain.AuthEvent `json:"events"`
	Count  int                 `json:"count"`
}

// RecentEvents handles GET /v1/audit/events
// @Summary List recent auth events
// @Tags audit
// @Produce json
// @Param limit query int false "Maximum events to return (default 50)"
// @Success 200 {object} AuditEventsResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/audit/events [get]
func (h *AuditHandler) RecentEvents(c echo.Context) error {
	limit := 50
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return badRequest(c, "limit must be a positive integer")
		}
		limit = parsed
	}
	if limit > maxAuditPageSize {
		limit = maxAuditPageSize
	}

	events, err := h.audit.RecentEvents(c.Request().Context(), limit)
	if err != nil {
		h.logger.Error("failed to list auth events", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list auth events",
			Code:  string(domain.KindInternal),
		})
	}

	if events == nil {
		events = []*domain.AuthEvent{}
	}

	return c.JSON(http.StatusOK, AuditEventsResponse{
		Events: events,
		Count:  len(events),
	})
}
