package handler

import (
	"net/http"

	"tokokom/internal/domain/model"
	"tokokom/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Beacon analytics dari frontend.
type EventHandler struct {
	uc *usecase.AnalyticsUsecase
}

// DI
func NewEventHandler(uc *usecase.AnalyticsUsecase) *EventHandler {
	return &EventHandler{uc: uc}
}

type RecordEventRequest struct {
	Type   string `json:"type"`
	Path   string `json:"path"`
	Locale string `json:"locale"`
}

func (h *EventHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/events", h.record)
}

func (h *EventHandler) record(c echo.Context) error {
	var req RecordEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.uc.RecordEvent(c.Request().Context(), usecase.RecordEventInput{
		Type:   model.EventType(req.Type),
		Path:   req.Path,
		Locale: model.Locale(req.Locale),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusAccepted, SuccessResponse{Message: "recorded"})
}
