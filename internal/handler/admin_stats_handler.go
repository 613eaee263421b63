package handler

import (
	"net/http"
	"strconv"

	"tokokom/internal/config"
	"tokokom/internal/middleware"
	"tokokom/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminStatsHandler struct {
	uc *usecase.AnalyticsUsecase
}

// DI
func NewAdminStatsHandler(uc *usecase.AnalyticsUsecase) *AdminStatsHandler {
	return &AdminStatsHandler{uc: uc}
}

func (h *AdminStatsHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	admin := e.Group("/admin")

	admin.Use(middleware.AuthJWT(cfg))
	admin.Use(middleware.AdminRoleGuard())

	admin.GET("/stats/daily", h.dailyStats)
}

func (h *AdminStatsHandler) dailyStats(c echo.Context) error {
	days := 30
	if v := c.QueryParam("days"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid days"})
		}
		days = d
	}

	out, err := h.uc.AdminDailyStats(c.Request().Context(), days)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
