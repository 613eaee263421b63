package handler

import (
	"net/http"

	"tokokom/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

// DI
func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/checkout/whatsapp", h.whatsapp)
}

func (h *CheckoutHandler) whatsapp(c echo.Context) error {
	out, err := h.uc.BuildWhatsAppOrder(c.Request().Context(), cartToken(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
