package server

import (
	"tokokom/internal/config"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	// publik
	h.Product.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e)
	h.Checkout.RegisterRoutes(e)
	h.Content.RegisterRoutes(e)
	h.Event.RegisterRoutes(e)
	h.Auth.RegisterRoutes(e)

	// back-office
	h.AdminProduct.RegisterRoutes(e, cfg)
	h.AdminContent.RegisterRoutes(e, cfg)
	h.AdminStats.RegisterRoutes(e, cfg)
}
