package server

import (
	"tokokom/internal/config"
	"tokokom/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Product      *handler.ProductHandler
	Cart         *handler.CartHandler
	Checkout     *handler.CheckoutHandler
	Content      *handler.ContentHandler
	Event        *handler.EventHandler
	Auth         *handler.AuthHandler
	AdminProduct *handler.AdminProductHandler
	AdminContent *handler.AdminContentHandler
	AdminStats   *handler.AdminStatsHandler
}

func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FEURL},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, handler.CartTokenHeader},
		AllowCredentials: true,
	}))

	RegisterRoutes(e, cfg, h)
	return e
}

func Start(addr string, cfg config.Config, h Handlers) error {
	return New(cfg, h).Start(addr)
}
