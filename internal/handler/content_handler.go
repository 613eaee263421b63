package handler

import (
	"net/http"

	"tokokom/internal/domain/model"
	"tokokom/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ContentHandler struct {
	uc *usecase.ContentUsecase
}

// DI
func NewContentHandler(uc *usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

func (h *ContentHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/content/:section", h.getSection)
	e.GET("/testimonials", h.listTestimonials)
	e.GET("/faq", h.listFAQ)
}

// ?lang=id|en, default id
func pageLocale(c echo.Context) model.Locale {
	lang := c.QueryParam("lang")
	if lang == "" {
		return model.LocaleID
	}
	return model.Locale(lang)
}

func (h *ContentHandler) getSection(c echo.Context) error {
	out, err := h.uc.GetSection(c.Request().Context(), c.Param("section"), pageLocale(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ContentHandler) listTestimonials(c echo.Context) error {
	out, err := h.uc.ListTestimonials(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ContentHandler) listFAQ(c echo.Context) error {
	out, err := h.uc.ListFAQ(c.Request().Context(), pageLocale(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
