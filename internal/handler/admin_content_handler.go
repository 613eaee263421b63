package handler

import (
	"net/http"
	"strconv"

	"tokokom/internal/config"
	"tokokom/internal/domain/model"
	"tokokom/internal/middleware"
	"tokokom/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminContentHandler struct {
	uc *usecase.ContentUsecase
}

// DI
func NewAdminContentHandler(uc *usecase.ContentUsecase) *AdminContentHandler {
	return &AdminContentHandler{uc: uc}
}

type UpsertSectionRequest struct {
	Locale string `json:"locale"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

type CreateTestimonialRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Rating  int    `json:"rating"`
}

type PublishTestimonialRequest struct {
	Published bool `json:"published"`
}

type UpsertFAQRequest struct {
	ID       int64  `json:"id"`
	Locale   string `json:"locale"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Position int64  `json:"position"`
}

func (h *AdminContentHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	admin := e.Group("/admin")

	admin.Use(middleware.AuthJWT(cfg))
	admin.Use(middleware.AdminRoleGuard())

	admin.PUT("/content/:section", h.upsertSection)

	admin.GET("/testimonials", h.listTestimonials)
	admin.POST("/testimonials", h.createTestimonial)
	admin.PATCH("/testimonials/:id/published", h.publishTestimonial)
	admin.DELETE("/testimonials/:id", h.deleteTestimonial)

	admin.POST("/faq", h.upsertFAQ)
	admin.DELETE("/faq/:id", h.deleteFAQ)
}

func (h *AdminContentHandler) upsertSection(c echo.Context) error {
	var req UpsertSectionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.uc.AdminUpsertSection(c.Request().Context(), usecase.UpsertSectionInput{
		Section: c.Param("section"),
		Locale:  model.Locale(req.Locale),
		Title:   req.Title,
		Body:    req.Body,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "updated"})
}

func (h *AdminContentHandler) listTestimonials(c echo.Context) error {
	out, err := h.uc.AdminListTestimonials(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminContentHandler) createTestimonial(c echo.Context) error {
	var req CreateTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	t, err := h.uc.AdminCreateTestimonial(c.Request().Context(), usecase.CreateTestimonialInput{
		Name:    req.Name,
		Message: req.Message,
		Rating:  req.Rating,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, t)
}

func (h *AdminContentHandler) publishTestimonial(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req PublishTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.AdminSetTestimonialPublished(c.Request().Context(), id, req.Published); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "updated"})
}

func (h *AdminContentHandler) deleteTestimonial(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.AdminDeleteTestimonial(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}

func (h *AdminContentHandler) upsertFAQ(c echo.Context) error {
	var req UpsertFAQRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	e, err := h.uc.AdminUpsertFAQ(c.Request().Context(), usecase.UpsertFAQInput{
		ID:       req.ID,
		Locale:   model.Locale(req.Locale),
		Question: req.Question,
		Answer:   req.Answer,
		Position: req.Position,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, e)
}

func (h *AdminContentHandler) deleteFAQ(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.AdminDeleteFAQ(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}
