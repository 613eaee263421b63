package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"tokokom/internal/domain/model"
	repo "tokokom/internal/repository"
)

type ContentUsecase struct {
	contentRepo repo.ContentRepository
}

// DI
func NewContentUsecase(contentRepo repo.ContentRepository) *ContentUsecase {
	return &ContentUsecase{contentRepo: contentRepo}
}

// GetSection mengambil blok konten per bahasa. Konten EN yang belum
// diterjemahkan fallback ke ID supaya halaman tidak bolong.
func (u *ContentUsecase) GetSection(ctx context.Context, section string, locale model.Locale) (model.SiteContent, error) {
	if strings.TrimSpace(section) == "" {
		return model.SiteContent{}, NewHTTPError(http.StatusBadRequest, "section required")
	}
	if !model.IsValidLocale(locale) {
		return model.SiteContent{}, NewHTTPError(http.StatusBadRequest, "invalid locale")
	}

	c, err := u.contentRepo.FindSection(ctx, section, locale)
	if errors.Is(err, repo.ErrNotFound) && locale != model.LocaleID {
		c, err = u.contentRepo.FindSection(ctx, section, model.LocaleID)
	}
	if errors.Is(err, repo.ErrNotFound) {
		return model.SiteContent{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.SiteContent{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

type UpsertSectionInput struct {
	Section string
	Locale  model.Locale
	Title   string
	Body    string
}

func (u *ContentUsecase) AdminUpsertSection(ctx context.Context, in UpsertSectionInput) error {
	if strings.TrimSpace(in.Section) == "" {
		return NewHTTPError(http.StatusBadRequest, "section required")
	}
	if !model.IsValidLocale(in.Locale) {
		return NewHTTPError(http.StatusBadRequest, "invalid locale")
	}
	if strings.TrimSpace(in.Title) == "" {
		return NewHTTPError(http.StatusBadRequest, "title required")
	}

	err := u.contentRepo.UpsertSection(ctx, model.SiteContent{
		Section: strings.TrimSpace(in.Section),
		Locale:  in.Locale,
		Title:   strings.TrimSpace(in.Title),
		Body:    in.Body,
	})
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *ContentUsecase) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	out, err := u.contentRepo.ListTestimonials(ctx, true)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return out, nil
}

func (u *ContentUsecase) AdminListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	out, err := u.contentRepo.ListTestimonials(ctx, false)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return out, nil
}

type CreateTestimonialInput struct {
	Name    string
	Message string
	Rating  int
}

func (u *ContentUsecase) AdminCreateTestimonial(ctx context.Context, in CreateTestimonialInput) (model.Testimonial, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Testimonial{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if strings.TrimSpace(in.Message) == "" {
		return model.Testimonial{}, NewHTTPError(http.StatusBadRequest, "message required")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return model.Testimonial{}, NewHTTPError(http.StatusBadRequest, "rating must be 1-5")
	}

	t, err := u.contentRepo.CreateTestimonial(ctx, model.Testimonial{
		Name:    strings.TrimSpace(in.Name),
		Message: strings.TrimSpace(in.Message),
		Rating:  in.Rating,
	})
	if err != nil {
		return model.Testimonial{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return t, nil
}

func (u *ContentUsecase) AdminSetTestimonialPublished(ctx context.Context, id int64, published bool) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.contentRepo.SetTestimonialPublished(ctx, id, published)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *ContentUsecase) AdminDeleteTestimonial(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.contentRepo.DeleteTestimonial(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *ContentUsecase) ListFAQ(ctx context.Context, locale model.Locale) ([]model.FAQEntry, error) {
	if !model.IsValidLocale(locale) {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid locale")
	}

	out, err := u.contentRepo.ListFAQ(ctx, locale)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return out, nil
}

type UpsertFAQInput struct {
	ID       int64
	Locale   model.Locale
	Question string
	Answer   string
	Position int64
}

func (u *ContentUsecase) AdminUpsertFAQ(ctx context.Context, in UpsertFAQInput) (model.FAQEntry, error) {
	if !model.IsValidLocale(in.Locale) {
		return model.FAQEntry{}, NewHTTPError(http.StatusBadRequest, "invalid locale")
	}
	if strings.TrimSpace(in.Question) == "" {
		return model.FAQEntry{}, NewHTTPError(http.StatusBadRequest, "question required")
	}
	if strings.TrimSpace(in.Answer) == "" {
		return model.FAQEntry{}, NewHTTPError(http.StatusBadRequest, "answer required")
	}

	e, err := u.contentRepo.UpsertFAQ(ctx, model.FAQEntry{
		ID:       in.ID,
		Locale:   in.Locale,
		Question: strings.TrimSpace(in.Question),
		Answer:   strings.TrimSpace(in.Answer),
		Position: in.Position,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return model.FAQEntry{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.FAQEntry{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return e, nil
}

func (u *ContentUsecase) AdminDeleteFAQ(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.contentRepo.DeleteFAQ(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
