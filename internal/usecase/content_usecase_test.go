package usecase_test

import (
	"context"
	"testing"

	"tokokom/internal/domain/model"
	repo "tokokom/internal/repository"
	"tokokom/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type ContentRepoMock struct{ mock.Mock }

func (m *ContentRepoMock) FindSection(ctx context.Context, section string, locale model.Locale) (model.SiteContent, error) {
	args := m.Called(ctx, section, locale)
	c, _ := args.Get(0).(model.SiteContent)
	return c, args.Error(1)
}

func (m *ContentRepoMock) UpsertSection(ctx context.Context, c model.SiteContent) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *ContentRepoMock) ListTestimonials(ctx context.Context, publishedOnly bool) ([]model.Testimonial, error) {
	args := m.Called(ctx, publishedOnly)
	out, _ := args.Get(0).([]model.Testimonial)
	return out, args.Error(1)
}

func (m *ContentRepoMock) CreateTestimonial(ctx context.Context, t model.Testimonial) (model.Testimonial, error) {
	args := m.Called(ctx, t)
	created, _ := args.Get(0).(model.Testimonial)
	return created, args.Error(1)
}

func (m *ContentRepoMock) SetTestimonialPublished(ctx context.Context, id int64, published bool) error {
	args := m.Called(ctx, id, published)
	return args.Error(0)
}

func (m *ContentRepoMock) DeleteTestimonial(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ContentRepoMock) ListFAQ(ctx context.Context, locale model.Locale) ([]model.FAQEntry, error) {
	args := m.Called(ctx, locale)
	out, _ := args.Get(0).([]model.FAQEntry)
	return out, args.Error(1)
}

func (m *ContentRepoMock) UpsertFAQ(ctx context.Context, e model.FAQEntry) (model.FAQEntry, error) {
	args := m.Called(ctx, e)
	saved, _ := args.Get(0).(model.FAQEntry)
	return saved, args.Error(1)
}

func (m *ContentRepoMock) DeleteFAQ(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestContentUsecase_GetSection_FallbackToIndonesian(t *testing.T) {
	ctx := context.Background()

	cRepo := new(ContentRepoMock)
	uc := usecase.NewContentUsecase(cRepo)

	cRepo.On("FindSection", mock.Anything, "hero", model.LocaleEN).Return(model.SiteContent{}, repo.ErrNotFound)
	cRepo.On("FindSection", mock.Anything, "hero", model.LocaleID).
		Return(model.SiteContent{Section: "hero", Locale: model.LocaleID, Title: "Servis Cepat"}, nil)

	out, err := uc.GetSection(ctx, "hero", model.LocaleEN)
	assert.NoError(t, err)
	assert.Equal(t, "Servis Cepat", out.Title)

	cRepo.AssertExpectations(t)
}

func TestContentUsecase_GetSection_InvalidLocale(t *testing.T) {
	uc := usecase.NewContentUsecase(new(ContentRepoMock))

	_, err := uc.GetSection(context.Background(), "hero", "fr")
	assertErrContains(t, err, "invalid locale")
}

func TestContentUsecase_AdminCreateTestimonial_RatingBounds(t *testing.T) {
	uc := usecase.NewContentUsecase(new(ContentRepoMock))

	_, err := uc.AdminCreateTestimonial(context.Background(), usecase.CreateTestimonialInput{Name: "Budi", Message: "Mantap", Rating: 6})
	assertErrContains(t, err, "rating must be 1-5")

	_, err = uc.AdminCreateTestimonial(context.Background(), usecase.CreateTestimonialInput{Name: "Budi", Message: "Mantap", Rating: 0})
	assertErrContains(t, err, "rating must be 1-5")
}

func TestContentUsecase_ListTestimonials_PublishedOnly(t *testing.T) {
	cRepo := new(ContentRepoMock)
	uc := usecase.NewContentUsecase(cRepo)

	cRepo.On("ListTestimonials", mock.Anything, true).
		Return([]model.Testimonial{{ID: 1, Name: "Sari", Published: true}}, nil)

	out, err := uc.ListTestimonials(context.Background())
	assert.NoError(t, err)
	assert.Len(t, out, 1)

	cRepo.AssertExpectations(t)
}

func TestContentUsecase_AdminUpsertFAQ_Validation(t *testing.T) {
	uc := usecase.NewContentUsecase(new(ContentRepoMock))

	_, err := uc.AdminUpsertFAQ(context.Background(), usecase.UpsertFAQInput{Locale: "id", Question: " ", Answer: "a"})
	assertErrContains(t, err, "question required")

	_, err = uc.AdminUpsertFAQ(context.Background(), usecase.UpsertFAQInput{Locale: "xx", Question: "q", Answer: "a"})
	assertErrContains(t, err, "invalid locale")
}
