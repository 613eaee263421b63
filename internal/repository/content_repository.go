package repository

import (
	"context"

	"tokokom/internal/domain/model"
)

// Konten situs: blok teks per section/bahasa, testimoni, FAQ.
type ContentRepository interface {
	FindSection(ctx context.Context, section string, locale model.Locale) (model.SiteContent, error)
	UpsertSection(ctx context.Context, c model.SiteContent) error

	ListTestimonials(ctx context.Context, publishedOnly bool) ([]model.Testimonial, error)
	CreateTestimonial(ctx context.Context, t model.Testimonial) (model.Testimonial, error)
	SetTestimonialPublished(ctx context.Context, id int64, published bool) error
	DeleteTestimonial(ctx context.Context, id int64) error

	// Urut position naik.
	ListFAQ(ctx context.Context, locale model.Locale) ([]model.FAQEntry, error)
	UpsertFAQ(ctx context.Context, e model.FAQEntry) (model.FAQEntry, error)
	DeleteFAQ(ctx context.Context, id int64) error
}
