package repository

import (
	"context"
	"errors"

	"tokokom/internal/domain/model"
	repo "tokokom/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContentGormRepository struct {
	db *gorm.DB
}

// DI
func NewContentGormRepository(db *gorm.DB) *ContentGormRepository {
	return &ContentGormRepository{db: db}
}

func (r *ContentGormRepository) FindSection(ctx context.Context, section string, locale model.Locale) (model.SiteContent, error) {
	var c model.SiteContent
	err := r.db.WithContext(ctx).
		Where("section = ? AND locale = ?", section, locale).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.SiteContent{}, repo.ErrNotFound
	}
	if err != nil {
		return model.SiteContent{}, err
	}
	return c, nil
}

// UpsertSection: satu baris per (section, locale).
func (r *ContentGormRepository) UpsertSection(ctx context.Context, c model.SiteContent) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "section"}, {Name: "locale"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "body", "updated_at"}),
		}).
		Create(&c).Error
}

func (r *ContentGormRepository) ListTestimonials(ctx context.Context, publishedOnly bool) ([]model.Testimonial, error) {
	var out []model.Testimonial

	tx := r.db.WithContext(ctx).Model(&model.Testimonial{})
	if publishedOnly {
		tx = tx.Where("published = ?", true)
	}

	if err := tx.Order("created_at desc").Find(&out).Error; err != nil {
		return []model.Testimonial{}, err
	}
	return out, nil
}

func (r *ContentGormRepository) CreateTestimonial(ctx context.Context, t model.Testimonial) (model.Testimonial, error) {
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return model.Testimonial{}, err
	}
	return t, nil
}

func (r *ContentGormRepository) SetTestimonialPublished(ctx context.Context, id int64, published bool) error {
	res := r.db.WithContext(ctx).
		Model(&model.Testimonial{}).
		Where("id = ?", id).
		Update("published", published)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ContentGormRepository) DeleteTestimonial(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Testimonial{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ContentGormRepository) ListFAQ(ctx context.Context, locale model.Locale) ([]model.FAQEntry, error) {
	var out []model.FAQEntry
	err := r.db.WithContext(ctx).
		Where("locale = ?", locale).
		Order("position asc").
		Order("id asc").
		Find(&out).Error
	if err != nil {
		return []model.FAQEntry{}, err
	}
	return out, nil
}

func (r *ContentGormRepository) UpsertFAQ(ctx context.Context, e model.FAQEntry) (model.FAQEntry, error) {
	if e.ID == 0 {
		if err := r.db.WithContext(ctx).Create(&e).Error; err != nil {
			return model.FAQEntry{}, err
		}
		return e, nil
	}

	res := r.db.WithContext(ctx).Model(&model.FAQEntry{}).Where("id = ?", e.ID).Updates(map[string]interface{}{
		"locale":   e.Locale,
		"question": e.Question,
		"answer":   e.Answer,
		"position": e.Position,
	})
	if res.Error != nil {
		return model.FAQEntry{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.FAQEntry{}, repo.ErrNotFound
	}
	return e, nil
}

func (r *ContentGormRepository) DeleteFAQ(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.FAQEntry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
