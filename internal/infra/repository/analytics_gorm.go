package repository

import (
	"context"
	"time"

	"tokokom/internal/domain/model"
	repo "tokokom/internal/repository"

	"gorm.io/gorm"
)

type AnalyticsGormRepository struct {
	db *gorm.DB
}

// DI
func NewAnalyticsGormRepository(db *gorm.DB) *AnalyticsGormRepository {
	return &AnalyticsGormRepository{db: db}
}

func (r *AnalyticsGormRepository) Create(ctx context.Context, e model.AnalyticsEvent) error {
	return r.db.WithContext(ctx).Create(&e).Error
}

// DailyStats mengelompokkan event per hari per tipe dalam rentang [from, to).
func (r *AnalyticsGormRepository) DailyStats(ctx context.Context, from time.Time, to time.Time) ([]repo.DailyStat, error) {
	var out []repo.DailyStat

	err := r.db.WithContext(ctx).
		Model(&model.AnalyticsEvent{}).
		Select("to_char(created_at, 'YYYY-MM-DD') as date, type, count(*) as count").
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("to_char(created_at, 'YYYY-MM-DD'), type").
		Order("date asc").
		Order("type asc").
		Scan(&out).Error
	if err != nil {
		return []repo.DailyStat{}, err
	}

	return out, nil
}
