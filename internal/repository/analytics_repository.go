package repository

import (
	"context"
	"time"

	"tokokom/internal/domain/model"
)

// Agregat harian untuk dashboard admin.
type DailyStat struct {
	Date  string          `json:"date"` // YYYY-MM-DD
	Type  model.EventType `json:"type"`
	Count int64           `json:"count"`
}

type AnalyticsRepository interface {
	Create(ctx context.Context, e model.AnalyticsEvent) error
	DailyStats(ctx context.Context, from time.Time, to time.Time) ([]DailyStat, error)
}
