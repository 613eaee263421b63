package usecase

import (
	"context"
	"net/http"

	"tokokom/internal/domain/model"
	repo "tokokom/internal/repository"
)

type AnalyticsUsecase struct {
	analyticsRepo repo.AnalyticsRepository
	clock         Clock
}

// DI
func NewAnalyticsUsecase(analyticsRepo repo.AnalyticsRepository, clock Clock) *AnalyticsUsecase {
	return &AnalyticsUsecase{
		analyticsRepo: analyticsRepo,
		clock:         clock,
	}
}

type RecordEventInput struct {
	Type   model.EventType
	Path   string
	Locale model.Locale
}

func (u *AnalyticsUsecase) RecordEvent(ctx context.Context, in RecordEventInput) error {
	if !model.IsValidEventType(in.Type) {
		return NewHTTPError(http.StatusBadRequest, "invalid event type")
	}
	if len(in.Path) > 255 {
		return NewHTTPError(http.StatusBadRequest, "path too long")
	}
	if in.Locale != "" && !model.IsValidLocale(in.Locale) {
		return NewHTTPError(http.StatusBadRequest, "invalid locale")
	}

	err := u.analyticsRepo.Create(ctx, model.AnalyticsEvent{
		Type:      in.Type,
		Path:      in.Path,
		Locale:    in.Locale,
		CreatedAt: u.clock.Now(),
	})
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// AdminDailyStats mengembalikan agregat N hari terakhir (maksimal 90).
func (u *AnalyticsUsecase) AdminDailyStats(ctx context.Context, days int) ([]repo.DailyStat, error) {
	if days < 1 || days > 90 {
		return nil, NewHTTPError(http.StatusBadRequest, "days must be 1-90")
	}

	to := u.clock.Now()
	from := to.AddDate(0, 0, -days)

	out, err := u.analyticsRepo.DailyStats(ctx, from, to)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return out, nil
}
