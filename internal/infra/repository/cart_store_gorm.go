package repository

import (
	"context"
	"errors"

	"tokokom/internal/domain/model"
	repo "tokokom/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartStoreGorm struct {
	db *gorm.DB
}

// DI
func NewCartStoreGorm(db *gorm.DB) *CartStoreGorm {
	return &CartStoreGorm{db: db}
}

func (r *CartStoreGorm) Load(ctx context.Context, token string) (model.CartDocument, error) {
	var doc model.CartDocument
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CartDocument{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CartDocument{}, err
	}
	return doc, nil
}

// Save melakukan upsert per token.
func (r *CartStoreGorm) Save(ctx context.Context, doc model.CartDocument) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&doc).Error
}

func (r *CartStoreGorm) Delete(ctx context.Context, token string) error {
	// hapus token yang tidak ada bukan error
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&model.CartDocument{}).Error
}
