package repository

import (
	"context"
	"errors"

	"github.com/Seba01D/pm-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the stored settings, or the defaults when none were saved yet.
func (r *SettingsRepository) Get(ctx context.Context, userID uuid.UUID) (model.UserSettings, error) {
	var settings model.UserSettings
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.DefaultSettings(userID), nil
	}
	return settings, err
}

func (r *SettingsRepository) Save(ctx context.Context, settings model.UserSettings) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"sidebar_expanded"}),
	}).Create(&settings).Error
}
