package repository

import (
	"context"

	"github.com/Seba01D/pm-app/internal/model"

	"gorm.io/gorm"
)

type PriorityRepository struct {
	db *gorm.DB
}

func NewPriorityRepository(db *gorm.DB) *PriorityRepository {
	return &PriorityRepository{db: db}
}

func (r *PriorityRepository) List(ctx context.Context) ([]model.Priority, error) {
	var priorities []model.Priority
	err := r.db.WithContext(ctx).Order("id").Find(&priorities).Error
	return priorities, err
}

func (r *PriorityRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Priority{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
