package repository

import (
	"context"
	"errors"

	"github.com/Seba01D/pm-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create inserts a single membership row. It is not idempotent: a second
// insert of the same pair returns ErrDuplicate.
func (r *MembershipRepository) Create(ctx context.Context, projectID, userID uuid.UUID) error {
	membership := model.Membership{
		ProjectID: projectID,
		UserID:    userID,
	}
	return translate(r.db.WithContext(ctx).Create(&membership).Error)
}

// Delete removes the caller's own membership row only.
func (r *MembershipRepository) Delete(ctx context.Context, projectID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&model.Membership{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMembershipNotFound
	}
	return nil
}

func (r *MembershipRepository) Exists(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	var membership model.Membership
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&membership).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *MembershipRepository) CountJoined(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Membership{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
