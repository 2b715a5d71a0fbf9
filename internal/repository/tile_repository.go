package repository

import (
	"context"
	"errors"

	"github.com/Seba01D/pm-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TileRepository struct {
	db *gorm.DB
}

func NewTileRepository(db *gorm.DB) *TileRepository {
	return &TileRepository{db: db}
}

func (r *TileRepository) Create(ctx context.Context, tile *model.Tile) error {
	return r.db.WithContext(ctx).Create(tile).Error
}

func (r *TileRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Tile, error) {
	var tile model.Tile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTileNotFound
		}
		return nil, err
	}
	return &tile, nil
}

// GetByProjectID returns tiles in creation order.
func (r *TileRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.Tile, error) {
	var tiles []model.Tile
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("created_at").Find(&tiles).Error
	return tiles, err
}

func (r *TileRepository) Rename(ctx context.Context, id uuid.UUID, name string) error {
	result := r.db.WithContext(ctx).Model(&model.Tile{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTileNotFound
	}
	return nil
}

func (r *TileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Tile{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTileNotFound
	}
	return nil
}
