package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tile is a named board column. CreatedAt drives display order.
type Tile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Tile) TableName() string { return "project_tiles" }

func (t *Tile) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
