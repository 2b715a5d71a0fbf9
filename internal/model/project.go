package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is a board owned by exactly one user. AccessCode is the only
// credential needed to join it.
type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	Description *string
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	AccessCode  string    `gorm:"size:16;not null;uniqueIndex"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Project) TableName() string { return "projects" }

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
