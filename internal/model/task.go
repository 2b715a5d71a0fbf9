package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Description     string    `gorm:"not null"`
	FullDescription string    `gorm:"not null"`
	TileID          uuid.UUID `gorm:"type:uuid;not null;index"`
	IsComplete      bool      `gorm:"not null"`
	PriorityID      *int
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (Task) TableName() string { return "tasks" }

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
