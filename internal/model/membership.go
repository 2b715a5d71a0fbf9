package model

import (
	"time"

	"github.com/google/uuid"
)

// Membership links a non-owner collaborator to a project. The composite key
// makes a second join with the same pair a duplicate.
type Membership struct {
	ProjectID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Membership) TableName() string { return "project_members" }

// Participant roles within a project.
const (
	RoleOwner  = "owner"
	RoleMember = "member"
)
