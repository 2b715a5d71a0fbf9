package model

import "github.com/google/uuid"

// UserSettings holds per-user presentation preferences.
type UserSettings struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SidebarExpanded bool      `gorm:"not null"`
}

func (UserSettings) TableName() string { return "user_settings" }

// DefaultSettings is what a user sees before saving anything.
func DefaultSettings(userID uuid.UUID) UserSettings {
	return UserSettings{UserID: userID, SidebarExpanded: true}
}
