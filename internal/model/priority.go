package model

// Priority is a global lookup row, not owned by any project.
type Priority struct {
	ID    int    `gorm:"primaryKey"`
	Name  string `gorm:"not null"`
	Color string `gorm:"not null"`
}

func (Priority) TableName() string { return "priorities" }
