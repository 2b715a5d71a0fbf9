package repository

import (
	"errors"

	"gorm.io/gorm"
)

// Common repository errors
var (
	// ErrProjectNotFound is returned when a project is not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrTileNotFound is returned when a tile is not found
	ErrTileNotFound = errors.New("tile not found")

	// ErrTaskNotFound is returned when a task is not found
	ErrTaskNotFound = errors.New("task not found")

	// ErrMembershipNotFound is returned when a user is not a member of a project
	ErrMembershipNotFound = errors.New("membership not found")

	// ErrDuplicate is returned when an insert violates a unique constraint
	ErrDuplicate = errors.New("duplicate record")
)

// translate maps driver level errors that callers branch on to repository
// sentinels. The gorm connection must be opened with TranslateError.
func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}
