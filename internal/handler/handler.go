package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/Seba01D/pm-app/internal/middleware"
	"github.com/Seba01D/pm-app/internal/model"
	"github.com/Seba01D/pm-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AccountService interface {
	Register(ctx context.Context, email, name, password string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
}

type ProjectService interface {
	CreateProject(ctx context.Context, in service.CreateProjectInput) (*model.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error)
	ListOwnedProjects(ctx context.Context, ownerID uuid.UUID) []model.Project
	ListJoinedProjects(ctx context.Context, userID uuid.UUID) []model.Project
	Stats(ctx context.Context, userID uuid.UUID) service.ProjectStats
	RenameProject(ctx context.Context, id uuid.UUID, name string) error
	DeleteProject(ctx context.Context, id uuid.UUID) error
	LeaveProject(ctx context.Context, projectID, userID uuid.UUID) error
}

type MembershipService interface {
	JoinProject(ctx context.Context, accessCode, bearerToken string) (*model.Project, error)
}

type TileService interface {
	FetchTiles(ctx context.Context, projectID uuid.UUID) []model.Tile
	GetTile(ctx context.Context, id uuid.UUID) (*model.Tile, error)
	CreateTile(ctx context.Context, name string, projectID uuid.UUID) (*model.Tile, bool)
	RenameTile(ctx context.Context, id uuid.UUID, name string) bool
	DeleteTile(ctx context.Context, id uuid.UUID) bool
}

type TaskService interface {
	FetchTasks(ctx context.Context, tileID uuid.UUID) []model.Task
	GetTask(ctx context.Context, id uuid.UUID) (*model.Task, error)
	CreateTask(ctx context.Context, description string, tileID uuid.UUID) (*model.Task, error)
	ToggleTaskComplete(ctx context.Context, id uuid.UUID) (*model.Task, error)
	UpdateTaskDescription(ctx context.Context, id uuid.UUID, description string) error
	UpdateTaskDetails(ctx context.Context, id uuid.UUID, details service.TaskDetails) (*model.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
	ListPriorities(ctx context.Context) []model.Priority
}

type SettingsService interface {
	Get(ctx context.Context, userID uuid.UUID) model.UserSettings
	SetSidebarExpanded(ctx context.Context, userID uuid.UUID, expanded bool) (model.UserSettings, error)
}

type Authorizer interface {
	Allowed(ctx context.Context, userID, projectID uuid.UUID, resource, action string) (bool, error)
}

// statusFor maps the service error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error, fallback string) {
	c.JSON(statusFor(err), ErrorResponse{Error: service.Message(err, fallback)})
}

// currentUser reads the id set by the auth middleware, answering the request
// itself when it is missing.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return uuid.Nil, false
	}
	return id, true
}

func paramID(c *gin.Context, name, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + what + " ID format"})
		return uuid.Nil, false
	}
	return id, true
}

// authorize answers 403/404/500 itself and returns false when the caller may
// not perform action on resource in projectID.
func authorize(c *gin.Context, authz Authorizer, userID, projectID uuid.UUID, resource, action string) bool {
	allowed, err := authz.Allowed(c.Request.Context(), userID, projectID, resource, action)
	if err != nil {
		respondError(c, err, "Failed to check project access")
		return false
	}
	if !allowed {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "You don't have permission to perform this action"})
		return false
	}
	return true
}
