package handler

import (
	"time"

	"github.com/Seba01D/pm-app/internal/model"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type JoinProjectResponse struct {
	Message   string `json:"message"`
	ProjectID string `json:"project_id"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type ProjectResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	OwnerID     string  `json:"owner_id"`
	AccessCode  string  `json:"access_code,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

type TileResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ProjectID string `json:"project_id"`
	CreatedAt string `json:"created_at"`
}

type TaskResponse struct {
	ID              string `json:"id"`
	Description     string `json:"description"`
	FullDescription string `json:"full_description"`
	TileID          string `json:"tile_id"`
	IsComplete      bool   `json:"is_complete"`
	PriorityID      *int   `json:"priority_id"`
}

type PriorityResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type SettingsResponse struct {
	SidebarExpanded bool `json:"sidebar_expanded"`
}

func toUserResponse(u *model.User) UserResponse {
	return UserResponse{ID: u.ID.String(), Email: u.Email, Name: u.Name}
}

// toProjectResponse exposes the access code only to the owner.
func toProjectResponse(p model.Project, withCode bool) ProjectResponse {
	resp := ProjectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		OwnerID:     p.OwnerID.String(),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
	if withCode {
		resp.AccessCode = p.AccessCode
	}
	return resp
}

func toTileResponse(t model.Tile) TileResponse {
	return TileResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		ProjectID: t.ProjectID.String(),
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}

func toTaskResponse(t model.Task) TaskResponse {
	return TaskResponse{
		ID:              t.ID.String(),
		Description:     t.Description,
		FullDescription: t.FullDescription,
		TileID:          t.TileID.String(),
		IsComplete:      t.IsComplete,
		PriorityID:      t.PriorityID,
	}
}
