package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Seba01D/pm-app/internal/authz"
	"github.com/Seba01D/pm-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	projects ProjectService
	authz    Authorizer
}

func NewProjectHandler(projects ProjectService, authz Authorizer) *ProjectHandler {
	return &ProjectHandler{projects: projects, authz: authz}
}

type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	OwnerID     string  `json:"owner_id"`
}

type CreateProjectResponse struct {
	Data       ProjectResponse `json:"data"`
	AccessCode string          `json:"accessCode"`
}

type RenameProjectRequest struct {
	Name string `json:"name" binding:"required"`
}

// Create godoc
// @Summary      Create a project with a fresh access code
// @Tags         Projects
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body CreateProjectRequest true "Project"
// @Success      200 {object} CreateProjectResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/addProject [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	callerID, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ownerID := uuid.Nil
	if strings.TrimSpace(req.OwnerID) != "" {
		parsed, err := uuid.Parse(req.OwnerID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid owner ID format"})
			return
		}
		if parsed != callerID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Projects can only be created for yourself"})
			return
		}
		ownerID = parsed
	}

	project, err := h.projects.CreateProject(c.Request.Context(), service.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     ownerID,
	})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrUnexpected) {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"error": service.Message(err, "An error occurred while processing the request.")})
		return
	}

	c.JSON(http.StatusOK, CreateProjectResponse{
		Data:       toProjectResponse(*project, true),
		AccessCode: project.AccessCode,
	})
}

// GetOwned godoc
// @Summary      Projects owned by the caller, newest first
// @Tags         Projects
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} ProjectResponse
// @Router       /api/projects/owned [get]
func (h *ProjectHandler) GetOwned(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	projects := h.projects.ListOwnedProjects(c.Request.Context(), userID)
	response := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		response[i] = toProjectResponse(p, true)
	}
	c.JSON(http.StatusOK, response)
}

// GetJoined godoc
// @Summary      Projects the caller joined with an access code
// @Tags         Projects
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} ProjectResponse
// @Router       /api/projects/joined [get]
func (h *ProjectHandler) GetJoined(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	projects := h.projects.ListJoinedProjects(c.Request.Context(), userID)
	response := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		response[i] = toProjectResponse(p, false)
	}
	c.JSON(http.StatusOK, response)
}

// Dashboard godoc
// @Summary      Owned and joined project counts
// @Tags         Projects
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} service.ProjectStats
// @Router       /api/dashboard [get]
func (h *ProjectHandler) Dashboard(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.projects.Stats(c.Request.Context(), userID))
}

// GetByID godoc
// @Summary      Get a project
// @Tags         Projects
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Project ID"
// @Success      200 {object} ProjectResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) GetByID(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := paramID(c, "id", "project")
	if !ok {
		return
	}
	if !authorize(c, h.authz, userID, projectID, authz.ResourceProject, authz.ActionRead) {
		return
	}

	project, err := h.projects.GetProject(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err, "Failed to retrieve project")
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(*project, project.OwnerID == userID))
}

// Rename godoc
// @Summary      Rename a project (owner only)
// @Tags         Projects
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID"
// @Param        request body RenameProjectRequest true "New name"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) Rename(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := paramID(c, "id", "project")
	if !ok {
		return
	}

	var req RenameProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !authorize(c, h.authz, userID, projectID, authz.ResourceProject, authz.ActionUpdate) {
		return
	}

	if err := h.projects.RenameProject(c.Request.Context(), projectID, req.Name); err != nil {
		respondError(c, err, "Failed to rename project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project updated"})
}

// Delete godoc
// @Summary      Delete a project (owner only)
// @Tags         Projects
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Project ID"
// @Success      200 {object} MessageResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := paramID(c, "id", "project")
	if !ok {
		return
	}
	if !authorize(c, h.authz, userID, projectID, authz.ResourceProject, authz.ActionDelete) {
		return
	}

	if err := h.projects.DeleteProject(c.Request.Context(), projectID); err != nil {
		respondError(c, err, "Failed to delete project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

// Leave godoc
// @Summary      Leave a joined project
// @Tags         Projects
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Project ID"
// @Success      200 {object} MessageResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/projects/{id}/membership [delete]
func (h *ProjectHandler) Leave(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := paramID(c, "id", "project")
	if !ok {
		return
	}
	if !authorize(c, h.authz, userID, projectID, authz.ResourceProject, authz.ActionLeave) {
		return
	}

	if err := h.projects.LeaveProject(c.Request.Context(), projectID, userID); err != nil {
		respondError(c, err, "Failed to leave project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Left the project"})
}
