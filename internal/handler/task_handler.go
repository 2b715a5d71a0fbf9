package handler

import (
	"net/http"

	"github.com/Seba01D/pm-app/internal/authz"
	"github.com/Seba01D/pm-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskHandler struct {
	tasks TaskService
	tiles TileService
	authz Authorizer
}

func NewTaskHandler(tasks TaskService, tiles TileService, authz Authorizer) *TaskHandler {
	return &TaskHandler{tasks: tasks, tiles: tiles, authz: authz}
}

type CreateTaskRequest struct {
	Description string `json:"description" binding:"required"`
}

type UpdateDescriptionRequest struct {
	Description string `json:"description" binding:"required"`
}

// UpdateTaskDetailsRequest leaves absent fields untouched. A priority_id of 0
// clears the priority.
type UpdateTaskDetailsRequest struct {
	Description     *string `json:"description"`
	FullDescription *string `json:"full_description"`
	PriorityID      *int    `json:"priority_id"`
}

// GetByTile godoc
// @Summary      List tasks of a tile
// @Tags         Tasks
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Tile ID"
// @Success      200 {array} TaskResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/tiles/{id}/tasks [get]
func (h *TaskHandler) GetByTile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	tileID, ok := paramID(c, "id", "tile")
	if !ok {
		return
	}
	if !h.authorizeTile(c, userID, tileID, authz.ActionRead) {
		return
	}

	tasks := h.tasks.FetchTasks(c.Request.Context(), tileID)
	response := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		response[i] = toTaskResponse(t)
	}
	c.JSON(http.StatusOK, response)
}

// Create godoc
// @Summary      Add a task to a tile
// @Tags         Tasks
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "Tile ID"
// @Param        request body CreateTaskRequest true "Task"
// @Success      201 {object} TaskResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/tiles/{id}/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	tileID, ok := paramID(c, "id", "tile")
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task description is required"})
		return
	}
	if !h.authorizeTile(c, userID, tileID, authz.ActionWrite) {
		return
	}

	task, err := h.tasks.CreateTask(c.Request.Context(), req.Description, tileID)
	if err != nil {
		respondError(c, err, "Failed to add task")
		return
	}
	c.JSON(http.StatusCreated, toTaskResponse(*task))
}

// Toggle godoc
// @Summary      Flip a task's completion flag
// @Tags         Tasks
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Task ID"
// @Success      200 {object} TaskResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/tasks/{id}/toggle [post]
func (h *TaskHandler) Toggle(c *gin.Context) {
	taskID, ok := h.authorizeTask(c, authz.ActionWrite)
	if !ok {
		return
	}

	task, err := h.tasks.ToggleTaskComplete(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err, "Failed to update task")
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(*task))
}

// UpdateDescription godoc
// @Summary      Replace a task's short description
// @Tags         Tasks
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "Task ID"
// @Param        request body UpdateDescriptionRequest true "Description"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/tasks/{id}/description [put]
func (h *TaskHandler) UpdateDescription(c *gin.Context) {
	var req UpdateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task description is required"})
		return
	}

	taskID, ok := h.authorizeTask(c, authz.ActionWrite)
	if !ok {
		return
	}

	if err := h.tasks.UpdateTaskDescription(c.Request.Context(), taskID, req.Description); err != nil {
		respondError(c, err, "Failed to update task")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task updated"})
}

// UpdateDetails godoc
// @Summary      Partially update a task
// @Tags         Tasks
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "Task ID"
// @Param        request body UpdateTaskDetailsRequest true "Fields to change"
// @Success      200 {object} TaskResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/tasks/{id} [patch]
func (h *TaskHandler) UpdateDetails(c *gin.Context) {
	var req UpdateTaskDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	taskID, ok := h.authorizeTask(c, authz.ActionWrite)
	if !ok {
		return
	}

	task, err := h.tasks.UpdateTaskDetails(c.Request.Context(), taskID, service.TaskDetails{
		Description:     req.Description,
		FullDescription: req.FullDescription,
		PriorityID:      req.PriorityID,
	})
	if err != nil {
		respondError(c, err, "Failed to update task")
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(*task))
}

// Delete godoc
// @Summary      Delete a task
// @Tags         Tasks
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Task ID"
// @Success      200 {object} MessageResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	taskID, ok := h.authorizeTask(c, authz.ActionWrite)
	if !ok {
		return
	}

	if err := h.tasks.DeleteTask(c.Request.Context(), taskID); err != nil {
		respondError(c, err, "Failed to delete task")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// Priorities godoc
// @Summary      List task priorities
// @Tags         Tasks
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} PriorityResponse
// @Router       /api/priorities [get]
func (h *TaskHandler) Priorities(c *gin.Context) {
	priorities := h.tasks.ListPriorities(c.Request.Context())
	response := make([]PriorityResponse, len(priorities))
	for i, p := range priorities {
		response[i] = PriorityResponse{ID: p.ID, Name: p.Name, Color: p.Color}
	}
	c.JSON(http.StatusOK, response)
}

func (h *TaskHandler) authorizeTile(c *gin.Context, userID, tileID uuid.UUID, action string) bool {
	tile, err := h.tiles.GetTile(c.Request.Context(), tileID)
	if err != nil {
		respondError(c, err, "Failed to retrieve tile")
		return false
	}
	return authorize(c, h.authz, userID, tile.ProjectID, authz.ResourceBoard, action)
}

// authorizeTask resolves task -> tile -> project for the :id parameter.
func (h *TaskHandler) authorizeTask(c *gin.Context, action string) (uuid.UUID, bool) {
	userID, ok := currentUser(c)
	if !ok {
		return uuid.Nil, false
	}
	taskID, ok := paramID(c, "id", "task")
	if !ok {
		return uuid.Nil, false
	}

	task, err := h.tasks.GetTask(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err, "Failed to retrieve task")
		return uuid.Nil, false
	}
	if !h.authorizeTile(c, userID, task.TileID, action) {
		return uuid.Nil, false
	}
	return taskID, true
}
