package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settings SettingsService
}

func NewSettingsHandler(settings SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

type UpdateSettingsRequest struct {
	SidebarExpanded *bool `json:"sidebar_expanded" binding:"required"`
}

// Get godoc
// @Summary      Current user's UI settings
// @Tags         Settings
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} SettingsResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	settings := h.settings.Get(c.Request.Context(), userID)
	c.JSON(http.StatusOK, SettingsResponse{SidebarExpanded: settings.SidebarExpanded})
}

// Update godoc
// @Summary      Persist the sidebar state
// @Tags         Settings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body UpdateSettingsRequest true "Settings"
// @Success      200 {object} SettingsResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sidebar_expanded is required"})
		return
	}

	settings, err := h.settings.SetSidebarExpanded(c.Request.Context(), userID, *req.SidebarExpanded)
	if err != nil {
		respondError(c, err, "Failed to save settings")
		return
	}
	c.JSON(http.StatusOK, SettingsResponse{SidebarExpanded: settings.SidebarExpanded})
}
