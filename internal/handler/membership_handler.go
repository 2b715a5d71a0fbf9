package handler

import (
	"net/http"

	"github.com/Seba01D/pm-app/internal/middleware"

	"github.com/gin-gonic/gin"
)

type MembershipHandler struct {
	membership MembershipService
}

func NewMembershipHandler(membership MembershipService) *MembershipHandler {
	return &MembershipHandler{membership: membership}
}

type JoinProjectRequest struct {
	AccessCode string `json:"access_code"`
}

// Join godoc
// @Summary      Join a project with its access code
// @Tags         Projects
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body JoinProjectRequest true "Access code"
// @Success      200 {object} JoinProjectResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/joinProject [post]
func (h *MembershipHandler) Join(c *gin.Context) {
	var req JoinProjectRequest
	// An unreadable body is treated like a missing code.
	_ = c.ShouldBindJSON(&req)

	// The token is validated by the service, after the access code check.
	token, _ := middleware.BearerToken(c.GetHeader("Authorization"))

	project, err := h.membership.JoinProject(c.Request.Context(), req.AccessCode, token)
	if err != nil {
		respondError(c, err, "An error occurred while processing the request.")
		return
	}

	c.JSON(http.StatusOK, JoinProjectResponse{
		Message:   "Successfully joined the project.",
		ProjectID: project.ID.String(),
	})
}
