package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Seba01D/pm-app/internal/authz"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TileHandler struct {
	tiles TileService
	authz Authorizer
}

func NewTileHandler(tiles TileService, authz Authorizer) *TileHandler {
	return &TileHandler{tiles: tiles, authz: authz}
}

type CreateTileRequest struct {
	Name      string `json:"name"`
	ProjectID string `json:"projectId"`
}

type RenameTileRequest struct {
	TileID  string `json:"tileId"`
	NewName string `json:"newName"`
}

type DeleteTileRequest struct {
	DeleteID string `json:"deleteId"`
}

// Collection dispatches on the request method; anything but GET, POST, PUT
// and DELETE is answered with 405.
func (h *TileHandler) Collection(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		h.list(c)
	case http.MethodPost:
		h.create(c)
	case http.MethodPut:
		h.rename(c)
	case http.MethodDelete:
		h.delete(c)
	default:
		c.Header("Allow", "GET, POST, PUT, DELETE")
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": fmt.Sprintf("Method %s Not Allowed", c.Request.Method)})
	}
}

// list godoc
// @Summary      List a project's tiles
// @Tags         Tiles
// @Security     BearerAuth
// @Produce      json
// @Param        projectId query string true "Project ID"
// @Success      200 {array} TileResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/tiles [get]
func (h *TileHandler) list(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(c.Query("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}
	if !authorize(c, h.authz, userID, projectID, authz.ResourceBoard, authz.ActionRead) {
		return
	}

	tiles := h.tiles.FetchTiles(c.Request.Context(), projectID)
	response := make([]TileResponse, len(tiles))
	for i, t := range tiles {
		response[i] = toTileResponse(t)
	}
	c.JSON(http.StatusOK, response)
}

// create godoc
// @Summary      Add a tile
// @Tags         Tiles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body CreateTileRequest true "Tile"
// @Success      201 {object} TileResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/tiles [post]
func (h *TileHandler) create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateTileRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tile name and projectId are required"})
		return
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}
	if !authorize(c, h.authz, userID, projectID, authz.ResourceBoard, authz.ActionWrite) {
		return
	}

	tile, ok := h.tiles.CreateTile(c.Request.Context(), req.Name, projectID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add tile"})
		return
	}
	c.JSON(http.StatusCreated, toTileResponse(*tile))
}

// rename godoc
// @Summary      Rename a tile
// @Tags         Tiles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body RenameTileRequest true "Tile"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/tiles [put]
func (h *TileHandler) rename(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req RenameTileRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.NewName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tileId and newName are required"})
		return
	}
	tileID, ok := h.authorizeTile(c, userID, req.TileID)
	if !ok {
		return
	}

	if !h.tiles.RenameTile(c.Request.Context(), tileID, req.NewName) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tile updated"})
}

// delete godoc
// @Summary      Delete a tile
// @Tags         Tiles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body DeleteTileRequest true "Tile"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/tiles [delete]
func (h *TileHandler) delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req DeleteTileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deleteId is required"})
		return
	}
	tileID, ok := h.authorizeTile(c, userID, req.DeleteID)
	if !ok {
		return
	}

	if !h.tiles.DeleteTile(c.Request.Context(), tileID) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tile deleted"})
}

// authorizeTile resolves the tile's project and checks board write access.
func (h *TileHandler) authorizeTile(c *gin.Context, userID uuid.UUID, rawID string) (uuid.UUID, bool) {
	tileID, err := uuid.Parse(rawID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tile ID format"})
		return uuid.Nil, false
	}

	tile, err := h.tiles.GetTile(c.Request.Context(), tileID)
	if err != nil {
		respondError(c, err, "Failed to retrieve tile")
		return uuid.Nil, false
	}
	if !authorize(c, h.authz, userID, tile.ProjectID, authz.ResourceBoard, authz.ActionWrite) {
		return uuid.Nil, false
	}
	return tileID, true
}
