package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/Seba01D/pm-app/internal/model"
	"github.com/Seba01D/pm-app/internal/repository"

	"github.com/google/uuid"
)

// TileService reads degrade to empty results and writes report a plain
// success flag; the failure itself is only logged.
type TileService struct {
	tiles    *repository.TileRepository
	projects *repository.ProjectRepository
	log      *slog.Logger
}

func NewTileService(tiles *repository.TileRepository, projects *repository.ProjectRepository, log *slog.Logger) *TileService {
	return &TileService{tiles: tiles, projects: projects, log: log}
}

func (s *TileService) FetchTiles(ctx context.Context, projectID uuid.UUID) []model.Tile {
	tiles, err := s.tiles.GetByProjectID(ctx, projectID)
	if err != nil {
		s.log.Warn("fetching tiles failed",
			slog.String("project_id", projectID.String()),
			slog.String("error", err.Error()),
		)
		return []model.Tile{}
	}
	return tiles
}

func (s *TileService) GetTile(ctx context.Context, id uuid.UUID) (*model.Tile, error) {
	const op = "GetTile"

	tile, err := s.tiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTileNotFound) {
			return nil, newError(op, ErrNotFound, "Tile not found", err)
		}
		return nil, newError(op, ErrPersistence, "Failed to retrieve tile", err)
	}
	return tile, nil
}

// CreateTile returns the stored tile and true, or nil and false.
func (s *TileService) CreateTile(ctx context.Context, name string, projectID uuid.UUID) (*model.Tile, bool) {
	name = strings.TrimSpace(name)
	if name == "" || projectID == uuid.Nil {
		return nil, false
	}

	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		s.log.Warn("adding tile failed: project lookup",
			slog.String("project_id", projectID.String()),
			slog.String("error", err.Error()),
		)
		return nil, false
	}

	tile := &model.Tile{Name: name, ProjectID: projectID}
	if err := s.tiles.Create(ctx, tile); err != nil {
		s.log.Error("adding tile failed", slog.String("error", err.Error()))
		return nil, false
	}
	return tile, true
}

func (s *TileService) RenameTile(ctx context.Context, id uuid.UUID, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if err := s.tiles.Rename(ctx, id, name); err != nil {
		s.log.Error("updating tile failed", slog.String("tile_id", id.String()), slog.String("error", err.Error()))
		return false
	}
	return true
}

// DeleteTile removes the tile row only; its tasks are not deleted here.
func (s *TileService) DeleteTile(ctx context.Context, id uuid.UUID) bool {
	if err := s.tiles.Delete(ctx, id); err != nil {
		s.log.Error("deleting tile failed", slog.String("tile_id", id.String()), slog.String("error", err.Error()))
		return false
	}
	return true
}
