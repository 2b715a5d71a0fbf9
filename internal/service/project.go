package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/Seba01D/pm-app/internal/accesscode"
	"github.com/Seba01D/pm-app/internal/model"
	"github.com/Seba01D/pm-app/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CreateProjectInput struct {
	Name        string    `validate:"required,max=100"`
	Description *string   `validate:"omitempty,max=1000"`
	OwnerID     uuid.UUID `validate:"required"`
}

// ProjectStats are the dashboard counters.
type ProjectStats struct {
	Owned  int64 `json:"owned"`
	Joined int64 `json:"joined"`
}

type ProjectService struct {
	projects *repository.ProjectRepository
	members  *repository.MembershipRepository
	generate accesscode.Generator
	retries  int
	validate *validator.Validate
	log      *slog.Logger
}

func NewProjectService(
	projects *repository.ProjectRepository,
	members *repository.MembershipRepository,
	generate accesscode.Generator,
	retries int,
	log *slog.Logger,
) *ProjectService {
	if generate == nil {
		generate = accesscode.Generate
	}
	if retries < 1 {
		retries = 1
	}
	return &ProjectService{
		projects: projects,
		members:  members,
		generate: generate,
		retries:  retries,
		validate: validator.New(),
		log:      log,
	}
}

// CreateProject inserts the project together with a freshly generated access
// code. A code collision reported by the store triggers a new code, up to the
// configured number of attempts.
func (s *ProjectService) CreateProject(ctx context.Context, in CreateProjectInput) (*model.Project, error) {
	const op = "CreateProject"

	in.Name = strings.TrimSpace(in.Name)
	if err := s.validate.Struct(in); err != nil {
		return nil, newError(op, ErrInvalidInput, "Project name and owner are required.", err)
	}

	for attempt := 1; attempt <= s.retries; attempt++ {
		project := &model.Project{
			Name:        in.Name,
			Description: in.Description,
			OwnerID:     in.OwnerID,
			AccessCode:  s.generate(),
		}

		err := s.projects.Create(ctx, project)
		if err == nil {
			s.log.Info("project created",
				slog.String("project_id", project.ID.String()),
				slog.String("owner_id", project.OwnerID.String()),
			)
			return project, nil
		}
		if !errors.Is(err, repository.ErrDuplicate) {
			return nil, newError(op, ErrPersistence, "Failed to create project.", err)
		}
		s.log.Warn("access code collision, regenerating", slog.Int("attempt", attempt))
	}

	return nil, newError(op, ErrConflict, "Could not allocate a unique access code.", nil)
}

func (s *ProjectService) GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	const op = "GetProject"

	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, newError(op, ErrNotFound, "Project not found", err)
		}
		return nil, newError(op, ErrPersistence, "Failed to retrieve project", err)
	}
	return project, nil
}

// ListOwnedProjects degrades to an empty list when the store fails.
func (s *ProjectService) ListOwnedProjects(ctx context.Context, ownerID uuid.UUID) []model.Project {
	projects, err := s.projects.GetOwned(ctx, ownerID)
	if err != nil {
		s.log.Warn("fetching owned projects failed",
			slog.String("owner_id", ownerID.String()),
			slog.String("error", err.Error()),
		)
		return []model.Project{}
	}
	return projects
}

// ListJoinedProjects degrades to an empty list when the store fails.
func (s *ProjectService) ListJoinedProjects(ctx context.Context, userID uuid.UUID) []model.Project {
	projects, err := s.projects.GetJoined(ctx, userID)
	if err != nil {
		s.log.Warn("fetching joined projects failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return []model.Project{}
	}
	return projects
}

// Stats counts owned and joined projects; a failed count reads as zero.
func (s *ProjectService) Stats(ctx context.Context, userID uuid.UUID) ProjectStats {
	var stats ProjectStats

	owned, err := s.projects.CountOwned(ctx, userID)
	if err != nil {
		s.log.Warn("counting owned projects failed", slog.String("error", err.Error()))
		return stats
	}
	joined, err := s.members.CountJoined(ctx, userID)
	if err != nil {
		s.log.Warn("counting joined projects failed", slog.String("error", err.Error()))
		return stats
	}

	stats.Owned = owned
	stats.Joined = joined
	return stats
}

func (s *ProjectService) RenameProject(ctx context.Context, id uuid.UUID, name string) error {
	const op = "RenameProject"

	name = strings.TrimSpace(name)
	if err := s.validate.Var(name, "required,max=100"); err != nil {
		return newError(op, ErrInvalidInput, "Project name is required.", err)
	}

	if err := s.projects.Rename(ctx, id, name); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return newError(op, ErrNotFound, "Project not found", err)
		}
		return newError(op, ErrPersistence, "Failed to rename project", err)
	}
	return nil
}

// DeleteProject removes the project row only. Tiles, tasks and memberships
// are not removed here.
func (s *ProjectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	const op = "DeleteProject"

	if err := s.projects.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return newError(op, ErrNotFound, "Project not found", err)
		}
		s.log.Error("deleting project failed", slog.String("project_id", id.String()), slog.String("error", err.Error()))
		return newError(op, ErrPersistence, "Failed to delete project", err)
	}
	return nil
}

// LeaveProject removes the caller's own membership row.
func (s *ProjectService) LeaveProject(ctx context.Context, projectID, userID uuid.UUID) error {
	const op = "LeaveProject"

	if err := s.members.Delete(ctx, projectID, userID); err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return newError(op, ErrNotFound, "You are not a member of this project", err)
		}
		s.log.Error("leaving project failed", slog.String("project_id", projectID.String()), slog.String("error", err.Error()))
		return newError(op, ErrPersistence, "Failed to leave project", err)
	}
	return nil
}
