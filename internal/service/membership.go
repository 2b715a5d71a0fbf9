package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/Seba01D/pm-app/internal/auth"
	"github.com/Seba01D/pm-app/internal/model"
	"github.com/Seba01D/pm-app/internal/repository"

	"github.com/google/uuid"
)

// MembershipService lets an authenticated user redeem an access code and
// answers who participates in a project.
type MembershipService struct {
	identity auth.IdentityProvider
	projects *repository.ProjectRepository
	members  *repository.MembershipRepository
	log      *slog.Logger
}

func NewMembershipService(
	identity auth.IdentityProvider,
	projects *repository.ProjectRepository,
	members *repository.MembershipRepository,
	log *slog.Logger,
) *MembershipService {
	return &MembershipService{
		identity: identity,
		projects: projects,
		members:  members,
		log:      log,
	}
}

// JoinProject validates the bearer token, resolves the project owning
// accessCode and records a membership for the token's user. Only the final
// insert has a side effect, so retrying after any failure is safe.
func (s *MembershipService) JoinProject(ctx context.Context, accessCode, bearerToken string) (*model.Project, error) {
	const op = "JoinProject"

	code := strings.ToUpper(strings.TrimSpace(accessCode))
	if code == "" {
		return nil, newError(op, ErrInvalidInput, "Access code is required.", nil)
	}
	if bearerToken == "" {
		return nil, newError(op, ErrUnauthorized, "Authorization token is missing.", nil)
	}

	userID, err := s.identity.Authenticate(ctx, bearerToken)
	if err != nil {
		s.log.Debug("join rejected: token not accepted", slog.String("error", err.Error()))
		return nil, newError(op, ErrUnauthorized, "You must be logged in to join a project.", err)
	}

	project, err := s.projects.FindByAccessCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, newError(op, ErrNotFound, "Invalid access code.", err)
		}
		return nil, newError(op, ErrPersistence, "Failed to join project.", err)
	}

	if project.OwnerID == userID {
		return nil, newError(op, ErrConflict, "You already own this project.", nil)
	}

	if err := s.members.Create(ctx, project.ID, userID); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newError(op, ErrConflict, "You are already a member of this project.", err)
		}
		return nil, newError(op, ErrPersistence, "Failed to join project.", err)
	}

	s.log.Info("user joined project",
		slog.String("project_id", project.ID.String()),
		slog.String("user_id", userID.String()),
	)
	return project, nil
}

// Role reports model.RoleOwner, model.RoleMember or "" for outsiders.
func (s *MembershipService) Role(ctx context.Context, projectID, userID uuid.UUID) (string, error) {
	const op = "Role"

	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return "", newError(op, ErrNotFound, "Project not found", err)
		}
		return "", newError(op, ErrPersistence, "Failed to check project access", err)
	}
	if project.OwnerID == userID {
		return model.RoleOwner, nil
	}

	member, err := s.members.Exists(ctx, projectID, userID)
	if err != nil {
		return "", newError(op, ErrPersistence, "Failed to check project access", err)
	}
	if member {
		return model.RoleMember, nil
	}
	return "", nil
}
