// Package authz decides what a project participant may do.
package authz

import (
	"context"
	"log/slog"

	"github.com/casbin/casbin/v3"
	casbinmodel "github.com/casbin/casbin/v3/model"
	"github.com/google/uuid"

	"github.com/Seba01D/pm-app/internal/model"
)

// Resources
const (
	ResourceProject = "project"
	ResourceBoard   = "board" // tiles and tasks
)

// Actions
const (
	ActionRead   = "read"
	ActionWrite  = "write"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionLeave  = "leave"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// Owners and members are treated alike on the board; only the owner manages
// the project itself and only a member can leave it.
var policies = [][]string{
	{model.RoleOwner, ResourceProject, ActionRead},
	{model.RoleOwner, ResourceProject, ActionUpdate},
	{model.RoleOwner, ResourceProject, ActionDelete},
	{model.RoleOwner, ResourceBoard, ActionRead},
	{model.RoleOwner, ResourceBoard, ActionWrite},

	{model.RoleMember, ResourceProject, ActionRead},
	{model.RoleMember, ResourceProject, ActionLeave},
	{model.RoleMember, ResourceBoard, ActionRead},
	{model.RoleMember, ResourceBoard, ActionWrite},
}

// RoleResolver returns model.RoleOwner, model.RoleMember or "".
type RoleResolver interface {
	Role(ctx context.Context, projectID, userID uuid.UUID) (string, error)
}

type Enforcer struct {
	enforcer *casbin.Enforcer
	roles    RoleResolver
	log      *slog.Logger
}

func NewEnforcer(roles RoleResolver, log *slog.Logger) (*Enforcer, error) {
	m, err := casbinmodel.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}
	if _, err := e.AddPolicies(policies); err != nil {
		return nil, err
	}
	return &Enforcer{enforcer: e, roles: roles, log: log}, nil
}

// Allowed reports whether userID may perform action on resource within
// projectID. Outsiders are never allowed. Errors from role resolution, such
// as a missing project, are returned as is.
func (e *Enforcer) Allowed(ctx context.Context, userID, projectID uuid.UUID, resource, action string) (bool, error) {
	role, err := e.roles.Role(ctx, projectID, userID)
	if err != nil {
		return false, err
	}
	if role == "" {
		e.log.Debug("authz: no role in project",
			slog.String("user_id", userID.String()),
			slog.String("project_id", projectID.String()),
		)
		return false, nil
	}

	allowed, err := e.enforcer.Enforce(role, resource, action)
	e.log.Debug("authz: enforce",
		slog.String("role", role),
		slog.String("resource", resource),
		slog.String("action", action),
		slog.Bool("allowed", allowed),
	)
	return allowed, err
}
