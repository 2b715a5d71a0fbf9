package handler_test

import (
	"context"

	"github.com/Seba01D/pm-app/internal/middleware"
	"github.com/Seba01D/pm-app/internal/model"
	"github.com/Seba01D/pm-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) CreateProject(ctx context.Context, in service.CreateProjectInput) (*model.Project, error) {
	args := m.Called(ctx, in)
	project := args.Get(0)
	if project == nil {
		return nil, args.Error(1)
	}
	return project.(*model.Project), args.Error(1)
}

func (m *MockProjectService) GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	project := args.Get(0)
	if project == nil {
		return nil, args.Error(1)
	}
	return project.(*model.Project), args.Error(1)
}

func (m *MockProjectService) ListOwnedProjects(ctx context.Context, ownerID uuid.UUID) []model.Project {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]model.Project)
}

func (m *MockProjectService) ListJoinedProjects(ctx context.Context, userID uuid.UUID) []model.Project {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Project)
}

func (m *MockProjectService) Stats(ctx context.Context, userID uuid.UUID) service.ProjectStats {
	args := m.Called(ctx, userID)
	return args.Get(0).(service.ProjectStats)
}

func (m *MockProjectService) RenameProject(ctx context.Context, id uuid.UUID, name string) error {
	return m.Called(ctx, id, name).Error(0)
}

func (m *MockProjectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProjectService) LeaveProject(ctx context.Context, projectID, userID uuid.UUID) error {
	return m.Called(ctx, projectID, userID).Error(0)
}

type MockMembershipService struct {
	mock.Mock
}

func (m *MockMembershipService) JoinProject(ctx context.Context, accessCode, bearerToken string) (*model.Project, error) {
	args := m.Called(ctx, accessCode, bearerToken)
	project := args.Get(0)
	if project == nil {
		return nil, args.Error(1)
	}
	return project.(*model.Project), args.Error(1)
}

type MockTileService struct {
	mock.Mock
}

func (m *MockTileService) FetchTiles(ctx context.Context, projectID uuid.UUID) []model.Tile {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]model.Tile)
}

func (m *MockTileService) GetTile(ctx context.Context, id uuid.UUID) (*model.Tile, error) {
	args := m.Called(ctx, id)
	tile := args.Get(0)
	if tile == nil {
		return nil, args.Error(1)
	}
	return tile.(*model.Tile), args.Error(1)
}

func (m *MockTileService) CreateTile(ctx context.Context, name string, projectID uuid.UUID) (*model.Tile, bool) {
	args := m.Called(ctx, name, projectID)
	tile := args.Get(0)
	if tile == nil {
		return nil, args.Bool(1)
	}
	return tile.(*model.Tile), args.Bool(1)
}

func (m *MockTileService) RenameTile(ctx context.Context, id uuid.UUID, name string) bool {
	return m.Called(ctx, id, name).Bool(0)
}

func (m *MockTileService) DeleteTile(ctx context.Context, id uuid.UUID) bool {
	return m.Called(ctx, id).Bool(0)
}

type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) FetchTasks(ctx context.Context, tileID uuid.UUID) []model.Task {
	args := m.Called(ctx, tileID)
	return args.Get(0).([]model.Task)
}

func (m *MockTaskService) GetTask(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, id)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockTaskService) CreateTask(ctx context.Context, description string, tileID uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, description, tileID)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockTaskService) ToggleTaskComplete(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, id)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockTaskService) UpdateTaskDescription(ctx context.Context, id uuid.UUID, description string) error {
	return m.Called(ctx, id, description).Error(0)
}

func (m *MockTaskService) UpdateTaskDetails(ctx context.Context, id uuid.UUID, details service.TaskDetails) (*model.Task, error) {
	args := m.Called(ctx, id, details)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockTaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaskService) ListPriorities(ctx context.Context) []model.Priority {
	args := m.Called(ctx)
	return args.Get(0).([]model.Priority)
}

type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) Allowed(ctx context.Context, userID, projectID uuid.UUID, resource, action string) (bool, error) {
	args := m.Called(ctx, userID, projectID, resource, action)
	return args.Bool(0), args.Error(1)
}

// asUser stands in for the JWT middleware.
func asUser(id uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, id)
		c.Next()
	}
}
