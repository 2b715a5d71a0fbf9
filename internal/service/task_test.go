package service_test

import (
	"context"
	"testing"

	"github.com/Seba01D/pm-app/internal/model"
	"github.com/Seba01D/pm-app/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// board creates a project with one tile and returns the tile.
func board(t *testing.T, e *env) *model.Tile {
	t.Helper()
	ctx := context.Background()

	ownerID, _ := e.user(t, uuid.NewString()+"@example.com")
	project, err := e.projects.CreateProject(ctx, service.CreateProjectInput{Name: "Launch", OwnerID: ownerID})
	require.NoError(t, err)
	tile, ok := e.tiles.CreateTile(ctx, "Todo", project.ID)
	require.True(t, ok)
	return tile
}

func TestTiles_Lifecycle(t *testing.T) {
	e := newEnv(t, nil, 3)
	ctx := context.Background()
	tile := board(t, e)

	second, ok := e.tiles.CreateTile(ctx, "Done", tile.ProjectID)
	require.True(t, ok)

	tiles := e.tiles.FetchTiles(ctx, tile.ProjectID)
	require.Len(t, tiles, 2)

	assert.True(t, e.tiles.RenameTile(ctx, second.ID, "Shipped"))
	got, err := e.tiles.GetTile(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shipped", got.Name)

	assert.True(t, e.tiles.DeleteTile(ctx, second.ID))
	assert.Len(t, e.tiles.FetchTiles(ctx, tile.ProjectID), 1)
	assert.False(t, e.tiles.DeleteTile(ctx, second.ID))
}

func TestTiles_CreateRejectsBadInput(t *testing.T) {
	e := newEnv(t, nil, 3)
	ctx := context.Background()
	tile := board(t, e)

	_, ok := e.tiles.CreateTile(ctx, "  ", tile.ProjectID)
	assert.False(t, ok)
	_, ok = e.tiles.CreateTile(ctx, "Todo", uuid.New())
	assert.False(t, ok)
	assert.False(t, e.tiles.RenameTile(ctx, tile.ID, ""))
	assert.Empty(t, e.tiles.FetchTiles(ctx, uuid.New()))
}

func TestToggleTaskComplete_IsInvolution(t *testing.T) {
	e := newEnv(t, nil, 3)
	ctx := context.Background()
	tile := board(t, e)

	task, err := e.tasks.CreateTask(ctx, "Write docs", tile.ID)
	require.NoError(t, err)
	assert.False(t, task.IsComplete)

	once, err := e.tasks.ToggleTaskComplete(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, once.IsComplete)

	twice, err := e.tasks.ToggleTaskComplete(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, twice.IsComplete)

	_, err = e.tasks.ToggleTaskComplete(ctx, uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestDeleteTask_RemovedFromFetch(t *testing.T) {
	e := newEnv(t, nil, 3)
	ctx := context.Background()
	tile := board(t, e)

	keep, err := e.tasks.CreateTask(ctx, "Keep", tile.ID)
	require.NoError(t, err)
	drop, err := e.tasks.CreateTask(ctx, "Drop", tile.ID)
	require.NoError(t, err)

	require.NoError(t, e.tasks.DeleteTask(ctx, drop.ID))

	tasks := e.tasks.FetchTasks(ctx, tile.ID)
	require.Len(t, tasks, 1)
	assert.Equal(t, keep.ID, tasks[0].ID)
	assert.ErrorIs(t, e.tasks.DeleteTask(ctx, drop.ID), service.ErrNotFound)
}

func TestUpdateTaskDetails_PartialUpdate(t *testing.T) {
	e := newEnv(t, nil, 3)
	ctx := context.Background()
	tile := board(t, e)

	task, err := e.tasks.CreateTask(ctx, "Write docs", tile.ID)
	require.NoError(t, err)

	full := "Cover the join flow"
	updated, err := e.tasks.UpdateTaskDetails(ctx, task.ID, service.TaskDetails{FullDescription: &full})
	require.NoError(t, err)
	assert.Equal(t, "Write docs", updated.Description)
	assert.Equal(t, full, updated.FullDescription)
	assert.Nil(t, updated.PriorityID)

	high := 3
	updated, err = e.tasks.UpdateTaskDetails(ctx, task.ID, service.TaskDetails{PriorityID: &high})
	require.NoError(t, err)
	require.NotNil(t, updated.PriorityID)
	assert.Equal(t, 3, *updated.PriorityID)
	assert.Equal(t, full, updated.FullDescription)

	none := 0
	updated, err = e.tasks.UpdateTaskDetails(ctx, task.ID, service.TaskDetails{PriorityID: &none})
	require.NoError(t, err)
	assert.Nil(t, updated.PriorityID)
}

func TestUpdateTaskDetails_Rejections(t *testing.T) {
	e := newEnv(t, nil, 3)
	ctx := context.Background()
	tile := board(t, e)

	task, err := e.tasks.CreateTask(ctx, "Write docs", tile.ID)
	require.NoError(t, err)

	unknown := 42
	blank := " "
	_, err = e.tasks.UpdateTaskDetails(ctx, task.ID, service.TaskDetails{PriorityID: &unknown})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	_, err = e.tasks.UpdateTaskDetails(ctx, task.ID, service.TaskDetails{Description: &blank})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	_, err = e.tasks.UpdateTaskDetails(ctx, task.ID, service.TaskDetails{})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	full := "x"
	_, err = e.tasks.UpdateTaskDetails(ctx, uuid.New(), service.TaskDetails{FullDescription: &full})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCreateTask_Validation(t *testing.T) {
	e := newEnv(t, nil, 3)
	ctx := context.Background()
	tile := board(t, e)

	_, err := e.tasks.CreateTask(ctx, "  ", tile.ID)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	_, err = e.tasks.CreateTask(ctx, "Orphan", uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.Zero(t, e.count(t, &model.Task{}))
}

func TestUpdateTaskDescription(t *testing.T) {
	e := newEnv(t, nil, 3)
	ctx := context.Background()
	tile := board(t, e)

	task, err := e.tasks.CreateTask(ctx, "Write docs", tile.ID)
	require.NoError(t, err)

	require.NoError(t, e.tasks.UpdateTaskDescription(ctx, task.ID, "Write better docs"))
	got, err := e.tasks.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Write better docs", got.Description)
	assert.ErrorIs(t, e.tasks.UpdateTaskDescription(ctx, task.ID, ""), service.ErrInvalidInput)
}

func TestListPriorities(t *testing.T) {
	e := newEnv(t, nil, 3)

	priorities := e.tasks.ListPriorities(context.Background())

	require.Len(t, priorities, 3)
	assert.Equal(t, "Low", priorities[0].Name)
	assert.Equal(t, "High", priorities[2].Name)
}
