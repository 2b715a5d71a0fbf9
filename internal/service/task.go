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

// TaskDetails is a partial update. Nil fields are left untouched; a
// PriorityID of 0 clears the priority.
type TaskDetails struct {
	Description     *string
	FullDescription *string
	PriorityID      *int
}

// TaskService write operations return their error so callers can hold off
// updating the view until the store confirms.
type TaskService struct {
	tasks      *repository.TaskRepository
	tiles      *repository.TileRepository
	priorities *repository.PriorityRepository
	log        *slog.Logger
}

func NewTaskService(
	tasks *repository.TaskRepository,
	tiles *repository.TileRepository,
	priorities *repository.PriorityRepository,
	log *slog.Logger,
) *TaskService {
	return &TaskService{
		tasks:      tasks,
		tiles:      tiles,
		priorities: priorities,
		log:        log,
	}
}

// FetchTasks degrades to an empty list when the store fails.
func (s *TaskService) FetchTasks(ctx context.Context, tileID uuid.UUID) []model.Task {
	tasks, err := s.tasks.GetByTileID(ctx, tileID)
	if err != nil {
		s.log.Warn("fetching tasks failed",
			slog.String("tile_id", tileID.String()),
			slog.String("error", err.Error()),
		)
		return []model.Task{}
	}
	return tasks
}

func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	const op = "GetTask"

	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, s.wrap(op, err, "Failed to retrieve task")
	}
	return task, nil
}

func (s *TaskService) CreateTask(ctx context.Context, description string, tileID uuid.UUID) (*model.Task, error) {
	const op = "CreateTask"

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, newError(op, ErrInvalidInput, "Task description is required", nil)
	}

	if _, err := s.tiles.GetByID(ctx, tileID); err != nil {
		if errors.Is(err, repository.ErrTileNotFound) {
			return nil, newError(op, ErrNotFound, "Tile not found", err)
		}
		return nil, newError(op, ErrPersistence, "Failed to add task", err)
	}

	task := &model.Task{
		Description: description,
		TileID:      tileID,
		IsComplete:  false,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, s.wrap(op, err, "Failed to add task")
	}
	return task, nil
}

// ToggleTaskComplete flips the completion flag and returns the stored task.
func (s *TaskService) ToggleTaskComplete(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	const op = "ToggleTaskComplete"

	if err := s.tasks.ToggleComplete(ctx, id); err != nil {
		return nil, s.wrap(op, err, "Failed to toggle task completion")
	}
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, s.wrap(op, err, "Failed to toggle task completion")
	}
	return task, nil
}

func (s *TaskService) UpdateTaskDescription(ctx context.Context, id uuid.UUID, description string) error {
	const op = "UpdateTaskDescription"

	description = strings.TrimSpace(description)
	if description == "" {
		return newError(op, ErrInvalidInput, "Task description is required", nil)
	}
	if err := s.tasks.UpdateFields(ctx, id, map[string]interface{}{"description": description}); err != nil {
		return s.wrap(op, err, "Failed to update task description")
	}
	return nil
}

// UpdateTaskDetails writes only the fields present in details.
func (s *TaskService) UpdateTaskDetails(ctx context.Context, id uuid.UUID, details TaskDetails) (*model.Task, error) {
	const op = "UpdateTaskDetails"

	fields := make(map[string]interface{}, 3)
	if details.Description != nil {
		description := strings.TrimSpace(*details.Description)
		if description == "" {
			return nil, newError(op, ErrInvalidInput, "Task description cannot be empty", nil)
		}
		fields["description"] = description
	}
	if details.FullDescription != nil {
		fields["full_description"] = *details.FullDescription
	}
	if details.PriorityID != nil {
		if *details.PriorityID == 0 {
			fields["priority_id"] = nil
		} else {
			ok, err := s.priorities.Exists(ctx, *details.PriorityID)
			if err != nil {
				return nil, newError(op, ErrPersistence, "Failed to update task details", err)
			}
			if !ok {
				return nil, newError(op, ErrInvalidInput, "Unknown priority", nil)
			}
			fields["priority_id"] = *details.PriorityID
		}
	}
	if len(fields) == 0 {
		return nil, newError(op, ErrInvalidInput, "No fields to update", nil)
	}

	if err := s.tasks.UpdateFields(ctx, id, fields); err != nil {
		return nil, s.wrap(op, err, "Failed to update task details")
	}
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, s.wrap(op, err, "Failed to update task details")
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	const op = "DeleteTask"

	if err := s.tasks.Delete(ctx, id); err != nil {
		return s.wrap(op, err, "Failed to delete task")
	}
	return nil
}

// ListPriorities returns the global lookup, or an empty list on failure.
func (s *TaskService) ListPriorities(ctx context.Context) []model.Priority {
	priorities, err := s.priorities.List(ctx)
	if err != nil {
		s.log.Warn("fetching priorities failed", slog.String("error", err.Error()))
		return []model.Priority{}
	}
	return priorities
}

func (s *TaskService) wrap(op string, err error, msg string) error {
	if errors.Is(err, repository.ErrTaskNotFound) {
		return newError(op, ErrNotFound, "Task not found", err)
	}
	s.log.Error("task operation failed", slog.String("op", op), slog.String("error", err.Error()))
	return newError(op, ErrPersistence, msg, err)
}
