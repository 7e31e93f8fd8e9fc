package repositories

import (
	"context"

	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
)

// TaskReader defines read operations for tasks
type TaskReader interface {
	// FindTaskByID retrieves a task. Returns apperrors.ErrNotFound if absent.
	FindTaskByID(ctx context.Context, id int64) (*domain.Task, error)

	// ListTasks returns the tasks matching filter ordered by date, then time
	// (tasks without a time last), then ID.
	ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
}

// TaskWriter defines write operations for tasks
type TaskWriter interface {
	// SaveTask persists a new task and returns its store-assigned ID.
	SaveTask(ctx context.Context, task domain.Task) (int64, error)

	// UpdateTaskDone sets the done flag. Returns apperrors.ErrNotFound if absent.
	UpdateTaskDone(ctx context.Context, id int64, done bool) error

	// DeleteTask removes a task. Returns apperrors.ErrNotFound if absent.
	DeleteTask(ctx context.Context, id int64) error
}

// TaskRepositoryFacade combines all task-related repository interfaces
type TaskRepositoryFacade interface {
	TaskReader
	TaskWriter
}
