package services

import (
	"context"

	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/dto"
)

// TaskReaderSvc defines read operations for tasks
type TaskReaderSvc interface {
	ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)

	// TaskCalendar groups the tasks of one month by day. Out of range
	// months and years yield a 400 AppError.
	TaskCalendar(ctx context.Context, year, month int) (domain.TaskCalendar, error)

	// TaskStatistics computes completion figures over the tasks matching filter.
	TaskStatistics(ctx context.Context, filter domain.TaskFilter) (domain.TaskStats, error)
}

// TaskWriterSvc defines write operations for tasks
type TaskWriterSvc interface {
	CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*domain.Task, error)

	// CompleteTask sets the done flag and returns the updated task.
	CompleteTask(ctx context.Context, id int64, done bool) (*domain.Task, error)

	DeleteTask(ctx context.Context, id int64) error
}

// TaskSvcFacade combines all task-related service interfaces
type TaskSvcFacade interface {
	TaskReaderSvc
	TaskWriterSvc
}
