package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/apperrors"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	portsrepo "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/repositories"
	portssvc "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/services"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/dto"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/utils/aggregation"
)

const msgTaskNotFound = "Tarefa não encontrada"

type taskService struct {
	BaseService
	taskRepo portsrepo.TaskRepositoryFacade
}

// NewTaskService creates the task service.
func NewTaskService(repo portsrepo.TaskRepositoryFacade, opts ...Option) portssvc.TaskSvcFacade {
	return &taskService{BaseService: newBaseService(opts), taskRepo: repo}
}

var _ portssvc.TaskSvcFacade = (*taskService)(nil)

func (s *taskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*domain.Task, error) {
	kind := domain.TaskKind(req.Tipo)
	if !kind.IsValid() {
		return nil, apperrors.NewValidationError(`Tipo deve ser "captacao", "edicao" ou "reuniao"`)
	}
	date, err := domain.ParseDate(req.Data)
	if err != nil {
		return nil, apperrors.NewValidationError("Formato de data inválido")
	}

	var clock *domain.ClockTime
	if req.Horario != "" {
		c, err := domain.ParseClockTime(req.Horario)
		if err != nil {
			return nil, apperrors.NewValidationError("Formato de horário inválido (use HH:MM)")
		}
		clock = &c
	}

	task := domain.Task{
		Title:       req.Titulo,
		Kind:        kind,
		Date:        date,
		Time:        clock,
		Client:      req.Cliente,
		Location:    req.Local,
		Description: req.Descricao,
		CreatedAt:   s.Now(),
	}

	id, err := s.taskRepo.SaveTask(ctx, task)
	if err != nil {
		s.LogError(ctx, err, "Failed to save task", slog.String("tipo", req.Tipo))
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	task.ID = id

	s.LogInfo(ctx, "Task created", slog.Int64("task_id", id), slog.String("data", req.Data))
	return &task, nil
}

func (s *taskService) CompleteTask(ctx context.Context, id int64, done bool) (*domain.Task, error) {
	if err := s.taskRepo.UpdateTaskDone(ctx, id, done); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(msgTaskNotFound)
		}
		s.LogError(ctx, err, "Failed to update task", slog.Int64("task_id", id))
		return nil, fmt.Errorf("failed to update task %d: %w", id, err)
	}

	task, err := s.taskRepo.FindTaskByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(msgTaskNotFound)
		}
		s.LogError(ctx, err, "Failed to reload task", slog.Int64("task_id", id))
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}

	s.LogInfo(ctx, "Task done flag updated", slog.Int64("task_id", id), slog.Bool("concluida", done))
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id int64) error {
	if err := s.taskRepo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(msgTaskNotFound)
		}
		s.LogError(ctx, err, "Failed to delete task", slog.Int64("task_id", id))
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	s.LogInfo(ctx, "Task deleted", slog.Int64("task_id", id))
	return nil
}

func (s *taskService) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	tasks, err := s.taskRepo.ListTasks(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tasks")
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if tasks == nil {
		return []domain.Task{}, nil
	}
	return tasks, nil
}

func (s *taskService) TaskCalendar(ctx context.Context, year, month int) (domain.TaskCalendar, error) {
	from, before, err := aggregation.MonthRange(year, month)
	if err != nil {
		return domain.TaskCalendar{}, err
	}

	tasks, err := s.ListTasks(ctx, domain.TaskFilter{DateFrom: &from, DateBefore: &before})
	if err != nil {
		return domain.TaskCalendar{}, err
	}
	// each day lists its tasks in insertion order
	slices.SortStableFunc(tasks, func(a, b domain.Task) int { return cmp.Compare(a.ID, b.ID) })
	return domain.TaskCalendar{Year: year, Month: month, Days: aggregation.GroupByDay(tasks)}, nil
}

func (s *taskService) TaskStatistics(ctx context.Context, filter domain.TaskFilter) (domain.TaskStats, error) {
	tasks, err := s.ListTasks(ctx, filter)
	if err != nil {
		return domain.TaskStats{}, err
	}
	return aggregation.TaskStatistics(tasks), nil
}
