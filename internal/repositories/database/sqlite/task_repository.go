package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/apperrors"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	portsrepo "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/repositories"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/models"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/repositories/database/sqlfilter"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/utils/mapping"
)

const taskColumns = "id, titulo, tipo, data, horario, cliente, local, descricao, concluida, data_criacao"

// TaskRepository stores agenda tasks in the tarefas table.
type TaskRepository struct {
	BaseRepository
}

func newTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.TaskRepositoryFacade = (*TaskRepository)(nil)

func scanTask(row rowScanner) (models.Task, error) {
	var t models.Task
	var date, createdAt string
	var clock sql.NullString
	if err := row.Scan(&t.ID, &t.Title, &t.Kind, &date, &clock, &t.Client, &t.Location, &t.Description, &t.Done, &createdAt); err != nil {
		return t, err
	}
	if clock.Valid {
		t.Time = &clock.String
	}
	var err error
	if t.Date, err = parseDate(date); err != nil {
		return t, err
	}
	t.CreatedAt, err = parseTimestamp(createdAt)
	return t, err
}

// SaveTask inserts a new task and returns its ID.
func (r *TaskRepository) SaveTask(ctx context.Context, task domain.Task) (int64, error) {
	m := mapping.ToModelTask(task)
	query := `
		INSERT INTO tarefas (titulo, tipo, data, horario, cliente, local, descricao, concluida, data_criacao)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	res, err := r.DB.ExecContext(ctx, query,
		m.Title, m.Kind, formatDate(m.Date), nullString(m.Time), m.Client, m.Location,
		m.Description, m.Done, formatTimestamp(m.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("failed to insert task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read task id: %w", err)
	}
	return id, nil
}

// FindTaskByID retrieves a task by its ID.
func (r *TaskRepository) FindTaskByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tarefas WHERE id = ?;`
	m, err := scanTask(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task %d: %w", id, err)
	}
	d := mapping.ToDomainTask(m)
	return &d, nil
}

// ListTasks returns the tasks matching filter in agenda order.
func (r *TaskRepository) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	where := sqlfilter.Tasks(sqlfilter.SQLite, filter)
	query := `SELECT ` + taskColumns + ` FROM tarefas` + where.Where() + sqlfilter.TaskOrder

	rows, err := r.DB.QueryContext(ctx, query, where.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	ms := []models.Task{}
	for rows.Next() {
		m, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	return mapping.ToDomainTaskSlice(ms), nil
}

// UpdateTaskDone sets the concluida flag of a task.
func (r *TaskRepository) UpdateTaskDone(ctx context.Context, id int64, done bool) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE tarefas SET concluida = ? WHERE id = ?;`, done, id)
	if err != nil {
		return fmt.Errorf("failed to update task %d: %w", id, err)
	}
	return notFoundIfNoRows(res)
}

// DeleteTask removes a task.
func (r *TaskRepository) DeleteTask(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM tarefas WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return notFoundIfNoRows(res)
}
