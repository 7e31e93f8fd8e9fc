package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/apperrors"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	portsrepo "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/repositories"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/models"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/repositories/database/sqlfilter"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/utils/mapping"
)

const taskColumns = "id, titulo, tipo, data, horario, cliente, local, descricao, concluida, data_criacao"

// PgxTaskRepository stores agenda tasks in the tarefas table.
type PgxTaskRepository struct {
	BaseRepository
}

func newPgxTaskRepository(pool *pgxpool.Pool) *PgxTaskRepository {
	return &PgxTaskRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TaskRepositoryFacade = (*PgxTaskRepository)(nil)

func scanTask(row pgx.Row) (models.Task, error) {
	var t models.Task
	err := row.Scan(&t.ID, &t.Title, &t.Kind, &t.Date, &t.Time, &t.Client, &t.Location, &t.Description, &t.Done, &t.CreatedAt)
	return t, err
}

// SaveTask inserts a new task and returns its ID.
func (r *PgxTaskRepository) SaveTask(ctx context.Context, task domain.Task) (int64, error) {
	m := mapping.ToModelTask(task)
	query := `
		INSERT INTO tarefas (titulo, tipo, data, horario, cliente, local, descricao, concluida, data_criacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.Title, m.Kind, m.Date, m.Time, m.Client, m.Location, m.Description, m.Done, m.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert task: %w", err)
	}
	return id, nil
}

// FindTaskByID retrieves a task by its ID.
func (r *PgxTaskRepository) FindTaskByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tarefas WHERE id = $1;`
	m, err := scanTask(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task %d: %w", id, err)
	}
	d := mapping.ToDomainTask(m)
	return &d, nil
}

// ListTasks returns the tasks matching filter in agenda order.
func (r *PgxTaskRepository) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	where := sqlfilter.Tasks(sqlfilter.Postgres, filter)
	query := `SELECT ` + taskColumns + ` FROM tarefas` + where.Where() + sqlfilter.TaskOrder

	rows, err := r.Pool.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Task, error) {
		return scanTask(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan tasks: %w", err)
	}
	return mapping.ToDomainTaskSlice(ms), nil
}

// UpdateTaskDone sets the concluida flag of a task.
func (r *PgxTaskRepository) UpdateTaskDone(ctx context.Context, id int64, done bool) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE tarefas SET concluida = $1 WHERE id = $2;`, done, id)
	if err != nil {
		return fmt.Errorf("failed to update task %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTask removes a task.
func (r *PgxTaskRepository) DeleteTask(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM tarefas WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
