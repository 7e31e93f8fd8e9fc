package pgsql

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/apperrors"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	portsrepo "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/repositories"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/models"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/repositories/database/sqlfilter"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/utils/mapping"
)

const (
	budgetColumns     = "id, titulo, cliente, descricao, forma_pagamento, prazo_entrega, status, data_criacao"
	budgetItemColumns = "id, orcamento_id, nome, quantidade, preco_unitario"
)

// PgxBudgetRepository stores budgets (orcamentos) and their line items (servicos_orcamento).
type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(pool *pgxpool.Pool) *PgxBudgetRepository {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

func scanBudget(row pgx.Row) (models.Budget, error) {
	var b models.Budget
	err := row.Scan(&b.ID, &b.Title, &b.Client, &b.Description, &b.PaymentTerms, &b.DueDate, &b.Status, &b.CreatedAt)
	return b, err
}

func scanBudgetItem(row pgx.Row) (models.BudgetItem, error) {
	var it models.BudgetItem
	err := row.Scan(&it.ID, &it.BudgetID, &it.Name, &it.Quantity, &it.UnitPrice)
	return it, err
}

// SaveBudget inserts the header and every line item inside one transaction.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelBudget(budget)
	headerQuery := `
		INSERT INTO orcamentos (titulo, cliente, descricao, forma_pagamento, prazo_entrega, status, data_criacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	if err := tx.QueryRow(ctx, headerQuery,
		m.Title, m.Client, m.Description, m.PaymentTerms, m.DueDate, m.Status, m.CreatedAt,
	).Scan(&budget.ID); err != nil {
		return nil, fmt.Errorf("failed to insert budget: %w", err)
	}

	itemQuery := `
		INSERT INTO servicos_orcamento (orcamento_id, nome, quantidade, preco_unitario)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	batch := &pgx.Batch{}
	for i := range budget.Items {
		budget.Items[i].BudgetID = budget.ID
		it := mapping.ToModelBudgetItem(budget.Items[i])
		batch.Queue(itemQuery, it.BudgetID, it.Name, it.Quantity, it.UnitPrice)
	}

	br := tx.SendBatch(ctx, batch)
	for i := range budget.Items {
		if err := br.QueryRow().Scan(&budget.Items[i].ID); err != nil {
			br.Close()
			return nil, fmt.Errorf("failed to insert line item %q of budget %d: %w", budget.Items[i].Name, budget.ID, err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, fmt.Errorf("failed to execute line item batch for budget %d: %w", budget.ID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &budget, nil
}

// FindBudgetByID retrieves a budget with its line items.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, id int64) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM orcamentos WHERE id = $1;`
	m, err := scanBudget(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget %d: %w", id, err)
	}

	items, err := r.findItemsByBudgetIDs(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainBudget(m, items[id])
	return &d, nil
}

// ListBudgets returns the budgets matching filter, newest first, with their items.
func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, filter domain.BudgetFilter) ([]domain.Budget, error) {
	where := sqlfilter.Budgets(sqlfilter.Postgres, filter)
	query := `SELECT ` + budgetColumns + ` FROM orcamentos` + where.Where() + sqlfilter.BudgetOrder

	rows, err := r.Pool.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	headers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Budget, error) {
		return scanBudget(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan budgets: %w", err)
	}
	if len(headers) == 0 {
		return []domain.Budget{}, nil
	}

	ids := make([]int64, len(headers))
	for i, h := range headers {
		ids[i] = h.ID
	}
	items, err := r.findItemsByBudgetIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	budgets := make([]domain.Budget, len(headers))
	for i, h := range headers {
		budgets[i] = mapping.ToDomainBudget(h, items[h.ID])
	}
	return budgets, nil
}

func (r *PgxBudgetRepository) findItemsByBudgetIDs(ctx context.Context, ids []int64) (map[int64][]models.BudgetItem, error) {
	query := `SELECT ` + budgetItemColumns + ` FROM servicos_orcamento WHERE orcamento_id = ANY($1) ORDER BY id;`
	rows, err := r.Pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items: %w", err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.BudgetItem, error) {
		return scanBudgetItem(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan line items: %w", err)
	}

	byBudget := make(map[int64][]models.BudgetItem, len(ids))
	for _, it := range items {
		byBudget[it.BudgetID] = append(byBudget[it.BudgetID], it)
	}
	return byBudget, nil
}

// ListBudgetClients returns the distinct non-empty clients, sorted.
func (r *PgxBudgetRepository) ListBudgetClients(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT DISTINCT cliente FROM orcamentos WHERE cliente <> '';`)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget clients: %w", err)
	}
	defer rows.Close()

	clients, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan budget clients: %w", err)
	}
	slices.Sort(clients)
	return clients, nil
}

// UpdateBudgetStatus changes only the status column.
func (r *PgxBudgetRepository) UpdateBudgetStatus(ctx context.Context, id int64, status domain.BudgetStatus) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE orcamentos SET status = $1 WHERE id = $2;`, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update status of budget %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBudget removes the line items and then the header in one transaction.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, id int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM servicos_orcamento WHERE orcamento_id = $1;`, id); err != nil {
		return fmt.Errorf("failed to delete line items of budget %d: %w", id, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM orcamentos WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete budget %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return r.Commit(ctx, tx)
}

// PurgeBudgets removes every budget and line item.
func (r *PgxBudgetRepository) PurgeBudgets(ctx context.Context) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM servicos_orcamento;`); err != nil {
		return 0, fmt.Errorf("failed to purge line items: %w", err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM orcamentos;`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge budgets: %w", err)
	}
	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
