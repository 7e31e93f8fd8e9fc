package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

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

// BudgetRepository stores budgets (orcamentos) and their line items (servicos_orcamento).
type BudgetRepository struct {
	BaseRepository
}

func newBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.BudgetRepositoryFacade = (*BudgetRepository)(nil)

func scanBudget(row rowScanner) (models.Budget, error) {
	var b models.Budget
	var due sql.NullString
	var createdAt string
	if err := row.Scan(&b.ID, &b.Title, &b.Client, &b.Description, &b.PaymentTerms, &due, &b.Status, &createdAt); err != nil {
		return b, err
	}
	if due.Valid && due.String != "" {
		d, err := parseDate(due.String)
		if err != nil {
			return b, err
		}
		b.DueDate = &d
	}
	var err error
	b.CreatedAt, err = parseTimestamp(createdAt)
	return b, err
}

func scanBudgetItem(row rowScanner) (models.BudgetItem, error) {
	var it models.BudgetItem
	err := row.Scan(&it.ID, &it.BudgetID, &it.Name, &it.Quantity, &it.UnitPrice)
	return it, err
}

// SaveBudget inserts the header and every line item inside one transaction.
func (r *BudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(tx)

	m := mapping.ToModelBudget(budget)
	var due sql.NullString
	if m.DueDate != nil {
		due = sql.NullString{String: formatDate(*m.DueDate), Valid: true}
	}
	res, err := tx.ExecContext(ctx, `
		INSERT INTO orcamentos (titulo, cliente, descricao, forma_pagamento, prazo_entrega, status, data_criacao)
		VALUES (?, ?, ?, ?, ?, ?, ?);
	`, m.Title, m.Client, m.Description, m.PaymentTerms, due, m.Status, formatTimestamp(m.CreatedAt))
	if err != nil {
		return nil, fmt.Errorf("failed to insert budget: %w", err)
	}
	if budget.ID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("failed to read budget id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO servicos_orcamento (orcamento_id, nome, quantidade, preco_unitario)
		VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare line item insert: %w", err)
	}
	defer stmt.Close()

	for i := range budget.Items {
		budget.Items[i].BudgetID = budget.ID
		it := mapping.ToModelBudgetItem(budget.Items[i])
		res, err := stmt.ExecContext(ctx, it.BudgetID, it.Name, it.Quantity, it.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("failed to insert line item %q of budget %d: %w", it.Name, budget.ID, err)
		}
		if budget.Items[i].ID, err = res.LastInsertId(); err != nil {
			return nil, fmt.Errorf("failed to read line item id: %w", err)
		}
	}

	if err := r.Commit(tx); err != nil {
		return nil, err
	}
	return &budget, nil
}

// FindBudgetByID retrieves a budget with its line items.
func (r *BudgetRepository) FindBudgetByID(ctx context.Context, id int64) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM orcamentos WHERE id = ?;`
	m, err := scanBudget(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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
func (r *BudgetRepository) ListBudgets(ctx context.Context, filter domain.BudgetFilter) ([]domain.Budget, error) {
	where := sqlfilter.Budgets(sqlfilter.SQLite, filter)
	query := `SELECT ` + budgetColumns + ` FROM orcamentos` + where.Where() + sqlfilter.BudgetOrder

	rows, err := r.DB.QueryContext(ctx, query, where.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	headers := []models.Budget{}
	for rows.Next() {
		h, err := scanBudget(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		headers = append(headers, h)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to iterate budgets: %w", err)
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

func (r *BudgetRepository) findItemsByBudgetIDs(ctx context.Context, ids []int64) (map[int64][]models.BudgetItem, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	query := `SELECT ` + budgetItemColumns + ` FROM servicos_orcamento WHERE orcamento_id IN (` + placeholders + `) ORDER BY id;`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items: %w", err)
	}
	defer rows.Close()

	byBudget := make(map[int64][]models.BudgetItem, len(ids))
	for rows.Next() {
		it, err := scanBudgetItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		byBudget[it.BudgetID] = append(byBudget[it.BudgetID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate line items: %w", err)
	}
	return byBudget, nil
}

// ListBudgetClients returns the distinct non-empty clients, sorted.
func (r *BudgetRepository) ListBudgetClients(ctx context.Context) ([]string, error) {
	return listClients(ctx, r.DB, "orcamentos")
}

// UpdateBudgetStatus changes only the status column.
func (r *BudgetRepository) UpdateBudgetStatus(ctx context.Context, id int64, status domain.BudgetStatus) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE orcamentos SET status = ? WHERE id = ?;`, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update status of budget %d: %w", id, err)
	}
	return notFoundIfNoRows(res)
}

// DeleteBudget removes the line items and then the header in one transaction.
func (r *BudgetRepository) DeleteBudget(ctx context.Context, id int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(tx)

	if _, err := tx.ExecContext(ctx, `DELETE FROM servicos_orcamento WHERE orcamento_id = ?;`, id); err != nil {
		return fmt.Errorf("failed to delete line items of budget %d: %w", id, err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM orcamentos WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete budget %d: %w", id, err)
	}
	if err := notFoundIfNoRows(res); err != nil {
		return err
	}
	return r.Commit(tx)
}

// PurgeBudgets removes every budget and line item.
func (r *BudgetRepository) PurgeBudgets(ctx context.Context) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(tx)

	if _, err := tx.ExecContext(ctx, `DELETE FROM servicos_orcamento;`); err != nil {
		return 0, fmt.Errorf("failed to purge line items: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM orcamentos;`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge budgets: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if err := r.Commit(tx); err != nil {
		return 0, err
	}
	return n, nil
}
