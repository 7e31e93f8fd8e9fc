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

const entryColumns = "id, tipo, valor, data, categoria, descricao, data_criacao"

// PgxEntryRepository stores financial entries in the lancamentos table.
type PgxEntryRepository struct {
	BaseRepository
}

func newPgxEntryRepository(pool *pgxpool.Pool) *PgxEntryRepository {
	return &PgxEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

func scanEntry(row pgx.Row) (models.Entry, error) {
	var e models.Entry
	err := row.Scan(&e.ID, &e.Kind, &e.Amount, &e.Date, &e.Category, &e.Description, &e.CreatedAt)
	return e, err
}

// SaveEntry inserts a new entry and returns its ID.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.FinancialEntry) (int64, error) {
	m := mapping.ToModelEntry(entry)
	query := `
		INSERT INTO lancamentos (tipo, valor, data, categoria, descricao, data_criacao)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	var id int64
	if err := r.Pool.QueryRow(ctx, query, m.Kind, m.Amount, m.Date, m.Category, m.Description, m.CreatedAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert entry: %w", err)
	}
	return id, nil
}

// FindEntryByID retrieves an entry by its ID.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, id int64) (*domain.FinancialEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM lancamentos WHERE id = $1;`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry %d: %w", id, err)
	}
	d := mapping.ToDomainEntry(m)
	return &d, nil
}

// ListEntries returns the entries matching filter, newest first.
func (r *PgxEntryRepository) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.FinancialEntry, error) {
	where := sqlfilter.Entries(sqlfilter.Postgres, filter)
	query := `SELECT ` + entryColumns + ` FROM lancamentos` + where.Where() + sqlfilter.EntryOrder

	rows, err := r.Pool.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Entry, error) {
		return scanEntry(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan entries: %w", err)
	}
	return mapping.ToDomainEntrySlice(ms), nil
}

// DeleteEntry removes an entry.
func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM lancamentos WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
