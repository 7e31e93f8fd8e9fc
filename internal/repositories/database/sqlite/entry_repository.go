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

const entryColumns = "id, tipo, valor, data, categoria, descricao, data_criacao"

// EntryRepository stores financial entries in the lancamentos table.
type EntryRepository struct {
	BaseRepository
}

func newEntryRepository(db *sql.DB) *EntryRepository {
	return &EntryRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.EntryRepositoryFacade = (*EntryRepository)(nil)

func scanEntry(row rowScanner) (models.Entry, error) {
	var e models.Entry
	var date, createdAt string
	if err := row.Scan(&e.ID, &e.Kind, &e.Amount, &date, &e.Category, &e.Description, &createdAt); err != nil {
		return e, err
	}
	var err error
	if e.Date, err = parseDate(date); err != nil {
		return e, err
	}
	e.CreatedAt, err = parseTimestamp(createdAt)
	return e, err
}

// SaveEntry inserts a new entry and returns its ID.
func (r *EntryRepository) SaveEntry(ctx context.Context, entry domain.FinancialEntry) (int64, error) {
	m := mapping.ToModelEntry(entry)
	query := `
		INSERT INTO lancamentos (tipo, valor, data, categoria, descricao, data_criacao)
		VALUES (?, ?, ?, ?, ?, ?);
	`
	res, err := r.DB.ExecContext(ctx, query,
		m.Kind, m.Amount, formatDate(m.Date), m.Category, m.Description, formatTimestamp(m.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("failed to insert entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read entry id: %w", err)
	}
	return id, nil
}

// FindEntryByID retrieves an entry by its ID.
func (r *EntryRepository) FindEntryByID(ctx context.Context, id int64) (*domain.FinancialEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM lancamentos WHERE id = ?;`
	m, err := scanEntry(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry %d: %w", id, err)
	}
	d := mapping.ToDomainEntry(m)
	return &d, nil
}

// ListEntries returns the entries matching filter, newest first.
func (r *EntryRepository) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.FinancialEntry, error) {
	where := sqlfilter.Entries(sqlfilter.SQLite, filter)
	query := `SELECT ` + entryColumns + ` FROM lancamentos` + where.Where() + sqlfilter.EntryOrder

	rows, err := r.DB.QueryContext(ctx, query, where.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	ms := []models.Entry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}
	return mapping.ToDomainEntrySlice(ms), nil
}

// DeleteEntry removes an entry.
func (r *EntryRepository) DeleteEntry(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM lancamentos WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry %d: %w", id, err)
	}
	return notFoundIfNoRows(res)
}
