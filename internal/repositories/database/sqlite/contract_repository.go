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

const contractColumns = "id, titulo, cliente, valor, data_inicio, data_fim, observacoes, nome_arquivo, caminho_arquivo, data_upload"

// ContractRepository stores contract metadata in the contratos table.
type ContractRepository struct {
	BaseRepository
}

func newContractRepository(db *sql.DB) *ContractRepository {
	return &ContractRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.ContractRepositoryFacade = (*ContractRepository)(nil)

func scanContract(row rowScanner) (models.Contract, error) {
	var c models.Contract
	var start, end, uploadedAt string
	if err := row.Scan(&c.ID, &c.Title, &c.Client, &c.Amount, &start, &end, &c.Notes, &c.FileName, &c.FilePath, &uploadedAt); err != nil {
		return c, err
	}
	var err error
	if c.StartDate, err = parseDate(start); err != nil {
		return c, err
	}
	if c.EndDate, err = parseDate(end); err != nil {
		return c, err
	}
	c.UploadedAt, err = parseTimestamp(uploadedAt)
	return c, err
}

// SaveContract inserts a new contract and returns its ID.
func (r *ContractRepository) SaveContract(ctx context.Context, contract domain.Contract) (int64, error) {
	m := mapping.ToModelContract(contract)
	query := `
		INSERT INTO contratos (titulo, cliente, valor, data_inicio, data_fim, observacoes, nome_arquivo, caminho_arquivo, data_upload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	res, err := r.DB.ExecContext(ctx, query,
		m.Title, m.Client, m.Amount, formatDate(m.StartDate), formatDate(m.EndDate),
		m.Notes, m.FileName, m.FilePath, formatTimestamp(m.UploadedAt))
	if err != nil {
		return 0, fmt.Errorf("failed to insert contract: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read contract id: %w", err)
	}
	return id, nil
}

// FindContractByID retrieves a contract by its ID.
func (r *ContractRepository) FindContractByID(ctx context.Context, id int64) (*domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contratos WHERE id = ?;`
	m, err := scanContract(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contract %d: %w", id, err)
	}
	d := mapping.ToDomainContract(m)
	return &d, nil
}

// ListContracts returns the contracts matching filter, most recent upload first.
func (r *ContractRepository) ListContracts(ctx context.Context, filter domain.ContractFilter) ([]domain.Contract, error) {
	where := sqlfilter.Contracts(sqlfilter.SQLite, filter)
	query := `SELECT ` + contractColumns + ` FROM contratos` + where.Where() + sqlfilter.ContractOrder

	rows, err := r.DB.QueryContext(ctx, query, where.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to query contracts: %w", err)
	}
	defer rows.Close()

	ms := []models.Contract{}
	for rows.Next() {
		m, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contract: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contracts: %w", err)
	}
	return mapping.ToDomainContractSlice(ms), nil
}

// ListContractClients returns the distinct non-empty clients, sorted.
func (r *ContractRepository) ListContractClients(ctx context.Context) ([]string, error) {
	return listClients(ctx, r.DB, "contratos")
}

// DeleteContract removes a contract row.
func (r *ContractRepository) DeleteContract(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM contratos WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contract %d: %w", id, err)
	}
	return notFoundIfNoRows(res)
}

// PurgeContracts removes every contract row.
func (r *ContractRepository) PurgeContracts(ctx context.Context) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM contratos;`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge contracts: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}
