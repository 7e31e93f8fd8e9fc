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

const contractColumns = "id, titulo, cliente, valor, data_inicio, data_fim, observacoes, nome_arquivo, caminho_arquivo, data_upload"

// PgxContractRepository stores contract metadata in the contratos table.
// The PDF itself lives in the file store.
type PgxContractRepository struct {
	BaseRepository
}

func newPgxContractRepository(pool *pgxpool.Pool) *PgxContractRepository {
	return &PgxContractRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ContractRepositoryFacade = (*PgxContractRepository)(nil)

func scanContract(row pgx.Row) (models.Contract, error) {
	var c models.Contract
	err := row.Scan(&c.ID, &c.Title, &c.Client, &c.Amount, &c.StartDate, &c.EndDate, &c.Notes, &c.FileName, &c.FilePath, &c.UploadedAt)
	return c, err
}

// SaveContract inserts a new contract and returns its ID.
func (r *PgxContractRepository) SaveContract(ctx context.Context, contract domain.Contract) (int64, error) {
	m := mapping.ToModelContract(contract)
	query := `
		INSERT INTO contratos (titulo, cliente, valor, data_inicio, data_fim, observacoes, nome_arquivo, caminho_arquivo, data_upload)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.Title, m.Client, m.Amount, m.StartDate, m.EndDate, m.Notes, m.FileName, m.FilePath, m.UploadedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert contract: %w", err)
	}
	return id, nil
}

// FindContractByID retrieves a contract by its ID.
func (r *PgxContractRepository) FindContractByID(ctx context.Context, id int64) (*domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contratos WHERE id = $1;`
	m, err := scanContract(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contract %d: %w", id, err)
	}
	d := mapping.ToDomainContract(m)
	return &d, nil
}

// ListContracts returns the contracts matching filter, most recent upload first.
func (r *PgxContractRepository) ListContracts(ctx context.Context, filter domain.ContractFilter) ([]domain.Contract, error) {
	where := sqlfilter.Contracts(sqlfilter.Postgres, filter)
	query := `SELECT ` + contractColumns + ` FROM contratos` + where.Where() + sqlfilter.ContractOrder

	rows, err := r.Pool.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to query contracts: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Contract, error) {
		return scanContract(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan contracts: %w", err)
	}
	return mapping.ToDomainContractSlice(ms), nil
}

// ListContractClients returns the distinct non-empty clients, sorted.
func (r *PgxContractRepository) ListContractClients(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT DISTINCT cliente FROM contratos WHERE cliente <> '';`)
	if err != nil {
		return nil, fmt.Errorf("failed to query contract clients: %w", err)
	}
	defer rows.Close()

	clients, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan contract clients: %w", err)
	}
	slices.Sort(clients)
	return clients, nil
}

// DeleteContract removes a contract row.
func (r *PgxContractRepository) DeleteContract(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM contratos WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contract %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// PurgeContracts removes every contract row.
func (r *PgxContractRepository) PurgeContracts(ctx context.Context) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM contratos;`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge contracts: %w", err)
	}
	return tag.RowsAffected(), nil
}
