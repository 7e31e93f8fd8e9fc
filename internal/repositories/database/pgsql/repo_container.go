package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/repositories"
)

// NewRepositoryProvider creates a new instance of RepositoryProvider backed by PostgreSQL.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EntryRepo:    newPgxEntryRepository(pool),
		BudgetRepo:   newPgxBudgetRepository(pool),
		ContractRepo: newPgxContractRepository(pool),
		TaskRepo:     newPgxTaskRepository(pool),
	}
}
