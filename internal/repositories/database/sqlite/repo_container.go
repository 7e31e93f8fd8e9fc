package sqlite

import (
	"database/sql"

	portsrepo "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/repositories"
)

// NewRepositoryProvider creates a new instance of RepositoryProvider backed by SQLite.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EntryRepo:    newEntryRepository(db),
		BudgetRepo:   newBudgetRepository(db),
		ContractRepo: newContractRepository(db),
		TaskRepo:     newTaskRepository(db),
	}
}
