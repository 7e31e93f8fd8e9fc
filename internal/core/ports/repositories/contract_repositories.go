package repositories

import (
	"context"

	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
)

// ContractReader defines read operations for contracts
type ContractReader interface {
	// FindContractByID retrieves a contract. Returns apperrors.ErrNotFound if absent.
	FindContractByID(ctx context.Context, id int64) (*domain.Contract, error)

	// ListContracts returns the contracts matching filter, most recently uploaded first.
	ListContracts(ctx context.Context, filter domain.ContractFilter) ([]domain.Contract, error)

	// ListContractClients returns the distinct non-empty client names, sorted ascending.
	ListContractClients(ctx context.Context) ([]string, error)
}

// ContractWriter defines write operations for contracts. None of them touch stored files.
type ContractWriter interface {
	// SaveContract persists a new contract and returns its store-assigned ID.
	SaveContract(ctx context.Context, contract domain.Contract) (int64, error)

	// DeleteContract removes the row only. Returns apperrors.ErrNotFound if absent.
	DeleteContract(ctx context.Context, id int64) error

	// PurgeContracts removes every contract row, returning how many were removed.
	PurgeContracts(ctx context.Context) (int64, error)
}

// ContractRepositoryFacade combines all contract-related repository interfaces
type ContractRepositoryFacade interface {
	ContractReader
	ContractWriter
}
