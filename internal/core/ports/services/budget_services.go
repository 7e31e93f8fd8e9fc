package services

import (
	"context"

	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/dto"
)

// BudgetReaderSvc defines read operations for budgets
type BudgetReaderSvc interface {
	ListBudgets(ctx context.Context, filter domain.BudgetFilter) ([]domain.Budget, error)
	GetBudget(ctx context.Context, id int64) (*domain.Budget, error)
	ListBudgetClients(ctx context.Context) ([]string, error)
}

// BudgetWriterSvc defines write operations for budgets
type BudgetWriterSvc interface {
	// CreateBudget validates the header and every line item before anything
	// is written, then stores them atomically.
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error)

	// UpdateBudgetStatus rejects unknown statuses before looking the budget up
	// and returns the updated budget.
	UpdateBudgetStatus(ctx context.Context, id int64, status string) (*domain.Budget, error)

	DeleteBudget(ctx context.Context, id int64) error

	// PurgeBudgets removes every budget and line item.
	PurgeBudgets(ctx context.Context) (int64, error)
}

// BudgetSvcFacade combines all budget-related service interfaces
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}
