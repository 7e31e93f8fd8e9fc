package repositories

import (
	"context"

	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
)

// BudgetReader defines read operations for budgets. Every returned budget
// carries its line items.
type BudgetReader interface {
	// FindBudgetByID retrieves a budget and its items. Returns apperrors.ErrNotFound if absent.
	FindBudgetByID(ctx context.Context, id int64) (*domain.Budget, error)

	// ListBudgets returns the budgets matching filter, most recently created first.
	ListBudgets(ctx context.Context, filter domain.BudgetFilter) ([]domain.Budget, error)

	// ListBudgetClients returns the distinct non-empty client names, sorted ascending.
	ListBudgetClients(ctx context.Context) ([]string, error)
}

// BudgetWriter defines write operations for budgets
type BudgetWriter interface {
	// SaveBudget persists the header and all items in one transaction and
	// returns the budget with store-assigned IDs. Nothing is kept on failure.
	SaveBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error)

	// UpdateBudgetStatus changes the status only. Returns apperrors.ErrNotFound if absent.
	UpdateBudgetStatus(ctx context.Context, id int64, status domain.BudgetStatus) error

	// DeleteBudget removes a budget and its items atomically. Returns apperrors.ErrNotFound if absent.
	DeleteBudget(ctx context.Context, id int64) error

	// PurgeBudgets removes every budget and item, returning the number of budgets removed.
	PurgeBudgets(ctx context.Context) (int64, error)
}

// BudgetRepositoryFacade combines all budget-related repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
