package repositories

import (
	"context"

	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
)

// EntryReader defines read operations for financial entries
type EntryReader interface {
	// FindEntryByID retrieves a single entry. Returns apperrors.ErrNotFound if absent.
	FindEntryByID(ctx context.Context, id int64) (*domain.FinancialEntry, error)

	// ListEntries returns the entries matching filter, newest date first.
	ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.FinancialEntry, error)
}

// EntryWriter defines write operations for financial entries
type EntryWriter interface {
	// SaveEntry persists a new entry and returns its store-assigned ID.
	SaveEntry(ctx context.Context, entry domain.FinancialEntry) (int64, error)

	// DeleteEntry removes an entry. Returns apperrors.ErrNotFound if absent.
	DeleteEntry(ctx context.Context, id int64) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
