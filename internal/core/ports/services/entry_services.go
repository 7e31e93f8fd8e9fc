package services

import (
	"context"

	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/dto"
)

// EntryReaderSvc defines read operations for financial entries
type EntryReaderSvc interface {
	// ListEntries returns the entries matching filter, newest date first.
	ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.FinancialEntry, error)

	// SummarizeEntries totals the entries matching filter.
	SummarizeEntries(ctx context.Context, filter domain.EntryFilter) (domain.FinancialSummary, error)
}

// EntryWriterSvc defines write operations for financial entries
type EntryWriterSvc interface {
	// CreateEntry stores a validated entry.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.FinancialEntry, error)

	// DeleteEntry removes an entry. A missing entry yields a 404 AppError.
	DeleteEntry(ctx context.Context, id int64) error
}

// EntrySvcFacade combines all entry-related service interfaces
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
}
