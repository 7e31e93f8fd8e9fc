package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/apperrors"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	portsrepo "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/repositories"
	portssvc "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/services"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/dto"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/utils/aggregation"
)

const msgEntryNotFound = "Lançamento não encontrado"

type entryService struct {
	BaseService
	entryRepo portsrepo.EntryRepositoryFacade
}

// NewEntryService creates the financial entry service.
func NewEntryService(repo portsrepo.EntryRepositoryFacade, opts ...Option) portssvc.EntrySvcFacade {
	return &entryService{BaseService: newBaseService(opts), entryRepo: repo}
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

func (s *entryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.FinancialEntry, error) {
	kind := domain.EntryKind(req.Tipo)
	if !kind.IsValid() {
		return nil, apperrors.NewValidationError(`Tipo deve ser "entrada" ou "saida"`)
	}
	date, err := domain.ParseDate(req.Data)
	if err != nil {
		return nil, apperrors.NewValidationError("Formato de data inválido")
	}

	entry := domain.FinancialEntry{
		Kind:      kind,
		Amount:    req.Valor,
		Date:      date,
		Category:  req.Categoria,
		Note:      req.Descricao,
		CreatedAt: s.Now(),
	}

	id, err := s.entryRepo.SaveEntry(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to save entry", slog.String("tipo", req.Tipo))
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}
	entry.ID = id

	s.LogInfo(ctx, "Entry created", slog.Int64("entry_id", id), slog.String("tipo", req.Tipo))
	return &entry, nil
}

func (s *entryService) DeleteEntry(ctx context.Context, id int64) error {
	if err := s.entryRepo.DeleteEntry(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(msgEntryNotFound)
		}
		s.LogError(ctx, err, "Failed to delete entry", slog.Int64("entry_id", id))
		return fmt.Errorf("failed to delete entry %d: %w", id, err)
	}
	s.LogInfo(ctx, "Entry deleted", slog.Int64("entry_id", id))
	return nil
}

func (s *entryService) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.FinancialEntry, error) {
	entries, err := s.entryRepo.ListEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries")
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	if entries == nil {
		return []domain.FinancialEntry{}, nil
	}
	return entries, nil
}

func (s *entryService) SummarizeEntries(ctx context.Context, filter domain.EntryFilter) (domain.FinancialSummary, error) {
	entries, err := s.ListEntries(ctx, filter)
	if err != nil {
		return domain.FinancialSummary{}, err
	}
	return aggregation.SummarizeEntries(entries), nil
}
