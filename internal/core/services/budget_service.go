package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/apperrors"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	portsrepo "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/repositories"
	portssvc "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/services"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/dto"
)

const msgBudgetNotFound = "Orçamento não encontrado"

type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
}

// NewBudgetService creates the budget service.
func NewBudgetService(repo portsrepo.BudgetRepositoryFacade, opts ...Option) portssvc.BudgetSvcFacade {
	return &budgetService{BaseService: newBaseService(opts), budgetRepo: repo}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// composeBudget checks everything the stored budget depends on. No write
// happens unless every line item is valid.
func (s *budgetService) composeBudget(req dto.CreateBudgetRequest) (domain.Budget, error) {
	if len(req.Servicos) == 0 {
		return domain.Budget{}, apperrors.NewValidationError("Pelo menos um serviço é obrigatório")
	}

	var due *time.Time
	if req.PrazoEntrega != "" {
		d, err := domain.ParseDate(req.PrazoEntrega)
		if err != nil {
			return domain.Budget{}, apperrors.NewValidationError("Formato de data inválido para prazo de entrega")
		}
		due = &d
	}

	items := make([]domain.BudgetLineItem, 0, len(req.Servicos))
	for _, it := range req.Servicos {
		if it.Nome == "" {
			return domain.Budget{}, apperrors.NewValidationError("Nome do serviço é obrigatório")
		}
		quantity := int64(1)
		if it.Quantidade != nil {
			quantity = *it.Quantidade
		}
		if quantity <= 0 {
			return domain.Budget{}, apperrors.NewValidationError("Quantidade deve ser maior que zero")
		}
		if !it.PrecoUnitario.IsPositive() {
			return domain.Budget{}, apperrors.NewValidationError("Preço unitário deve ser maior que zero")
		}
		items = append(items, domain.BudgetLineItem{Name: it.Nome, Quantity: quantity, UnitPrice: it.PrecoUnitario})
	}

	return domain.Budget{
		Title:        req.Titulo,
		Client:       req.Cliente,
		Description:  req.Descricao,
		PaymentTerms: req.FormaPagamento,
		DueDate:      due,
		Status:       domain.BudgetPending,
		CreatedAt:    s.Now(),
		Items:        items,
	}, nil
}

func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	budget, err := s.composeBudget(req)
	if err != nil {
		return nil, err
	}

	saved, err := s.budgetRepo.SaveBudget(ctx, budget)
	if err != nil {
		s.LogError(ctx, err, "Failed to save budget",
			slog.String("cliente", req.Cliente),
			slog.Int("items", len(budget.Items)))
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	s.LogInfo(ctx, "Budget created",
		slog.Int64("budget_id", saved.ID),
		slog.Int("items", len(saved.Items)),
		slog.String("total", saved.Total().String()))
	return saved, nil
}

func (s *budgetService) GetBudget(ctx context.Context, id int64) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(msgBudgetNotFound)
		}
		s.LogError(ctx, err, "Failed to find budget", slog.Int64("budget_id", id))
		return nil, fmt.Errorf("failed to get budget %d: %w", id, err)
	}
	return budget, nil
}

func (s *budgetService) ListBudgets(ctx context.Context, filter domain.BudgetFilter) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets")
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	if budgets == nil {
		return []domain.Budget{}, nil
	}
	return budgets, nil
}

func (s *budgetService) ListBudgetClients(ctx context.Context) ([]string, error) {
	clients, err := s.budgetRepo.ListBudgetClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budget clients")
		return nil, fmt.Errorf("failed to list budget clients: %w", err)
	}
	if clients == nil {
		return []string{}, nil
	}
	return clients, nil
}

func (s *budgetService) UpdateBudgetStatus(ctx context.Context, id int64, status string) (*domain.Budget, error) {
	next := domain.BudgetStatus(status)
	if !next.IsValid() {
		return nil, apperrors.NewValidationError("Status inválido")
	}

	if err := s.budgetRepo.UpdateBudgetStatus(ctx, id, next); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(msgBudgetNotFound)
		}
		s.LogError(ctx, err, "Failed to update budget status",
			slog.Int64("budget_id", id),
			slog.String("status", status))
		return nil, fmt.Errorf("failed to update budget %d: %w", id, err)
	}

	s.LogInfo(ctx, "Budget status updated", slog.Int64("budget_id", id), slog.String("status", status))
	return s.GetBudget(ctx, id)
}

func (s *budgetService) DeleteBudget(ctx context.Context, id int64) error {
	if err := s.budgetRepo.DeleteBudget(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(msgBudgetNotFound)
		}
		s.LogError(ctx, err, "Failed to delete budget", slog.Int64("budget_id", id))
		return fmt.Errorf("failed to delete budget %d: %w", id, err)
	}
	s.LogInfo(ctx, "Budget deleted", slog.Int64("budget_id", id))
	return nil
}

func (s *budgetService) PurgeBudgets(ctx context.Context) (int64, error) {
	n, err := s.budgetRepo.PurgeBudgets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to purge budgets")
		return 0, fmt.Errorf("failed to purge budgets: %w", err)
	}
	s.LogInfo(ctx, "Budgets purged", slog.Int64("removed", n))
	return n, nil
}
