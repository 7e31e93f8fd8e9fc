package mapping

import (
	"time"

	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/models"
)

// ToModelBudget converts a domain Budget header to a model Budget
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		ID:           d.ID,
		Title:        d.Title,
		Client:       d.Client,
		Description:  d.Description,
		PaymentTerms: d.PaymentTerms,
		DueDate:      d.DueDate,
		Status:       string(d.Status),
		CreatedAt:    d.CreatedAt,
	}
}

// ToModelBudgetItem converts a domain BudgetLineItem to a model BudgetItem
func ToModelBudgetItem(d domain.BudgetLineItem) models.BudgetItem {
	return models.BudgetItem{
		ID:        d.ID,
		BudgetID:  d.BudgetID,
		Name:      d.Name,
		Quantity:  d.Quantity,
		UnitPrice: d.UnitPrice,
	}
}

// ToDomainBudget converts a model Budget and its items to a domain Budget
func ToDomainBudget(m models.Budget, items []models.BudgetItem) domain.Budget {
	var due *time.Time
	if m.DueDate != nil {
		d := m.DueDate.UTC()
		due = &d
	}
	b := domain.Budget{
		ID:           m.ID,
		Title:        m.Title,
		Client:       m.Client,
		Description:  m.Description,
		PaymentTerms: m.PaymentTerms,
		DueDate:      due,
		Status:       domain.BudgetStatus(m.Status),
		CreatedAt:    m.CreatedAt.UTC(),
		Items:        make([]domain.BudgetLineItem, len(items)),
	}
	for i, it := range items {
		b.Items[i] = ToDomainBudgetItem(it)
	}
	return b
}

// ToDomainBudgetItem converts a model BudgetItem to a domain BudgetLineItem
func ToDomainBudgetItem(m models.BudgetItem) domain.BudgetLineItem {
	return domain.BudgetLineItem{
		ID:        m.ID,
		BudgetID:  m.BudgetID,
		Name:      m.Name,
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
	}
}
