package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetStatus is the lifecycle state of a budget.
type BudgetStatus string

const (
	BudgetPending  BudgetStatus = "pendente"
	BudgetSent     BudgetStatus = "enviado"
	BudgetAccepted BudgetStatus = "aceito"
	BudgetRejected BudgetStatus = "rejeitado"
)

// IsValid reports whether s is one of the four known statuses.
func (s BudgetStatus) IsValid() bool {
	switch s {
	case BudgetPending, BudgetSent, BudgetAccepted, BudgetRejected:
		return true
	}
	return false
}

// Budget is a quote sent to a client. Its total is always derived from Items.
type Budget struct {
	ID           int64
	Title        string
	Client       string
	Description  string
	PaymentTerms string
	DueDate      *time.Time
	Status       BudgetStatus
	CreatedAt    time.Time
	Items        []BudgetLineItem
}

// Total returns the sum of quantity times unit price over all items.
func (b Budget) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range b.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// BudgetLineItem is a service line owned by exactly one budget.
type BudgetLineItem struct {
	ID        int64
	BudgetID  int64
	Name      string
	Quantity  int64
	UnitPrice decimal.Decimal
}

// Subtotal returns quantity times unit price.
func (i BudgetLineItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}
