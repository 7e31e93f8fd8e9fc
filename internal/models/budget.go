package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget mirrors a row of the orcamentos table.
type Budget struct {
	ID           int64
	Title        string
	Client       string
	Description  string
	PaymentTerms string
	DueDate      *time.Time
	Status       string
	CreatedAt    time.Time
}

// BudgetItem mirrors a row of the servicos_orcamento table.
type BudgetItem struct {
	ID        int64
	BudgetID  int64
	Name      string
	Quantity  int64
	UnitPrice decimal.Decimal
}
