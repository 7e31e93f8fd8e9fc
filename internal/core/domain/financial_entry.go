package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind tells whether money came in or went out.
type EntryKind string

const (
	Inflow  EntryKind = "entrada"
	Outflow EntryKind = "saida"
)

// IsValid reports whether k is one of the known entry kinds.
func (k EntryKind) IsValid() bool {
	return k == Inflow || k == Outflow
}

// FinancialEntry is a single cash movement. Entries are never edited, only deleted.
type FinancialEntry struct {
	ID        int64
	Kind      EntryKind
	Amount    decimal.Decimal
	Date      time.Time
	Category  string
	Note      string
	CreatedAt time.Time
}

// CategoryTotals holds the inflow and outflow sums for one category.
type CategoryTotals struct {
	Inflow  decimal.Decimal
	Outflow decimal.Decimal
}

// FinancialSummary is the reduction of a set of entries.
type FinancialSummary struct {
	TotalInflow  decimal.Decimal
	TotalOutflow decimal.Decimal
	NetCash      decimal.Decimal
	ByCategory   map[string]CategoryTotals
}
