package domain

import "time"

// EntryFilter constrains financial entry listings. Bounds are inclusive.
type EntryFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
}

// BudgetFilter constrains budget listings.
type BudgetFilter struct {
	Status string
	Client string
	Text   string
}

// ContractFilter constrains contract listings.
type ContractFilter struct {
	Client        string
	StartDateFrom *time.Time
	EndDateTo     *time.Time
}

// TaskFilter constrains task listings. DateFrom and DateTo are inclusive,
// DateBefore is exclusive.
type TaskFilter struct {
	DateFrom   *time.Time
	DateTo     *time.Time
	DateBefore *time.Time
	Kind       string
	Done       *bool
}
