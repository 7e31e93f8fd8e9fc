package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry mirrors a row of the lancamentos table.
type Entry struct {
	ID          int64
	Kind        string
	Amount      decimal.Decimal
	Date        time.Time
	Category    string
	Description string
	CreatedAt   time.Time
}
