package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract mirrors a row of the contratos table.
type Contract struct {
	ID         int64
	Title      string
	Client     string
	Amount     decimal.Decimal
	StartDate  time.Time
	EndDate    time.Time
	Notes      string
	FileName   string
	FilePath   string
	UploadedAt time.Time
}
