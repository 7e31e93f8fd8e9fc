package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract is a signed agreement with its PDF stored on disk.
// Deleting a contract never removes the stored file.
type Contract struct {
	ID               int64
	Title            string
	Client           string
	Amount           decimal.Decimal
	StartDate        time.Time
	EndDate          time.Time
	Notes            string
	OriginalFilename string
	StoredFilePath   string
	UploadedAt       time.Time
}
