package mapping

import (
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/models"
)

// ToModelEntry converts a domain FinancialEntry to a model Entry
func ToModelEntry(d domain.FinancialEntry) models.Entry {
	return models.Entry{
		ID:          d.ID,
		Kind:        string(d.Kind),
		Amount:      d.Amount,
		Date:        d.Date,
		Category:    d.Category,
		Description: d.Note,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainEntry converts a model Entry to a domain FinancialEntry
func ToDomainEntry(m models.Entry) domain.FinancialEntry {
	return domain.FinancialEntry{
		ID:        m.ID,
		Kind:      domain.EntryKind(m.Kind),
		Amount:    m.Amount,
		Date:      m.Date.UTC(),
		Category:  m.Category,
		Note:      m.Description,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

// ToDomainEntrySlice converts a slice of model Entries to domain FinancialEntries
func ToDomainEntrySlice(ms []models.Entry) []domain.FinancialEntry {
	ds := make([]domain.FinancialEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEntry(m)
	}
	return ds
}
