package mapping

import (
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/models"
)

// ToModelContract converts a domain Contract to a model Contract
func ToModelContract(d domain.Contract) models.Contract {
	return models.Contract{
		ID:         d.ID,
		Title:      d.Title,
		Client:     d.Client,
		Amount:     d.Amount,
		StartDate:  d.StartDate,
		EndDate:    d.EndDate,
		Notes:      d.Notes,
		FileName:   d.OriginalFilename,
		FilePath:   d.StoredFilePath,
		UploadedAt: d.UploadedAt,
	}
}

// ToDomainContract converts a model Contract to a domain Contract
func ToDomainContract(m models.Contract) domain.Contract {
	return domain.Contract{
		ID:               m.ID,
		Title:            m.Title,
		Client:           m.Client,
		Amount:           m.Amount,
		StartDate:        m.StartDate.UTC(),
		EndDate:          m.EndDate.UTC(),
		Notes:            m.Notes,
		OriginalFilename: m.FileName,
		StoredFilePath:   m.FilePath,
		UploadedAt:       m.UploadedAt.UTC(),
	}
}

// ToDomainContractSlice converts a slice of model Contracts to domain Contracts
func ToDomainContractSlice(ms []models.Contract) []domain.Contract {
	ds := make([]domain.Contract, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainContract(m)
	}
	return ds
}
