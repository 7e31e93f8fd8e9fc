package services

import (
	"context"
	"io"

	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/dto"
)

// ContractUpload is the PDF part of a contract creation request.
type ContractUpload struct {
	Filename string
	Content  io.Reader
}

// ContractReaderSvc defines read operations for contracts
type ContractReaderSvc interface {
	ListContracts(ctx context.Context, filter domain.ContractFilter) ([]domain.Contract, error)
	ListContractClients(ctx context.Context) ([]string, error)

	// GetContractFile returns a contract whose stored file exists on disk.
	// A missing contract or a missing file yields a 404 AppError.
	GetContractFile(ctx context.Context, id int64) (*domain.Contract, error)
}

// ContractWriterSvc defines write operations for contracts
type ContractWriterSvc interface {
	// CreateContract checks the upload, validates the fields, stores the file
	// and then the record. The file is removed again if the record cannot be saved.
	CreateContract(ctx context.Context, req dto.CreateContractRequest, upload ContractUpload) (*domain.Contract, error)

	// DeleteContract removes the record only; the stored file is kept.
	DeleteContract(ctx context.Context, id int64) error

	// PurgeContracts removes every contract record; stored files are kept.
	PurgeContracts(ctx context.Context) (int64, error)
}

// ContractSvcFacade combines all contract-related service interfaces
type ContractSvcFacade interface {
	ContractReaderSvc
	ContractWriterSvc
}
