package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/apperrors"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	portsrepo "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/repositories"
	portssvc "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/services"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/dto"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/platform/filestore"
	"github.com/shopspring/decimal"
)

const (
	msgContractNotFound = "Contrato não encontrado"
	msgFileNotFound     = "Arquivo não encontrado"
)

// ContractFileStore is the part of the upload store the contract service needs.
type ContractFileStore interface {
	CheckName(originalFilename string) error
	ReadUpload(r io.Reader) ([]byte, error)
	Store(data []byte, originalFilename string) (*filestore.StoredFile, error)
	Remove(path string) error
	Exists(path string) bool
}

var _ ContractFileStore = (*filestore.PDFStore)(nil)

type contractService struct {
	BaseService
	contractRepo portsrepo.ContractRepositoryFacade
	files        ContractFileStore
}

// NewContractService creates the contract service. Uploaded PDFs go to files.
func NewContractService(repo portsrepo.ContractRepositoryFacade, files ContractFileStore, opts ...Option) portssvc.ContractSvcFacade {
	return &contractService{BaseService: newBaseService(opts), contractRepo: repo, files: files}
}

var _ portssvc.ContractSvcFacade = (*contractService)(nil)

func (s *contractService) CreateContract(ctx context.Context, req dto.CreateContractRequest, upload portssvc.ContractUpload) (*domain.Contract, error) {
	if err := s.files.CheckName(upload.Filename); err != nil {
		return nil, err
	}
	data, err := s.files.ReadUpload(upload.Content)
	if err != nil {
		return nil, err
	}

	req.Normalize()
	if err := dto.Validate(&req); err != nil {
		return nil, err
	}
	start, err := domain.ParseDate(req.DataInicio)
	if err != nil {
		return nil, apperrors.NewValidationError("Formato de data inválido")
	}
	end, err := domain.ParseDate(req.DataFim)
	if err != nil {
		return nil, apperrors.NewValidationError("Formato de data inválido")
	}
	if !end.After(start) {
		return nil, apperrors.NewValidationError("Data de fim deve ser posterior à data de início")
	}
	amount, err := decimal.NewFromString(req.Valor)
	if err != nil || !amount.IsPositive() {
		return nil, apperrors.NewValidationError("Valor deve ser maior que zero")
	}

	stored, err := s.files.Store(data, upload.Filename)
	if err != nil {
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			s.LogError(ctx, err, "Failed to store contract file", slog.String("filename", upload.Filename))
		}
		return nil, err
	}

	contract := domain.Contract{
		Title:            req.Titulo,
		Client:           req.Cliente,
		Amount:           amount,
		StartDate:        start,
		EndDate:          end,
		Notes:            req.Observacoes,
		OriginalFilename: stored.Name,
		StoredFilePath:   stored.Path,
		UploadedAt:       s.Now(),
	}

	id, err := s.contractRepo.SaveContract(ctx, contract)
	if err != nil {
		s.LogError(ctx, err, "Failed to save contract, removing stored file", slog.String("path", stored.Path))
		if rmErr := s.files.Remove(stored.Path); rmErr != nil {
			s.LogError(ctx, rmErr, "Failed to remove orphaned contract file", slog.String("path", stored.Path))
		}
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}
	contract.ID = id

	s.LogInfo(ctx, "Contract created",
		slog.Int64("contract_id", id),
		slog.String("file", stored.Path),
		slog.Int64("size", stored.Size))
	return &contract, nil
}

func (s *contractService) ListContracts(ctx context.Context, filter domain.ContractFilter) ([]domain.Contract, error) {
	contracts, err := s.contractRepo.ListContracts(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list contracts")
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	if contracts == nil {
		return []domain.Contract{}, nil
	}
	return contracts, nil
}

func (s *contractService) ListContractClients(ctx context.Context) ([]string, error) {
	clients, err := s.contractRepo.ListContractClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list contract clients")
		return nil, fmt.Errorf("failed to list contract clients: %w", err)
	}
	if clients == nil {
		return []string{}, nil
	}
	return clients, nil
}

func (s *contractService) GetContractFile(ctx context.Context, id int64) (*domain.Contract, error) {
	contract, err := s.contractRepo.FindContractByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(msgContractNotFound)
		}
		s.LogError(ctx, err, "Failed to find contract", slog.Int64("contract_id", id))
		return nil, fmt.Errorf("failed to get contract %d: %w", id, err)
	}
	if !s.files.Exists(contract.StoredFilePath) {
		s.LogDebug(ctx, "Contract file missing on disk",
			slog.Int64("contract_id", id),
			slog.String("path", contract.StoredFilePath))
		return nil, apperrors.NewNotFoundError(msgFileNotFound)
	}
	return contract, nil
}

func (s *contractService) DeleteContract(ctx context.Context, id int64) error {
	if err := s.contractRepo.DeleteContract(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(msgContractNotFound)
		}
		s.LogError(ctx, err, "Failed to delete contract", slog.Int64("contract_id", id))
		return fmt.Errorf("failed to delete contract %d: %w", id, err)
	}
	s.LogInfo(ctx, "Contract deleted", slog.Int64("contract_id", id))
	return nil
}

func (s *contractService) PurgeContracts(ctx context.Context) (int64, error) {
	n, err := s.contractRepo.PurgeContracts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to purge contracts")
		return 0, fmt.Errorf("failed to purge contracts: %w", err)
	}
	s.LogInfo(ctx, "Contracts purged", slog.Int64("removed", n))
	return n, nil
}
