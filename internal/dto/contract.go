package dto

import (
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateContractRequest holds the text fields of the multipart POST /contratos.
// It is validated by the contract service after the file checks.
type CreateContractRequest struct {
	Titulo      string `form:"titulo" binding:"notblank"`
	Cliente     string `form:"cliente" binding:"notblank"`
	Valor       string `form:"valor" binding:"positive"`
	DataInicio  string `form:"data_inicio" binding:"notblank"`
	DataFim     string `form:"data_fim" binding:"notblank"`
	Observacoes string `form:"observacoes"`
}

func (r *CreateContractRequest) Normalize() {
	trim(&r.Titulo, &r.Cliente, &r.Valor, &r.DataInicio, &r.DataFim, &r.Observacoes)
}

func init() {
	registerMessages(map[string]string{
		"CreateContractRequest.Titulo":     "Título é obrigatório",
		"CreateContractRequest.Cliente":    "Cliente é obrigatório",
		"CreateContractRequest.Valor":      "Valor deve ser maior que zero",
		"CreateContractRequest.DataInicio": "Data de início é obrigatória",
		"CreateContractRequest.DataFim":    "Data de fim é obrigatória",
	})
}

// ContractResponse is the wire form of a contract. The stored file path is never exposed.
type ContractResponse struct {
	ID          int64           `json:"id"`
	Titulo      string          `json:"titulo"`
	Cliente     string          `json:"cliente"`
	Valor       decimal.Decimal `json:"valor"`
	DataInicio  string          `json:"data_inicio"`
	DataFim     string          `json:"data_fim"`
	Observacoes string          `json:"observacoes"`
	NomeArquivo string          `json:"nome_arquivo"`
	DataUpload  string          `json:"data_upload"`
}

// ToContractResponse converts a domain.Contract to ContractResponse DTO
func ToContractResponse(c *domain.Contract) ContractResponse {
	return ContractResponse{
		ID:          c.ID,
		Titulo:      c.Title,
		Cliente:     c.Client,
		Valor:       c.Amount,
		DataInicio:  c.StartDate.Format(domain.DateLayout),
		DataFim:     c.EndDate.Format(domain.DateLayout),
		Observacoes: c.Notes,
		NomeArquivo: c.OriginalFilename,
		DataUpload:  formatTimestamp(c.UploadedAt),
	}
}

// ListContractsResponse wraps the list of contracts.
type ListContractsResponse struct {
	Contratos []ContractResponse `json:"contratos"`
}

// ToListContractsResponse converts a slice of domain.Contract to ListContractsResponse DTO
func ToListContractsResponse(contracts []domain.Contract) ListContractsResponse {
	res := make([]ContractResponse, len(contracts))
	for i := range contracts {
		res[i] = ToContractResponse(&contracts[i])
	}
	return ListContractsResponse{Contratos: res}
}

// CreateContractResponse is returned with 201 after a contract is stored.
type CreateContractResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Contrato ContractResponse `json:"contrato"`
}
