package dto

import (
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest is the body of POST /lancamentos. Date format is
// checked by the service after the required fields.
type CreateEntryRequest struct {
	Tipo      string          `json:"tipo" binding:"oneof=entrada saida"`
	Valor     decimal.Decimal `json:"valor" binding:"positive"`
	Data      string          `json:"data" binding:"notblank"`
	Categoria string          `json:"categoria" binding:"notblank"`
	Descricao string          `json:"descricao"`
}

func (r *CreateEntryRequest) Normalize() {
	trim(&r.Tipo, &r.Data, &r.Categoria, &r.Descricao)
}

func init() {
	registerMessages(map[string]string{
		"CreateEntryRequest.Tipo":      `Tipo deve ser "entrada" ou "saida"`,
		"CreateEntryRequest.Valor":     "Valor deve ser maior que zero",
		"CreateEntryRequest.Data":      "Data é obrigatória",
		"CreateEntryRequest.Categoria": "Categoria é obrigatória",
	})
}

// EntryResponse is the wire form of a financial entry.
type EntryResponse struct {
	ID          int64           `json:"id"`
	Tipo        string          `json:"tipo"`
	Valor       decimal.Decimal `json:"valor"`
	Data        string          `json:"data"`
	Categoria   string          `json:"categoria"`
	Descricao   string          `json:"descricao"`
	DataCriacao string          `json:"data_criacao"`
}

// ToEntryResponse converts a domain.FinancialEntry to EntryResponse DTO
func ToEntryResponse(e *domain.FinancialEntry) EntryResponse {
	return EntryResponse{
		ID:          e.ID,
		Tipo:        string(e.Kind),
		Valor:       e.Amount,
		Data:        e.Date.Format(domain.DateLayout),
		Categoria:   e.Category,
		Descricao:   e.Note,
		DataCriacao: formatTimestamp(e.CreatedAt),
	}
}

// ListEntriesResponse wraps the list of entries.
type ListEntriesResponse struct {
	Lancamentos []EntryResponse `json:"lancamentos"`
}

// ToListEntriesResponse converts a slice of domain.FinancialEntry to ListEntriesResponse DTO
func ToListEntriesResponse(entries []domain.FinancialEntry) ListEntriesResponse {
	res := make([]EntryResponse, len(entries))
	for i := range entries {
		res[i] = ToEntryResponse(&entries[i])
	}
	return ListEntriesResponse{Lancamentos: res}
}

// CreateEntryResponse is returned with 201 after an entry is stored.
type CreateEntryResponse struct {
	Success    bool          `json:"success"`
	Message    string        `json:"message"`
	Lancamento EntryResponse `json:"lancamento"`
}

// CategoryTotalsResponse holds the per-kind sums of one category.
type CategoryTotalsResponse struct {
	Entrada decimal.Decimal `json:"entrada"`
	Saida   decimal.Decimal `json:"saida"`
}

// SummaryResponse is the body of GET /lancamentos/resumo.
type SummaryResponse struct {
	TotalEntradas decimal.Decimal                   `json:"total_entradas"`
	TotalSaidas   decimal.Decimal                   `json:"total_saidas"`
	TotalCaixa    decimal.Decimal                   `json:"total_caixa"`
	Categorias    map[string]CategoryTotalsResponse `json:"categorias"`
}

// ToSummaryResponse converts a domain.FinancialSummary to SummaryResponse DTO
func ToSummaryResponse(s domain.FinancialSummary) SummaryResponse {
	cats := make(map[string]CategoryTotalsResponse, len(s.ByCategory))
	for name, t := range s.ByCategory {
		cats[name] = CategoryTotalsResponse{Entrada: t.Inflow, Saida: t.Outflow}
	}
	return SummaryResponse{
		TotalEntradas: s.TotalInflow,
		TotalSaidas:   s.TotalOutflow,
		TotalCaixa:    s.NetCash,
		Categorias:    cats,
	}
}
