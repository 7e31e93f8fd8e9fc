package dto

import (
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BudgetItemRequest is one service line of a new budget. Quantity defaults
// to 1 when omitted; the budget service validates every line.
type BudgetItemRequest struct {
	Nome          string          `json:"nome"`
	Quantidade    *int64          `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
}

// CreateBudgetRequest is the body of POST /orcamentos.
type CreateBudgetRequest struct {
	Titulo         string              `json:"titulo" binding:"notblank"`
	Cliente        string              `json:"cliente" binding:"notblank"`
	Descricao      string              `json:"descricao"`
	FormaPagamento string              `json:"forma_pagamento"`
	Servicos       []BudgetItemRequest `json:"servicos" binding:"min=1"`
	PrazoEntrega   string              `json:"prazo_entrega" binding:"omitempty,isodate"`
}

func (r *CreateBudgetRequest) Normalize() {
	trim(&r.Titulo, &r.Cliente, &r.Descricao, &r.FormaPagamento, &r.PrazoEntrega)
	for i := range r.Servicos {
		trim(&r.Servicos[i].Nome)
	}
}

// UpdateBudgetStatusRequest is the body of PUT /orcamentos/{id}/status.
// The status value itself is checked by the service.
type UpdateBudgetStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateBudgetStatusRequest) Normalize() {
	trim(&r.Status)
}

func init() {
	registerMessages(map[string]string{
		"CreateBudgetRequest.Titulo":       "Título é obrigatório",
		"CreateBudgetRequest.Cliente":      "Cliente é obrigatório",
		"CreateBudgetRequest.Servicos":     "Pelo menos um serviço é obrigatório",
		"CreateBudgetRequest.PrazoEntrega": "Formato de data inválido para prazo de entrega",
	})
}

// BudgetItemResponse is the wire form of a budget line item.
type BudgetItemResponse struct {
	ID            int64           `json:"id"`
	Nome          string          `json:"nome"`
	Quantidade    int64           `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// BudgetResponse is the wire form of a budget with its computed total.
type BudgetResponse struct {
	ID             int64                `json:"id"`
	Titulo         string               `json:"titulo"`
	Cliente        string               `json:"cliente"`
	Descricao      string               `json:"descricao"`
	FormaPagamento string               `json:"forma_pagamento"`
	PrazoEntrega   *string              `json:"prazo_entrega"`
	Status         string               `json:"status"`
	DataCriacao    string               `json:"data_criacao"`
	ValorTotal     decimal.Decimal      `json:"valor_total"`
	Servicos       []BudgetItemResponse `json:"servicos"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse DTO
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	var due *string
	if b.DueDate != nil {
		s := b.DueDate.Format(domain.DateLayout)
		due = &s
	}
	items := make([]BudgetItemResponse, len(b.Items))
	for i, it := range b.Items {
		items[i] = BudgetItemResponse{
			ID:            it.ID,
			Nome:          it.Name,
			Quantidade:    it.Quantity,
			PrecoUnitario: it.UnitPrice,
			Subtotal:      it.Subtotal(),
		}
	}
	return BudgetResponse{
		ID:             b.ID,
		Titulo:         b.Title,
		Cliente:        b.Client,
		Descricao:      b.Description,
		FormaPagamento: b.PaymentTerms,
		PrazoEntrega:   due,
		Status:         string(b.Status),
		DataCriacao:    formatTimestamp(b.CreatedAt),
		ValorTotal:     b.Total(),
		Servicos:       items,
	}
}

// ListBudgetsResponse wraps the list of budgets.
type ListBudgetsResponse struct {
	Orcamentos []BudgetResponse `json:"orcamentos"`
}

// ToListBudgetsResponse converts a slice of domain.Budget to ListBudgetsResponse DTO
func ToListBudgetsResponse(budgets []domain.Budget) ListBudgetsResponse {
	res := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		res[i] = ToBudgetResponse(&budgets[i])
	}
	return ListBudgetsResponse{Orcamentos: res}
}

// GetBudgetResponse wraps a single budget.
type GetBudgetResponse struct {
	Orcamento BudgetResponse `json:"orcamento"`
}

// BudgetMutationResponse is returned after a budget is created or its status changes.
type BudgetMutationResponse struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	Orcamento BudgetResponse `json:"orcamento"`
}
