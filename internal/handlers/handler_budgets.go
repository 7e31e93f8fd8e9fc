package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/services"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/dto"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/middleware"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/utils/filters"
)

const msgBudgetNotFound = "Orçamento não encontrado"

// budgetHandler handles HTTP requests related to budgets.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

// registerBudgetRoutes registers routes related to budgets.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/orcamentos")
	{
		budgets.GET("", h.listBudgets)
		budgets.POST("", h.createBudget)
		budgets.GET("/clientes", h.listClients)
		budgets.GET("/:id", h.getBudget)
		budgets.PUT("/:id/status", h.updateStatus)
		budgets.DELETE("/:id", h.deleteBudget)
	}
}

// listBudgets godoc
// @Summary List budgets
// @Description Lists budgets newest first with their services and computed totals
// @Tags orcamentos
// @Produce json
// @Param status query string false "Exact status"
// @Param cliente query string false "Client substring"
// @Param texto query string false "Substring of title, client or description"
// @Success 200 {object} dto.ListBudgetsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /orcamentos [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	budgets, err := h.budgetService.ListBudgets(c.Request.Context(), filters.ParseBudgetFilter(c.Request.URL.Query()))
	if err != nil {
		writeError(c, logger, err, "Failed to list budgets")
		return
	}

	c.JSON(http.StatusOK, dto.ToListBudgetsResponse(budgets))
}

// createBudget godoc
// @Summary Create a budget
// @Description Creates a budget and all of its services atomically
// @Tags orcamentos
// @Accept json
// @Produce json
// @Param budget body dto.CreateBudgetRequest true "Budget"
// @Success 201 {object} dto.BudgetMutationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orcamentos [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBudgetRequest
	if err := dto.BindJSON(c, &req); err != nil {
		writeError(c, logger, err, "Invalid budget request")
		return
	}

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), req)
	if err != nil {
		writeError(c, logger, err, "Failed to create budget")
		return
	}

	c.JSON(http.StatusCreated, dto.BudgetMutationResponse{
		Success:   true,
		Message:   "Orçamento criado com sucesso",
		Orcamento: dto.ToBudgetResponse(budget),
	})
}

// getBudget godoc
// @Summary Get a budget
// @Tags orcamentos
// @Produce json
// @Param id path int true "Budget ID"
// @Success 200 {object} dto.GetBudgetResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /orcamentos/{id} [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseID(c, "id", msgBudgetNotFound)
	if !ok {
		return
	}

	budget, err := h.budgetService.GetBudget(c.Request.Context(), id)
	if err != nil {
		writeError(c, logger, err, "Failed to get budget")
		return
	}

	c.JSON(http.StatusOK, dto.GetBudgetResponse{Orcamento: dto.ToBudgetResponse(budget)})
}

// updateStatus godoc
// @Summary Change a budget status
// @Tags orcamentos
// @Accept json
// @Produce json
// @Param id path int true "Budget ID"
// @Param status body dto.UpdateBudgetStatusRequest true "pendente, enviado, aceito or rejeitado"
// @Success 200 {object} dto.BudgetMutationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /orcamentos/{id}/status [put]
func (h *budgetHandler) updateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseID(c, "id", msgBudgetNotFound)
	if !ok {
		return
	}

	var req dto.UpdateBudgetStatusRequest
	if err := dto.BindJSON(c, &req); err != nil {
		writeError(c, logger, err, "Invalid status request")
		return
	}

	budget, err := h.budgetService.UpdateBudgetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		writeError(c, logger, err, "Failed to update budget status")
		return
	}

	c.JSON(http.StatusOK, dto.BudgetMutationResponse{
		Success:   true,
		Message:   "Status atualizado com sucesso",
		Orcamento: dto.ToBudgetResponse(budget),
	})
}

// deleteBudget godoc
// @Summary Delete a budget
// @Description Deletes a budget together with its services
// @Tags orcamentos
// @Produce json
// @Param id path int true "Budget ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /orcamentos/{id} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseID(c, "id", msgBudgetNotFound)
	if !ok {
		return
	}

	if err := h.budgetService.DeleteBudget(c.Request.Context(), id); err != nil {
		writeError(c, logger, err, "Failed to delete budget")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Orçamento removido com sucesso"})
}

// listClients godoc
// @Summary Distinct budget clients
// @Tags orcamentos
// @Produce json
// @Success 200 {object} dto.ClientsResponse
// @Router /orcamentos/clientes [get]
func (h *budgetHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	clients, err := h.budgetService.ListBudgetClients(c.Request.Context())
	if err != nil {
		writeError(c, logger, err, "Failed to list budget clients")
		return
	}

	c.JSON(http.StatusOK, dto.ClientsResponse{Clientes: clients})
}
