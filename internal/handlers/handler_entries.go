package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/services"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/dto"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/middleware"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/utils/filters"
)

// entryHandler handles HTTP requests related to financial entries.
type entryHandler struct {
	entryService portssvc.EntrySvcFacade
}

func newEntryHandler(es portssvc.EntrySvcFacade) *entryHandler {
	return &entryHandler{entryService: es}
}

// registerEntryRoutes registers routes related to financial entries.
func registerEntryRoutes(rg *gin.RouterGroup, entryService portssvc.EntrySvcFacade) {
	h := newEntryHandler(entryService)

	entries := rg.Group("/lancamentos")
	{
		entries.GET("", h.listEntries)
		entries.POST("", h.createEntry)
		entries.GET("/resumo", h.summary)
		entries.DELETE("/:id", h.deleteEntry)
	}
}

// listEntries godoc
// @Summary List financial entries
// @Description Lists entries newest first, optionally bounded by an inclusive date range
// @Tags lancamentos
// @Produce json
// @Param data_inicio query string false "Lower bound (YYYY-MM-DD)"
// @Param data_fim query string false "Upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /lancamentos [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, err := filters.ParseEntryFilter(c.Request.URL.Query())
	if err != nil {
		writeError(c, logger, err, "Invalid entry filter")
		return
	}

	entries, err := h.entryService.ListEntries(c.Request.Context(), filter)
	if err != nil {
		writeError(c, logger, err, "Failed to list entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToListEntriesResponse(entries))
}

// createEntry godoc
// @Summary Create a financial entry
// @Tags lancamentos
// @Accept json
// @Produce json
// @Param entry body dto.CreateEntryRequest true "Entry"
// @Success 201 {object} dto.CreateEntryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /lancamentos [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEntryRequest
	if err := dto.BindJSON(c, &req); err != nil {
		writeError(c, logger, err, "Invalid entry request")
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		writeError(c, logger, err, "Failed to create entry")
		return
	}

	c.JSON(http.StatusCreated, dto.CreateEntryResponse{
		Success:    true,
		Message:    "Lançamento criado com sucesso",
		Lancamento: dto.ToEntryResponse(entry),
	})
}

// deleteEntry godoc
// @Summary Delete a financial entry
// @Tags lancamentos
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /lancamentos/{id} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseID(c, "id", "Lançamento não encontrado")
	if !ok {
		return
	}

	if err := h.entryService.DeleteEntry(c.Request.Context(), id); err != nil {
		writeError(c, logger, err, "Failed to delete entry")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Lançamento removido com sucesso"})
}

// summary godoc
// @Summary Financial summary
// @Description Totals in, out and net cash, plus per-category sums
// @Tags lancamentos
// @Produce json
// @Param data_inicio query string false "Lower bound (YYYY-MM-DD)"
// @Param data_fim query string false "Upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /lancamentos/resumo [get]
func (h *entryHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, err := filters.ParseEntryFilter(c.Request.URL.Query())
	if err != nil {
		writeError(c, logger, err, "Invalid entry filter")
		return
	}

	summary, err := h.entryService.SummarizeEntries(c.Request.Context(), filter)
	if err != nil {
		writeError(c, logger, err, "Failed to summarize entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}
