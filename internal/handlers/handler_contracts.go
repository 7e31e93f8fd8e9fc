package handlers

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/services"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/dto"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/middleware"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/utils/filters"
)

const (
	msgContractNotFound = "Contrato não encontrado"
	formFileField       = "arquivo"
)

// contractHandler handles HTTP requests related to contracts.
type contractHandler struct {
	contractService portssvc.ContractSvcFacade
}

func newContractHandler(cs portssvc.ContractSvcFacade) *contractHandler {
	return &contractHandler{contractService: cs}
}

// registerContractRoutes registers routes related to contracts.
func registerContractRoutes(rg *gin.RouterGroup, contractService portssvc.ContractSvcFacade) {
	h := newContractHandler(contractService)

	contracts := rg.Group("/contratos")
	{
		contracts.GET("", h.listContracts)
		contracts.POST("", h.createContract)
		contracts.GET("/clientes", h.listClients)
		contracts.GET("/:id/download", h.download)
		contracts.GET("/:id/view", h.view)
	}
}

// listContracts godoc
// @Summary List contracts
// @Tags contratos
// @Produce json
// @Param cliente query string false "Client substring"
// @Param data_inicio query string false "Contracts starting on or after (YYYY-MM-DD)"
// @Param data_fim query string false "Contracts ending on or before (YYYY-MM-DD)"
// @Success 200 {object} dto.ListContractsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /contratos [get]
func (h *contractHandler) listContracts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, err := filters.ParseContractFilter(c.Request.URL.Query())
	if err != nil {
		writeError(c, logger, err, "Invalid contract filter")
		return
	}

	contracts, err := h.contractService.ListContracts(c.Request.Context(), filter)
	if err != nil {
		writeError(c, logger, err, "Failed to list contracts")
		return
	}

	c.JSON(http.StatusOK, dto.ToListContractsResponse(contracts))
}

// createContract godoc
// @Summary Create a contract
// @Description Uploads the contract PDF (max 16MB) together with its data
// @Tags contratos
// @Accept multipart/form-data
// @Produce json
// @Param arquivo formData file true "Contract PDF"
// @Param titulo formData string true "Title"
// @Param cliente formData string true "Client"
// @Param valor formData number true "Amount"
// @Param data_inicio formData string true "Start date (YYYY-MM-DD)"
// @Param data_fim formData string true "End date (YYYY-MM-DD)"
// @Param observacoes formData string false "Notes"
// @Success 201 {object} dto.CreateContractResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /contratos [post]
func (h *contractHandler) createContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile(formFileField)
	if err != nil {
		msg := "Arquivo PDF é obrigatório"
		// a part sent with an empty filename is parsed as a plain value
		if form := c.Request.MultipartForm; form != nil {
			if _, ok := form.Value[formFileField]; ok {
				msg = "Nenhum arquivo selecionado"
			}
		}
		if !errors.Is(err, http.ErrMissingFile) {
			logger.Warn("Failed to read multipart form", slog.String("error", err.Error()))
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return
	}
	if fileHeader.Filename == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Nenhum arquivo selecionado"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeError(c, logger, err, "Failed to open uploaded file")
		return
	}
	defer file.Close()

	req := dto.CreateContractRequest{
		Titulo:      c.PostForm("titulo"),
		Cliente:     c.PostForm("cliente"),
		Valor:       c.PostForm("valor"),
		DataInicio:  c.PostForm("data_inicio"),
		DataFim:     c.PostForm("data_fim"),
		Observacoes: c.PostForm("observacoes"),
	}

	contract, err := h.contractService.CreateContract(c.Request.Context(), req, portssvc.ContractUpload{
		Filename: fileHeader.Filename,
		Content:  file,
	})
	if err != nil {
		writeError(c, logger, err, "Failed to create contract")
		return
	}

	c.JSON(http.StatusCreated, dto.CreateContractResponse{
		Success:  true,
		Message:  "Contrato criado com sucesso",
		Contrato: dto.ToContractResponse(contract),
	})
}

// download godoc
// @Summary Download the contract PDF
// @Tags contratos
// @Produce application/pdf
// @Param id path int true "Contract ID"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse
// @Router /contratos/{id}/download [get]
func (h *contractHandler) download(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseID(c, "id", msgContractNotFound)
	if !ok {
		return
	}

	contract, err := h.contractService.GetContractFile(c.Request.Context(), id)
	if err != nil {
		writeError(c, logger, err, "Failed to get contract file")
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.FileAttachment(contract.StoredFilePath, contract.OriginalFilename)
}

// view godoc
// @Summary Show the contract PDF inline
// @Tags contratos
// @Produce application/pdf
// @Param id path int true "Contract ID"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse
// @Router /contratos/{id}/view [get]
func (h *contractHandler) view(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseID(c, "id", msgContractNotFound)
	if !ok {
		return
	}

	contract, err := h.contractService.GetContractFile(c.Request.Context(), id)
	if err != nil {
		writeError(c, logger, err, "Failed to get contract file")
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": contract.OriginalFilename}))
	c.File(contract.StoredFilePath)
}

// listClients godoc
// @Summary Distinct contract clients
// @Tags contratos
// @Produce json
// @Success 200 {object} dto.ClientsResponse
// @Router /contratos/clientes [get]
func (h *contractHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	clients, err := h.contractService.ListContractClients(c.Request.Context())
	if err != nil {
		writeError(c, logger, err, "Failed to list contract clients")
		return
	}

	c.JSON(http.StatusOK, dto.ClientsResponse{Clientes: clients})
}
