package client

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"clientsolve/internal/application/client/usecases"
	"clientsolve/internal/shared/logger"
	"clientsolve/internal/shared/utils"
)

type ClientHandler struct {
	createClientUC usecases.CreateClientExecutor
	updateClientUC usecases.UpdateClientExecutor
	deleteClientUC usecases.DeleteClientExecutor
	toggleActiveUC usecases.ToggleClientActiveExecutor
	getClientUC    usecases.GetClientExecutor
	listClientsUC  usecases.ListClientsExecutor
	logger         logger.Interface
}

func NewClientHandler(
	createClientUC usecases.CreateClientExecutor,
	updateClientUC usecases.UpdateClientExecutor,
	deleteClientUC usecases.DeleteClientExecutor,
	toggleActiveUC usecases.ToggleClientActiveExecutor,
	getClientUC usecases.GetClientExecutor,
	listClientsUC usecases.ListClientsExecutor,
	logger logger.Interface,
) *ClientHandler {
	return &ClientHandler{
		createClientUC: createClientUC,
		updateClientUC: updateClientUC,
		deleteClientUC: deleteClientUC,
		toggleActiveUC: toggleActiveUC,
		getClientUC:    getClientUC,
		listClientsUC:  listClientsUC,
		logger:         logger,
	}
}

// CreateClient handles POST /clients
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create client", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createClientUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Client created successfully")
}

// UpdateClient handles PUT /clients/:id
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateClientUC.Execute(c.Request.Context(), req.ToCommand(c.Param("id")))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client updated successfully", result)
}

// DeleteClient handles DELETE /clients/:id
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	result, err := h.deleteClientUC.Execute(c.Request.Context(), usecases.DeleteClientCommand{
		ClientID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client deleted successfully", result)
}

// ToggleActive handles PATCH /clients/:id/active
func (h *ClientHandler) ToggleActive(c *gin.Context) {
	result, err := h.toggleActiveUC.Execute(c.Request.Context(), usecases.ToggleClientActiveCommand{
		ClientID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client status updated", result)
}

// GetClient handles GET /clients/:id
func (h *ClientHandler) GetClient(c *gin.Context) {
	entity, err := h.getClientUC.Execute(c.Request.Context(), usecases.GetClientQuery{
		ClientID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", clientResponseFromEntity(entity))
}

// ListClients handles GET /clients
func (h *ClientHandler) ListClients(c *gin.Context) {
	query := usecases.ListClientsQuery{
		Search: c.Query("search"),
	}
	if activeStr := c.Query("active"); activeStr != "" {
		active, err := strconv.ParseBool(activeStr)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid active filter")
			return
		}
		query.Active = &active
	}

	entities, err := h.listClientsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", clientResponsesFromEntities(entities))
}
