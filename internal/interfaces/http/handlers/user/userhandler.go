package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"clientsolve/internal/application/user/usecases"
	"clientsolve/internal/shared/logger"
	"clientsolve/internal/shared/utils"
)

type UserHandler struct {
	createUserUC   usecases.CreateUserExecutor
	updateUserUC   usecases.UpdateUserExecutor
	deleteUserUC   usecases.DeleteUserExecutor
	toggleActiveUC usecases.ToggleUserActiveExecutor
	getUserUC      usecases.GetUserExecutor
	listUsersUC    usecases.ListUsersExecutor
	logger         logger.Interface
}

func NewUserHandler(
	createUserUC usecases.CreateUserExecutor,
	updateUserUC usecases.UpdateUserExecutor,
	deleteUserUC usecases.DeleteUserExecutor,
	toggleActiveUC usecases.ToggleUserActiveExecutor,
	getUserUC usecases.GetUserExecutor,
	listUsersUC usecases.ListUsersExecutor,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUserUC:   createUserUC,
		updateUserUC:   updateUserUC,
		deleteUserUC:   deleteUserUC,
		toggleActiveUC: toggleActiveUC,
		getUserUC:      getUserUC,
		listUsersUC:    listUsersUC,
		logger:         logger,
	}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUserUC.Execute(c.Request.Context(), req.ToCommand(c.Param("id")))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", result)
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	result, err := h.deleteUserUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		UserID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", result)
}

// ToggleActive handles PATCH /users/:id/active
func (h *UserHandler) ToggleActive(c *gin.Context) {
	result, err := h.toggleActiveUC.Execute(c.Request.Context(), usecases.ToggleUserActiveCommand{
		UserID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User status updated", result)
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	entity, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{
		UserID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", userResponseFromEntity(entity))
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	query := usecases.ListUsersQuery{
		ClientID: c.Query("client_id"),
		Search:   c.Query("search"),
	}
	if activeStr := c.Query("active"); activeStr != "" {
		active, err := strconv.ParseBool(activeStr)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid active filter")
			return
		}
		query.Active = &active
	}

	entities, err := h.listUsersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", userResponsesFromEntities(entities))
}

// ListByClient handles GET /clients/:id/users
func (h *UserHandler) ListByClient(c *gin.Context) {
	entities, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		ClientID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", userResponsesFromEntities(entities))
}
