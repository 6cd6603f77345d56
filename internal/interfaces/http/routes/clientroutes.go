package routes

import (
	"github.com/gin-gonic/gin"

	clienthandlers "clientsolve/internal/interfaces/http/handlers/client"
	tickethandlers "clientsolve/internal/interfaces/http/handlers/ticket"
	userhandlers "clientsolve/internal/interfaces/http/handlers/user"
	"clientsolve/internal/interfaces/http/middleware"
	"clientsolve/internal/shared/authorization"
)

type ClientRouteConfig struct {
	ClientHandler  *clienthandlers.ClientHandler
	UserHandler    *userhandlers.UserHandler
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupClientRoutes registers the client directory. The whole group is
// admin-only; client-role users reach their own data through /api/tickets.
func SetupClientRoutes(engine *gin.Engine, config *ClientRouteConfig) {
	clients := engine.Group("/api/clients")
	clients.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		clients.POST("", config.ClientHandler.CreateClient)
		clients.GET("", config.ClientHandler.ListClients)

		// Specific paths before the parameterized ones.
		clients.PATCH("/:id/active", config.ClientHandler.ToggleActive)
		clients.GET("/:id/users", config.UserHandler.ListByClient)
		clients.GET("/:id/tickets", config.TicketHandler.ListByClient)

		clients.GET("/:id", config.ClientHandler.GetClient)
		clients.PUT("/:id", config.ClientHandler.UpdateClient)
		clients.DELETE("/:id", config.ClientHandler.DeleteClient)
	}
}
