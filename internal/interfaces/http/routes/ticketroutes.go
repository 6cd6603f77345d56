package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "clientsolve/internal/interfaces/http/handlers/ticket"
	"clientsolve/internal/interfaces/http/middleware"
	"clientsolve/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTicketRoutes registers the ticket store. Reads are open to both roles
// (the handler narrows client-role callers to their own client); mutations of
// existing records are admin-only.
func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/api/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Specific paths before the parameterized ones.
		tickets.POST("/:id/comments", config.TicketHandler.AddComment)
		tickets.PUT("/:id/comments/:commentId",
			authorization.RequireAdmin(),
			config.TicketHandler.UpdateComment)
		tickets.DELETE("/:id/comments/:commentId",
			authorization.RequireAdmin(),
			config.TicketHandler.DeleteComment)

		tickets.POST("/:id/attachments", config.TicketHandler.UploadAttachments)
		tickets.DELETE("/:id/attachments/:attachmentId",
			authorization.RequireAdmin(),
			config.TicketHandler.DeleteAttachment)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PUT("/:id",
			authorization.RequireAdmin(),
			config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			authorization.RequireAdmin(),
			config.TicketHandler.DeleteTicket)
	}
}
