package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authhandlers "clientsolve/internal/interfaces/http/handlers/auth"
	clienthandlers "clientsolve/internal/interfaces/http/handlers/client"
	tickethandlers "clientsolve/internal/interfaces/http/handlers/ticket"
	userhandlers "clientsolve/internal/interfaces/http/handlers/user"
	"clientsolve/internal/interfaces/http/middleware"
	"clientsolve/internal/interfaces/http/routes"
	"clientsolve/internal/shared/logger"
)

// RouterConfig carries the fully wired handlers; the composition happens in
// the server command.
type RouterConfig struct {
	AuthHandler    *authhandlers.AuthHandler
	ClientHandler  *clienthandlers.ClientHandler
	UserHandler    *userhandlers.UserHandler
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
	Logger         logger.Interface
}

type Router struct {
	engine *gin.Engine
}

func NewRouter(config *RouterConfig) *Router {
	engine := gin.New()
	engine.Use(middleware.Logger(config.Logger))
	engine.Use(middleware.Recovery(config.Logger))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler: config.AuthHandler,
	})
	routes.SetupClientRoutes(engine, &routes.ClientRouteConfig{
		ClientHandler:  config.ClientHandler,
		UserHandler:    config.UserHandler,
		TicketHandler:  config.TicketHandler,
		AuthMiddleware: config.AuthMiddleware,
	})
	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{
		UserHandler:    config.UserHandler,
		AuthMiddleware: config.AuthMiddleware,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  config.TicketHandler,
		AuthMiddleware: config.AuthMiddleware,
	})

	return &Router{engine: engine}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
