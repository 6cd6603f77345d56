package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "clientsolve/internal/interfaces/http/handlers/user"
	"clientsolve/internal/interfaces/http/middleware"
	"clientsolve/internal/shared/authorization"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/api/users")
	users.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		users.POST("", config.UserHandler.CreateUser)
		users.GET("", config.UserHandler.ListUsers)

		users.PATCH("/:id/active", config.UserHandler.ToggleActive)

		users.GET("/:id", config.UserHandler.GetUser)
		users.PUT("/:id", config.UserHandler.UpdateUser)
		users.DELETE("/:id", config.UserHandler.DeleteUser)
	}
}
