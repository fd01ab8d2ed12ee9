package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipestream/internal/api"
	"github.com/pageza/recipestream/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(logger *slog.Logger, allowedOrigins []string, recipeHandler *api.RecipeHandler) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(allowedOrigins))

	router.GET("/health", api.HealthCheck)
	recipeHandler.RegisterRoutes(router)

	return router
}
