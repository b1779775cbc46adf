package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/recipes/backend/internal/service"
)

// RegisterRoutes registers all API routes. writeMiddleware guards the
// routes that change data.
func RegisterRoutes(router *gin.Engine, db *gorm.DB, recipeService service.IRecipeService, writeMiddleware ...gin.HandlerFunc) {
	router.GET("/health", NewHealthHandler(db).HealthCheck)

	NewRecipeHandler(recipeService).RegisterRoutes(router, writeMiddleware...)
}
