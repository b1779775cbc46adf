package api

import (
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/recipes/backend/internal/middleware"
	"github.com/pageza/recipes/backend/internal/service"
	"github.com/pageza/recipes/backend/internal/testhelpers"
)

// recipeEnvelope mirrors the JSON returned by create, get and update
type recipeEnvelope struct {
	Message string         `json:"message"`
	Recipe  []recipeRecord `json:"recipe"`
}

type recipeRecord struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	MakingTime  string `json:"making_time"`
	Serves      string `json:"serves"`
	Ingredients string `json:"ingredients"`
	Cost        string `json:"cost"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type listEnvelope struct {
	Recipes []recipeRecord `json:"recipes"`
}

// newTestRouter builds an engine with the error middleware and the given
// recipe service mounted the same way the server does it.
func newTestRouter(db *gorm.DB, recipeService service.IRecipeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	RegisterRoutes(router, db, recipeService)
	return router
}

func setupRecipeTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	db := testhelpers.SetupTestDatabase(t)
	return newTestRouter(db, service.NewRecipeService(db)), db
}
