package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipes/backend/internal/models"
	"github.com/pageza/recipes/backend/internal/service"
	"github.com/pageza/recipes/backend/internal/types"
)

// RecipeHandler serves the /recipes endpoints. Errors are attached with
// c.Error and rendered by middleware.ErrorHandler.
type RecipeHandler struct {
	recipeService service.IRecipeService
}

func NewRecipeHandler(recipeService service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// RegisterRoutes mounts the recipe routes. writeMiddleware runs in front
// of the mutating routes only.
func (h *RecipeHandler) RegisterRoutes(router gin.IRouter, writeMiddleware ...gin.HandlerFunc) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)

		writes := recipes.Group("", writeMiddleware...)
		writes.POST("", h.CreateRecipe)
		writes.PATCH("/:id", h.UpdateRecipe)
		writes.DELETE("/:id", h.DeleteRecipe)
	}
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.CreateFailedResponse{
			Message:  types.MsgRecipeCreateFailed,
			Required: types.RequiredRecipeFields,
		})
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, types.RecipeResponse{
		Message: types.MsgRecipeCreated,
		Recipe:  []*models.Recipe{recipe},
	})
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipeService.ListRecipes(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	if recipes == nil {
		recipes = []*models.Recipe{}
	}

	c.JSON(http.StatusOK, types.RecipeListResponse{Recipes: recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.RecipeResponse{
		Message: types.MsgRecipeDetails,
		Recipe:  []*models.Recipe{recipe},
	})
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	var req types.UpdateRecipeRequest
	// An empty body only refreshes updated_at.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, types.MessageResponse{Message: types.MsgRecipeUpdateFailed})
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.RecipeResponse{
		Message: types.MsgRecipeUpdated,
		Recipe:  []*models.Recipe{recipe},
	})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: types.MsgRecipeRemoved})
}

// recipeID parses the :id path parameter. Anything that is not a positive
// integer cannot match a stored recipe and is reported as not found.
func recipeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, strconv.IntSize)
	if err != nil || id == 0 {
		_ = c.Error(service.ErrRecipeNotFound)
		return 0, false
	}
	return uint(id), true
}
