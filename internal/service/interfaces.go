package service

import (
	"context"

	"github.com/pageza/recipes/backend/internal/models"
	"github.com/pageza/recipes/backend/internal/types"
)

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, req *types.CreateRecipeRequest) (*models.Recipe, error)
	GetRecipe(ctx context.Context, id uint) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, id uint, req *types.UpdateRecipeRequest) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id uint) error
	ListRecipes(ctx context.Context) ([]*models.Recipe, error)
}

var _ IRecipeService = (*RecipeService)(nil)
