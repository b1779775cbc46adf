package types

import "github.com/pageza/recipes/backend/internal/models"

// Response messages returned by the recipe endpoints
const (
	MsgRecipeCreated       = "Recipe successfully created!"
	MsgRecipeCreateFailed  = "Recipe creation failed!"
	MsgRecipeUpdateFailed  = "Recipe update failed!"
	MsgRecipeDetails       = "Recipe details by id"
	MsgRecipeUpdated       = "Recipe successfully updated!"
	MsgRecipeRemoved       = "Recipe successfully removed!"
	MsgRecipeNotFound      = "No recipe found"
	MsgInternalServerError = "Internal Server Error"
	MsgTooManyRequests     = "Too many requests"
)

// RecipeResponse wraps a single recipe. The recipe is sent as a one
// element array to stay compatible with existing clients.
type RecipeResponse struct {
	Message string           `json:"message"`
	Recipe  []*models.Recipe `json:"recipe"`
}

// RecipeListResponse is the body of GET /recipes
type RecipeListResponse struct {
	Recipes []*models.Recipe `json:"recipes"`
}

// MessageResponse carries a bare status message
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateFailedResponse is returned when a create request misses fields
type CreateFailedResponse struct {
	Message  string `json:"message"`
	Required string `json:"required"`
}
