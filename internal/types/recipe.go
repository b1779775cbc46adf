package types

// RequiredRecipeFields is reported back to clients whose create request
// is missing a field.
const RequiredRecipeFields = "title, making_time, serves, ingredients, cost"

// CreateRecipeRequest represents the body of POST /recipes
type CreateRecipeRequest struct {
	Title       Text `json:"title" validate:"required"`
	MakingTime  Text `json:"making_time" validate:"required"`
	Serves      Text `json:"serves" validate:"required"`
	Ingredients Text `json:"ingredients" validate:"required"`
	Cost        Text `json:"cost" validate:"required"`
}

// UpdateRecipeRequest represents the body of PATCH /recipes/:id.
// A nil field keeps the stored value.
type UpdateRecipeRequest struct {
	Title       *Text `json:"title"`
	MakingTime  *Text `json:"making_time"`
	Serves      *Text `json:"serves"`
	Ingredients *Text `json:"ingredients"`
	Cost        *Text `json:"cost"`
}
