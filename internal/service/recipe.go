package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/pageza/recipes/backend/internal/models"
	"github.com/pageza/recipes/backend/internal/types"
)

// RecipeService handles recipe operations
type RecipeService struct {
	db       *gorm.DB
	validate *validator.Validate
	now      func() time.Time
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON names so the error matches what the client sent.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &RecipeService{
		db:       db,
		validate: v,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateRecipe validates and inserts a new recipe, then returns the row as stored
func (s *RecipeService) CreateRecipe(ctx context.Context, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	if err := s.validateCreate(req); err != nil {
		return nil, err
	}

	now := s.now()
	recipe := &models.Recipe{
		Title:       req.Title.String(),
		MakingTime:  req.MakingTime.String(),
		Serves:      req.Serves.String(),
		Ingredients: req.Ingredients.String(),
		Cost:        req.Cost.String(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, storageErr("create", err)
	}

	return s.GetRecipe(ctx, recipe.ID)
}

func (s *RecipeService) validateCreate(req *types.CreateRecipeRequest) error {
	if req == nil {
		req = &types.CreateRecipeRequest{}
	}
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		verr.Fields = append(verr.Fields, fe.Field())
	}
	return verr
}

// ListRecipes returns every stored recipe in insertion order
func (s *RecipeService) ListRecipes(ctx context.Context) ([]*models.Recipe, error) {
	recipes := make([]*models.Recipe, 0)
	if err := s.db.WithContext(ctx).Order("id").Find(&recipes).Error; err != nil {
		return nil, storageErr("list", err)
	}
	return recipes, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, storageErr("get", err)
	}
	return &recipe, nil
}

// UpdateRecipe applies a coalescing update: every field left nil in req
// keeps its stored value. updated_at is always refreshed.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uint, req *types.UpdateRecipeRequest) (*models.Recipe, error) {
	if req == nil {
		req = &types.UpdateRecipeRequest{}
	}

	result := s.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"title":       gorm.Expr("COALESCE(?, title)", textArg(req.Title)),
			"making_time": gorm.Expr("COALESCE(?, making_time)", textArg(req.MakingTime)),
			"serves":      gorm.Expr("COALESCE(?, serves)", textArg(req.Serves)),
			"ingredients": gorm.Expr("COALESCE(?, ingredients)", textArg(req.Ingredients)),
			"cost":        gorm.Expr("COALESCE(?, cost)", textArg(req.Cost)),
			"updated_at":  s.now(),
		})
	if result.Error != nil {
		return nil, storageErr("update", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecipeNotFound
	}

	return s.GetRecipe(ctx, id)
}

// textArg binds an optional field as a plain string or SQL NULL
func textArg(t *types.Text) interface{} {
	if t == nil {
		return nil
	}
	return t.String()
}

// DeleteRecipe removes a recipe
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", id)
	if result.Error != nil {
		return storageErr("delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecipeNotFound
	}
	return nil
}
