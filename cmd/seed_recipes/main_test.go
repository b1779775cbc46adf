package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipes/backend/internal/mocks"
	"github.com/pageza/recipes/backend/internal/service"
	"github.com/pageza/recipes/backend/internal/testhelpers"
	"github.com/pageza/recipes/backend/internal/types"
)

func TestReadRecipes(t *testing.T) {
	recipes, err := readRecipes(strings.NewReader(`[
		{"title":"Tea","making_time":"5 min","serves":"2","ingredients":"tea, water","cost":"50"}
	]`))
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Tea", recipes[0].Title.String())
	assert.Equal(t, "5 min", recipes[0].MakingTime.String())

	_, err = readRecipes(strings.NewReader(`{"title":"Tea"}`))
	assert.Error(t, err)
}

func TestSeed(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewRecipeService(db)
	ctx := context.Background()

	recipes := append([]types.CreateRecipeRequest{}, sampleRecipes...)
	recipes = append(recipes, types.CreateRecipeRequest{Title: "No cost"})

	created, err := seed(ctx, svc, recipes)
	assert.Equal(t, len(sampleRecipes), created)

	var verr *service.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, err.Error(), "recipe 3")

	stored, err := svc.ListRecipes(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, len(sampleRecipes))
}

func TestSeedStopsOnStorageError(t *testing.T) {
	svc := new(mocks.MockRecipeService)
	svc.On("CreateRecipe", mock.Anything, mock.Anything).
		Return(nil, &service.StorageError{Op: "create", Err: errors.New("read-only database")}).Once()

	created, err := seed(context.Background(), svc, sampleRecipes)
	assert.Zero(t, created)

	var serr *service.StorageError
	assert.True(t, errors.As(err, &serr))
	svc.AssertExpectations(t)
}
