package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/pageza/recipes/backend/config"
	"github.com/pageza/recipes/backend/internal/database"
	"github.com/pageza/recipes/backend/internal/pkg/logger"
	"github.com/pageza/recipes/backend/internal/service"
	"github.com/pageza/recipes/backend/internal/types"
)

// sampleRecipes is used when no file is given
var sampleRecipes = []types.CreateRecipeRequest{
	{Title: "Chicken Curry", MakingTime: "45 min", Serves: "4", Ingredients: "onion, chicken, seasoning", Cost: "1000"},
	{Title: "Rice Omelette", MakingTime: "30 min", Serves: "2", Ingredients: "onion, egg, seasoning, soy sauce", Cost: "700"},
	{Title: "Tea", MakingTime: "5 min", Serves: "2", Ingredients: "tea, water", Cost: "50"},
}

func main() {
	file := flag.String("file", "", "JSON file holding an array of recipes (defaults to built-in samples)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	lg := logger.L()

	if database.IsInMemory(cfg) {
		lg.Fatal("refusing to seed an in-memory database; set DB_DSN to a file or postgres DSN")
	}

	recipes := sampleRecipes
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			lg.Fatal("failed to open recipe file", zap.Error(err))
		}
		recipes, err = readRecipes(f)
		_ = f.Close()
		if err != nil {
			lg.Fatal("failed to read recipe file", zap.Error(err))
		}
	}

	db, err := database.New(cfg)
	if err != nil {
		lg.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	if err := database.RunMigrations(db); err != nil {
		lg.Fatal("failed to prepare schema", zap.Error(err))
	}

	created, err := seed(context.Background(), service.NewRecipeService(db), recipes)
	lg.Info("seeding finished", zap.Int("created", created), zap.Int("total", len(recipes)))
	if err != nil {
		lg.Fatal("seeding failed", zap.Error(err))
	}
}

func readRecipes(r io.Reader) ([]types.CreateRecipeRequest, error) {
	var recipes []types.CreateRecipeRequest
	if err := json.NewDecoder(r).Decode(&recipes); err != nil {
		return nil, fmt.Errorf("decode recipes: %w", err)
	}
	return recipes, nil
}

// seed creates every recipe it can. Invalid entries are skipped and
// reported together; a storage failure stops the run.
func seed(ctx context.Context, svc service.IRecipeService, recipes []types.CreateRecipeRequest) (int, error) {
	var (
		created int
		errs    []error
	)
	for i := range recipes {
		recipe, err := svc.CreateRecipe(ctx, &recipes[i])
		if err != nil {
			var verr *service.ValidationError
			if errors.As(err, &verr) {
				errs = append(errs, fmt.Errorf("recipe %d: %w", i, err))
				continue
			}
			return created, err
		}
		logger.L().Debug("recipe created", zap.Uint("id", recipe.ID), zap.String("title", recipe.Title))
		created++
	}
	return created, errors.Join(errs...)
}
