package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"recipeshare/backend/db"
	"recipeshare/backend/model"
	"recipeshare/backend/security"
)

type RecipeService struct {
	store UserStore
}

func NewRecipeService(store UserStore) *RecipeService {
	return &RecipeService{store: store}
}

// RecipeDraft carries the caller-supplied fields of a new recipe.
type RecipeDraft struct {
	Name         string
	IconURL      string
	PriceLevel   uint8
	HealthyLevel uint8
	Instructions []string
	Ingredients  []model.Ingredient
	Tools        []model.Tool
}

// Create appends a recipe to the owner's document after checking the
// presented token. "No such user" and "bad token" are deliberately the
// same error.
func (s *RecipeService) Create(ctx context.Context, userName, token string, draft RecipeDraft) error {
	user, err := s.store.FindUserByName(ctx, userName)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrInvalidCredentials
		}

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("name", userName))
		return ErrDatabase
	}

	if !security.Authorize(user.Tokens, token, time.Now()) {
		return ErrInvalidCredentials
	}

	recipe := model.Recipe{
		Name:         draft.Name,
		Instructions: draft.Instructions,
		IconURL:      draft.IconURL,
		PriceLevel:   draft.PriceLevel,
		HealthyLevel: draft.HealthyLevel,
		Comments:     []model.Comment{},
		Notes:        []model.Note{},
		Ingredients:  draft.Ingredients,
		Tools:        draft.Tools,
		Categories:   []primitive.ObjectID{},
	}

	if recipe.Instructions == nil {
		recipe.Instructions = []string{}
	}
	if recipe.Ingredients == nil {
		recipe.Ingredients = []model.Ingredient{}
	}
	if recipe.Tools == nil {
		recipe.Tools = []model.Tool{}
	}

	if err := s.store.AppendRecipe(ctx, userName, recipe); err != nil {
		zap.L().Error("Failed to append recipe", zap.Error(err), zap.String("name", userName))
		return ErrDatabase
	}

	return nil
}

// List collects recipes by walking users in storage order until limit is
// reached. The order is owner-iteration order, not recency. Any storage
// failure discards the partial result.
func (s *RecipeService) List(ctx context.Context, limit int) ([]model.Recipe, error) {
	if limit <= 0 {
		return []model.Recipe{}, nil
	}

	recipes := make([]model.Recipe, 0, limit)

	err := s.store.EachUser(ctx, func(u *model.User) bool {
		recipes = append(recipes, u.Recipes...)
		return len(recipes) < limit
	})
	if err != nil {
		zap.L().Error("Failed to scan users for recipes", zap.Error(err))
		return nil, ErrDatabase
	}

	if len(recipes) > limit {
		recipes = recipes[:limit]
	}

	return recipes, nil
}
