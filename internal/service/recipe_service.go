package service

import (
	"context"

	"go.uber.org/zap"

	"recipebox/webclient/internal/catalog"
	"recipebox/webclient/internal/model"
	"recipebox/webclient/internal/repository"
)

// RecipeService owns the recipe store and drives the fetch/mutate/refresh cycle.
// Failures are logged here and returned so callers can decide whether to show them.
type RecipeService interface {
	// Refresh re-fetches the list and overwrites the store. On failure the
	// store keeps its previous contents.
	Refresh(ctx context.Context) error
	Create(ctx context.Context, in model.RecipeInput) error
	// Update is not bound to any page control; the CLI exposes it.
	Update(ctx context.Context, id model.RecipeID, in model.RecipeInput) error
	Delete(ctx context.Context, id model.RecipeID) error
	Recipes() []model.Recipe
}

type recipeService struct {
	client catalog.Client
	store  repository.RecipeStore
	logger *zap.Logger
}

func NewRecipeService(client catalog.Client, store repository.RecipeStore, logger *zap.Logger) RecipeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &recipeService{
		client: client,
		store:  store,
		logger: logger,
	}
}

func (s *recipeService) Refresh(ctx context.Context) error {
	recipes, err := s.client.List(ctx)
	if err != nil {
		s.logger.Error("list recipes failed", zap.Error(err))
		return err
	}
	s.store.Replace(recipes)
	s.logger.Debug("recipes refreshed", zap.Int("count", len(recipes)))
	return nil
}

func (s *recipeService) Create(ctx context.Context, in model.RecipeInput) error {
	if err := s.client.Create(ctx, in); err != nil {
		s.logger.Error("create recipe failed", zap.String("title", in.Title), zap.Error(err))
		return err
	}
	s.logger.Info("recipe created", zap.String("title", in.Title))
	return s.Refresh(ctx)
}

func (s *recipeService) Update(ctx context.Context, id model.RecipeID, in model.RecipeInput) error {
	if err := s.client.Update(ctx, id, in); err != nil {
		s.logger.Error("update recipe failed", zap.Stringer("id", id), zap.Error(err))
		return err
	}
	s.logger.Info("recipe updated", zap.Stringer("id", id))
	return s.Refresh(ctx)
}

func (s *recipeService) Delete(ctx context.Context, id model.RecipeID) error {
	if err := s.client.Delete(ctx, id); err != nil {
		s.logger.Error("delete recipe failed", zap.Stringer("id", id), zap.Error(err))
		return err
	}
	s.logger.Info("recipe deleted", zap.Stringer("id", id))
	return s.Refresh(ctx)
}

func (s *recipeService) Recipes() []model.Recipe {
	return s.store.List()
}
