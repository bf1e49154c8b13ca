package repository

import (
	"sync"

	"recipebox/webclient/internal/model"
)

type memoryRecipeStore struct {
	mu      sync.RWMutex
	recipes []model.Recipe
}

func NewMemoryRecipeStore() RecipeStore {
	return &memoryRecipeStore{
		recipes: []model.Recipe{},
	}
}

func (s *memoryRecipeStore) Replace(recipes []model.Recipe) {
	next := make([]model.Recipe, len(recipes))
	copy(next, recipes)

	s.mu.Lock()
	s.recipes = next
	s.mu.Unlock()
}

func (s *memoryRecipeStore) List() []model.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

func (s *memoryRecipeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recipes)
}
