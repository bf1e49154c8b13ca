package repository

import "recipebox/webclient/internal/model"

// RecipeStore holds the recipe list from the most recent successful fetch.
// Implementations: in-memory only; the list is never persisted.
type RecipeStore interface {
	// Replace overwrites the whole list. There is no merge.
	Replace(recipes []model.Recipe)
	// List returns a copy of the stored list in fetch order.
	List() []model.Recipe
	Len() int
}
