package repository

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipebox/webclient/internal/model"
)

func TestMemoryRecipeStore_StartsEmpty(t *testing.T) {
	s := NewMemoryRecipeStore()

	assert.Equal(t, 0, s.Len())
	assert.NotNil(t, s.List())
	assert.Empty(t, s.List())
}

func TestMemoryRecipeStore_ReplaceOverwrites(t *testing.T) {
	s := NewMemoryRecipeStore()
	s.Replace([]model.Recipe{{ID: "1", Title: "Soup"}, {ID: "2", Title: "Bread"}})
	s.Replace([]model.Recipe{{ID: "3", Title: "Pie"}})

	got := s.List()
	require.Len(t, got, 1)
	assert.Equal(t, model.RecipeID("3"), got[0].ID)
}

func TestMemoryRecipeStore_ListIsACopy(t *testing.T) {
	s := NewMemoryRecipeStore()
	input := []model.Recipe{{ID: "1", Title: "Soup"}}
	s.Replace(input)

	input[0].Title = "changed by caller"
	got := s.List()
	got[0].Title = "changed by reader"

	assert.Equal(t, "Soup", s.List()[0].Title)
}

func TestMemoryRecipeStore_ConcurrentReplace(t *testing.T) {
	s := NewMemoryRecipeStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			batch := make([]model.Recipe, n%5)
			s.Replace(batch)
			_ = s.List()
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, s.Len(), 4)
}
