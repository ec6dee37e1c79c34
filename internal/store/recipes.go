package store

import (
	"fmt"

	"github.com/cooksync/backend/internal/models"
	"github.com/cooksync/backend/internal/storage"
)

// ToggleLikeRecipe adds the recipe to the liked set, or removes it when
// already present. Toggling twice restores the original membership.
func (s *Store) ToggleLikeRecipe(recipe models.LikedRecipe) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.likedRecipes {
		if r.ID == recipe.ID {
			s.likedRecipes = append(s.likedRecipes[:i], s.likedRecipes[i+1:]...)
			s.persist(storage.KeyLikedRecipes, s.likedRecipes)
			return
		}
	}

	// The client shows saved dates as dotted calendar days.
	recipe.SavedAt = s.now().Format("2006.01.02")
	s.likedRecipes = append(s.likedRecipes, recipe)
	s.persist(storage.KeyLikedRecipes, s.likedRecipes)
}

// IsRecipeLiked reports membership in the liked set.
func (s *Store) IsRecipeLiked(recipeID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.likedRecipes {
		if r.ID == recipeID {
			return true
		}
	}
	return false
}

// LikedRecipes returns a copy of the liked-recipes collection.
func (s *Store) LikedRecipes() []models.LikedRecipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.LikedRecipe(nil), s.likedRecipes...)
}

// AddUserRecipe stores a newly authored recipe at the head of the collection
// and credits one star, subject to the ledger's daily cap. Returns the
// generated recipe id.
func (s *Store) AddUserRecipe(recipe models.UserRecipe) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipe.ID = fmt.Sprintf("user-recipe-%d", s.now().UnixMilli())
	recipe.CreatedAt = s.timestamp()

	s.userRecipes = append([]models.UserRecipe{recipe}, s.userRecipes...)
	s.persist(storage.KeyUserRecipes, s.userRecipes)

	// Authoring always attempts a reward; the grant may be capped away.
	s.earnStarsLocked(1)

	return recipe.ID
}

// UpdateUserRecipe shallow-merges the edit into the matching recipe. Unknown
// ids no-op.
func (s *Store) UpdateUserRecipe(id string, update models.UserRecipeUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.userRecipes {
		if s.userRecipes[i].ID != id {
			continue
		}
		r := &s.userRecipes[i]
		if update.Title != nil {
			r.Title = *update.Title
		}
		if update.Description != nil {
			r.Description = *update.Description
		}
		if update.Category != nil {
			r.Category = *update.Category
		}
		if update.Servings != nil {
			r.Servings = *update.Servings
		}
		if update.Thumbnail != nil {
			r.Thumbnail = *update.Thumbnail
		}
		if update.Tags != nil {
			r.Tags = *update.Tags
		}
		if update.Ingredients != nil {
			r.Ingredients = *update.Ingredients
		}
		if update.Steps != nil {
			r.Steps = *update.Steps
		}
		s.persist(storage.KeyUserRecipes, s.userRecipes)
		return
	}
}

// DeleteUserRecipe removes the matching recipe. Unknown ids no-op.
func (s *Store) DeleteUserRecipe(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.userRecipes {
		if r.ID == id {
			s.userRecipes = append(s.userRecipes[:i], s.userRecipes[i+1:]...)
			s.persist(storage.KeyUserRecipes, s.userRecipes)
			return
		}
	}
}

// UserRecipes returns a copy of the authored recipes, newest first.
func (s *Store) UserRecipes() []models.UserRecipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.UserRecipe(nil), s.userRecipes...)
}

// UserRecipe returns the authored recipe with the given id.
func (s *Store) UserRecipe(id string) (models.UserRecipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.userRecipes {
		if r.ID == id {
			return r, true
		}
	}
	return models.UserRecipe{}, false
}
