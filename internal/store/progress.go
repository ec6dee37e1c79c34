package store

import "github.com/cooksync/backend/internal/storage"

// MarkRecipeCompleted records that the current user finished cooking the
// recipe. Idempotent: a repeat call neither changes state nor writes, which
// keeps re-mounted completion dialogs cheap. No-op when logged out.
func (s *Store) MarkRecipeCompleted(recipeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}
	if contains(s.completed, recipeID) {
		return
	}
	s.completed = append(s.completed, recipeID)
	s.persist(storage.Key(storage.KeyCompletedRecipes, s.user.ID), s.completed)
}

// MarkRecipeReviewed records that the current user reviewed the recipe.
// Idempotent set-insert; the one-review-per-recipe rule itself is enforced
// by the API layer, not here. No-op when logged out.
func (s *Store) MarkRecipeReviewed(recipeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}
	if contains(s.reviewed, recipeID) {
		return
	}
	s.reviewed = append(s.reviewed, recipeID)
	s.persist(storage.Key(storage.KeyReviewedRecipes, s.user.ID), s.reviewed)
}

// HasReviewedRecipe reports whether the recipe is in the reviewed set.
func (s *Store) HasReviewedRecipe(recipeID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return contains(s.reviewed, recipeID)
}

// HasCompletedRecipe reports whether the recipe is in the completed set.
func (s *Store) HasCompletedRecipe(recipeID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return contains(s.completed, recipeID)
}

// CompletedRecipes returns a copy of the completed recipe ids.
func (s *Store) CompletedRecipes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.completed...)
}

// ReviewedRecipes returns a copy of the reviewed recipe ids.
func (s *Store) ReviewedRecipes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.reviewed...)
}
