// Package catalog serves the browsable recipe dataset. The set ships
// built in and can be overridden by seeding storage (cmd/seed_recipes),
// mirroring how the client bundled its demo data.
package catalog

import (
	"context"
	"strings"

	"github.com/cooksync/backend/internal/models"
	"github.com/cooksync/backend/internal/storage"
)

// Recipe is a browsable catalog entry: authored-recipe content plus display
// attribution.
type Recipe struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    string              `json:"category"`
	Author      string              `json:"author"`
	Servings    int                 `json:"servings"`
	Image       string              `json:"image"`
	Tags        []string            `json:"tags"`
	Ingredients []models.Ingredient `json:"ingredients"`
	Steps       []models.RecipeStep `json:"steps"`
}

// Catalog is a read-only recipe collection.
type Catalog struct {
	recipes []Recipe
}

// Load builds a catalog from storage, falling back to the built-in demo set
// when nothing has been seeded or the stored value is malformed.
func Load(ctx context.Context, kv storage.KV) *Catalog {
	var recipes []Recipe
	if !storage.LoadJSON(ctx, kv, storage.KeyCatalog, &recipes) || len(recipes) == 0 {
		recipes = BuiltIn()
	}
	return &Catalog{recipes: recipes}
}

// Seed writes the built-in demo set into storage.
func Seed(ctx context.Context, kv storage.KV) error {
	return storage.SaveJSON(ctx, kv, storage.KeyCatalog, BuiltIn())
}

// All returns every catalog recipe.
func (c *Catalog) All() []Recipe {
	return append([]Recipe(nil), c.recipes...)
}

// Get returns the recipe with the given id.
func (c *Catalog) Get(id string) (Recipe, bool) {
	for _, r := range c.recipes {
		if r.ID == id {
			return r, true
		}
	}
	return Recipe{}, false
}

// Search filters linearly over title, description and tags, optionally
// restricted to a category. Empty arguments match everything.
func (c *Catalog) Search(query, category string) []Recipe {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Recipe
	for _, r := range c.recipes {
		if category != "" && r.Category != category {
			continue
		}
		if q != "" && !matches(r, q) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matches(r Recipe, q string) bool {
	if strings.Contains(strings.ToLower(r.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), q) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
