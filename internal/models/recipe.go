package models

// LikedRecipe is a saved reference into the liked-recipes collection.
type LikedRecipe struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Image   string `json:"image"`
	Author  string `json:"author"`
	SavedAt string `json:"savedAt"`
}

// Ingredient is one entry in a recipe's ingredient list.
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// RecipeStep is one ordered step of a recipe. Duration is in seconds and
// drives the client's step-cook countdown.
type RecipeStep struct {
	ID           int    `json:"id"`
	Action       string `json:"action"`
	Description  string `json:"description"`
	Duration     int    `json:"duration"`
	ImagePreview string `json:"imagePreview,omitempty"`
	Tips         string `json:"tips,omitempty"`
}

// UserRecipe is a recipe authored through the app.
type UserRecipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Servings    int          `json:"servings"`
	Thumbnail   string       `json:"thumbnail"`
	Tags        []string     `json:"tags"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []RecipeStep `json:"steps"`
	CreatedAt   string       `json:"createdAt"`
}

// UserRecipeUpdate is a partial edit of an authored recipe. ID and CreatedAt
// are never updatable.
type UserRecipeUpdate struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Category    *string       `json:"category,omitempty"`
	Servings    *int          `json:"servings,omitempty"`
	Thumbnail   *string       `json:"thumbnail,omitempty"`
	Tags        *[]string     `json:"tags,omitempty"`
	Ingredients *[]Ingredient `json:"ingredients,omitempty"`
	Steps       *[]RecipeStep `json:"steps,omitempty"`
}
