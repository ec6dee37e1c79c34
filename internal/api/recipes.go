package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cooksync/backend/internal/catalog"
	"github.com/cooksync/backend/internal/models"
	"github.com/cooksync/backend/internal/store"
)

// RecipeHandler serves the browsable catalog, the user's authored recipes,
// the liked set, and cooking progress.
type RecipeHandler struct {
	store   *store.Store
	catalog *catalog.Catalog
}

func NewRecipeHandler(st *store.Store, cat *catalog.Catalog) *RecipeHandler {
	return &RecipeHandler{
		store:   st,
		catalog: cat,
	}
}

// RegisterRoutes registers the authenticated recipe routes.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	liked := router.Group("/liked-recipes")
	{
		liked.GET("", h.ListLikedRecipes)
		liked.POST("/toggle", h.ToggleLikeRecipe)
		liked.GET("/:id", h.IsRecipeLiked)
	}

	my := router.Group("/my/recipes")
	{
		my.GET("", h.ListUserRecipes)
		my.POST("", h.CreateUserRecipe)
		my.GET("/:id", h.GetUserRecipe)
		my.PUT("/:id", h.UpdateUserRecipe)
		my.DELETE("/:id", h.DeleteUserRecipe)
	}

	router.GET("/my/progress", h.GetProgress)
	router.POST("/recipes/:id/complete", h.CompleteRecipe)
	router.POST("/recipes/:id/review", h.ReviewRecipe)
	router.GET("/recipes/:id/review", h.GetReviewStatus)
}

func (h *RecipeHandler) ListCatalog(c *gin.Context) {
	recipes := h.catalog.Search(c.Query("q"), c.Query("category"))
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetCatalogRecipe(c *gin.Context) {
	recipe, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) ListLikedRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"recipes": h.store.LikedRecipes()})
}

func (h *RecipeHandler) ToggleLikeRecipe(c *gin.Context) {
	var recipe models.LikedRecipe
	if err := c.ShouldBindJSON(&recipe); err != nil || recipe.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.store.ToggleLikeRecipe(recipe)
	c.JSON(http.StatusOK, gin.H{
		"id":    recipe.ID,
		"liked": h.store.IsRecipeLiked(recipe.ID),
	})
}

func (h *RecipeHandler) IsRecipeLiked(c *gin.Context) {
	id := c.Param("id")
	c.JSON(http.StatusOK, gin.H{"id": id, "liked": h.store.IsRecipeLiked(id)})
}

func (h *RecipeHandler) ListUserRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"recipes": h.store.UserRecipes()})
}

func (h *RecipeHandler) CreateUserRecipe(c *gin.Context) {
	var recipe models.UserRecipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if recipe.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	// Authoring credits a star inside the store, capped by the ledger.
	id := h.store.AddUserRecipe(recipe)
	created, _ := h.store.UserRecipe(id)
	c.JSON(http.StatusCreated, created)
}

func (h *RecipeHandler) GetUserRecipe(c *gin.Context) {
	recipe, ok := h.store.UserRecipe(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) UpdateUserRecipe(c *gin.Context) {
	id := c.Param("id")
	var update models.UserRecipeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.store.UpdateUserRecipe(id, update)
	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe updated successfully",
		"id":      id,
	})
}

func (h *RecipeHandler) DeleteUserRecipe(c *gin.Context) {
	id := c.Param("id")
	h.store.DeleteUserRecipe(id)
	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe deleted successfully",
		"id":      id,
	})
}

func (h *RecipeHandler) GetProgress(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"completed": h.store.CompletedRecipes(),
		"reviewed":  h.store.ReviewedRecipes(),
	})
}

func (h *RecipeHandler) CompleteRecipe(c *gin.Context) {
	id := c.Param("id")
	h.store.MarkRecipeCompleted(id)
	c.JSON(http.StatusOK, gin.H{"id": id, "completed": h.store.HasCompletedRecipe(id)})
}

// ReviewRecipe enforces the one-review-per-recipe rule at the API boundary;
// the store itself stays permissive.
func (h *RecipeHandler) ReviewRecipe(c *gin.Context) {
	id := c.Param("id")
	if h.store.HasReviewedRecipe(id) {
		c.JSON(http.StatusConflict, gin.H{"error": "recipe already reviewed"})
		return
	}

	h.store.MarkRecipeReviewed(id)
	c.JSON(http.StatusOK, gin.H{"id": id, "reviewed": h.store.HasReviewedRecipe(id)})
}

func (h *RecipeHandler) GetReviewStatus(c *gin.Context) {
	id := c.Param("id")
	c.JSON(http.StatusOK, gin.H{"id": id, "reviewed": h.store.HasReviewedRecipe(id)})
}
