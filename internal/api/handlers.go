package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cooksync/backend/internal/catalog"
	"github.com/cooksync/backend/internal/middleware"
	"github.com/cooksync/backend/internal/service"
	"github.com/cooksync/backend/internal/store"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "CookSync API is running",
		"version": "v1.0.0",
	})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, st *store.Store, cat *catalog.Catalog, authService *service.AuthService, imageService *service.ImageService) {
	// Health check endpoint (no auth required)
	router.GET("/health", HealthCheck)

	authHandler := NewAuthHandler(st, authService)
	recipeHandler := NewRecipeHandler(st, cat)
	postHandler := NewPostHandler(st)
	messageHandler := NewMessageHandler(st)
	starHandler := NewStarHandler(st)

	v1 := router.Group("/api/v1")

	// Public surface: session entry points and catalog browsing.
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/signup", authHandler.Signup)
	}
	v1.GET("/recipes", recipeHandler.ListCatalog)
	v1.GET("/recipes/:id", recipeHandler.GetCatalogRecipe)
	v1.GET("/posts", postHandler.ListPosts)
	v1.GET("/posts/:id", postHandler.GetPost)

	// Everything else requires a valid session token.
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		authHandler.RegisterRoutes(protected)
		recipeHandler.RegisterRoutes(protected)
		postHandler.RegisterRoutes(protected)
		messageHandler.RegisterRoutes(protected)
		starHandler.RegisterRoutes(protected)

		if imageService != nil {
			NewImageHandler(imageService).RegisterRoutes(protected)
		}
	}
}
