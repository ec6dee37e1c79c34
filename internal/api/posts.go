package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cooksync/backend/internal/models"
	"github.com/cooksync/backend/internal/store"
)

// PostHandler serves the N-bbang marketplace listings and the liked-posts
// collection.
type PostHandler struct {
	store *store.Store
}

func NewPostHandler(st *store.Store) *PostHandler {
	return &PostHandler{store: st}
}

// RegisterRoutes registers the authenticated marketplace routes.
func (h *PostHandler) RegisterRoutes(router *gin.RouterGroup) {
	posts := router.Group("/posts")
	{
		posts.POST("", h.CreatePost)
		posts.PUT("/:id", h.UpdatePost)
		posts.DELETE("/:id", h.DeletePost)
		posts.POST("/:id/like", h.ToggleLikePost)
	}

	router.GET("/liked-posts", h.ListLikedPosts)
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"posts": h.store.UserPosts()})
}

func (h *PostHandler) GetPost(c *gin.Context) {
	post, ok := h.store.UserPost(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	var post models.UserPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if post.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	id := h.store.AddUserPost(post)
	created, _ := h.store.UserPost(id)
	c.JSON(http.StatusCreated, created)
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	id := c.Param("id")
	var update models.UserPostUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if update.Status != nil &&
		*update.Status != models.PostAvailable && *update.Status != models.PostCompleted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	h.store.UpdateUserPost(id, update)
	c.JSON(http.StatusOK, gin.H{
		"message": "Post updated successfully",
		"id":      id,
	})
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	id := c.Param("id")
	h.store.DeleteUserPost(id)
	c.JSON(http.StatusOK, gin.H{
		"message": "Post deleted successfully",
		"id":      id,
	})
}

// ToggleLikePost toggles membership in the liked set. The request may carry
// the full listing for posts that only exist client-side; otherwise the id
// is resolved against the stored listings.
func (h *PostHandler) ToggleLikePost(c *gin.Context) {
	id := c.Param("id")

	var post models.UserPost
	if err := c.ShouldBindJSON(&post); err != nil || post.ID != id {
		stored, ok := h.store.UserPost(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		post = stored
	}

	h.store.ToggleLikePost(post)
	c.JSON(http.StatusOK, gin.H{
		"id":    id,
		"liked": h.store.IsPostLiked(id),
	})
}

func (h *PostHandler) ListLikedPosts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"posts": h.store.LikedPosts()})
}
