package api

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cooksync/backend/internal/service"
)

const maxImageSize = 5 << 20 // 5 MiB

// ImageHandler accepts thumbnail/profile image uploads and returns the
// public URL to store on the recipe or profile.
type ImageHandler struct {
	imageService *service.ImageService
}

func NewImageHandler(imageService *service.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// RegisterRoutes registers the authenticated image routes.
func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/images", h.Upload)
	router.GET("/images/url", h.SignedURL)
}

func (h *ImageHandler) Upload(c *gin.Context) {
	kind := c.DefaultPostForm("kind", service.ImageKindRecipe)
	switch kind {
	case service.ImageKindRecipe, service.ImageKindProfile, service.ImageKindPost:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image kind"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image too large"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}

	url, err := h.imageService.Upload(c.Request.Context(), kind, data, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}

// SignedURL hands out a short-lived download URL for a stored object key.
func (h *ImageHandler) SignedURL(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key is required"})
		return
	}

	url, err := h.imageService.SignedURL(c.Request.Context(), key, 15*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign url"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
