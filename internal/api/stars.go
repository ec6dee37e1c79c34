package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cooksync/backend/internal/store"
)

type EarnStarsRequest struct {
	Amount int    `json:"amount" binding:"required,min=1"`
	Reason string `json:"reason" binding:"required,oneof=cook recipe"`
}

// StarHandler serves the gamification ledger.
type StarHandler struct {
	store *store.Store
}

func NewStarHandler(st *store.Store) *StarHandler {
	return &StarHandler{store: st}
}

// RegisterRoutes registers the authenticated star routes.
func (h *StarHandler) RegisterRoutes(router *gin.RouterGroup) {
	stars := router.Group("/stars")
	{
		stars.POST("", h.EarnStars)
		stars.GET("/level", h.GetStarLevel)
	}
}

// EarnStars attempts a grant. A capped-away request is still a 200; granted
// reports whether any star landed.
func (h *StarHandler) EarnStars(c *gin.Context) {
	var req EarnStarsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	granted := h.store.EarnStars(req.Amount, req.Reason)

	resp := gin.H{"granted": granted, "level": h.store.StarLevel()}
	if user := h.store.User(); user != nil {
		resp["stars"] = user.Stars
		resp["todayStars"] = user.TodayStars
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StarHandler) GetStarLevel(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"level": h.store.StarLevel()})
}
