package reels

import (
	"errors"
	"net/http"
	"strconv"

	"deliciae/internal/rest"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) List(c *gin.Context) {
	feed, err := h.client.List(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reels": feed})
}

func (h *Handler) Like(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reel id"})
		return
	}

	count, err := h.client.Like(c.Request.Context(), id)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes_count": count})
}

func (h *Handler) ToggleFollow(c *gin.Context) {
	var req struct {
		RestaurantID int64 `json:"restaurant_id" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_id is required"})
		return
	}

	followed, err := h.client.ToggleFollow(c.Request.Context(), req.RestaurantID)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	status := "unfollowed"
	if followed {
		status = "followed"
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

func respondUpstreamError(c *gin.Context, err error) {
	var restErr *rest.Error
	if errors.As(err, &restErr) {
		c.JSON(restErr.Status, gin.H{"error": restErr.Body})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}
