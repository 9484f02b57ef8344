package order

import (
	"errors"
	"net/http"

	"deliciae/internal/rest"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

// --------------------------------------------------
// Orders view (active + history + spend stats)
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	orders, err := h.client.List(c.Request.Context())
	if err != nil {
		var restErr *rest.Error
		if errors.As(err, &restErr) {
			c.JSON(http.StatusBadGateway, gin.H{"error": restErr.Body})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	active, history := Split(orders)
	stats := StatsFor(history)

	c.JSON(http.StatusOK, gin.H{
		"active":  renderOrders(active),
		"history": renderOrders(history),
		"stats": gin.H{
			"total_orders": stats.TotalOrders,
			"total_spent":  stats.TotalSpent.StringFixed(2),
		},
	})
}

func renderOrders(orders []Order) []gin.H {
	out := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		out = append(out, gin.H{
			"id":                  o.ID,
			"restaurant":          o.Restaurant,
			"restaurant_name":     o.RestaurantName,
			"restaurant_location": o.RestaurantLocation,
			"status":              o.Status,
			"total_amount":        o.TotalAmount.StringFixed(2),
			"created_at":          o.CreatedAt,
			"items":               GroupItems(o.ItemsDetails),
		})
	}
	return out
}
