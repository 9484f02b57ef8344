package checkout

import (
	"errors"
	"net/http"

	"deliciae/internal/logging"
	"deliciae/internal/rest"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Place order
// --------------------------------------------------
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req struct {
		Mode Mode `json:"mode"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Mode == "" {
		req.Mode = ModeDelivery
	}

	placed, err := h.service.PlaceOrder(c.Request.Context(), req.Mode)
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Pass the collaborator's rejection through so the user sees the
		// real reason, not a generic failure.
		var restErr *rest.Error
		if errors.As(err, &restErr) {
			logging.From(c).Error("order submission rejected",
				"status", restErr.Status, "detail", restErr.Body)
			c.JSON(restErr.Status, gin.H{"error": "order rejected", "detail": restErr.Body})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "order placed",
		"order_id": placed.ID,
		"status":   placed.Status,
	})
}
