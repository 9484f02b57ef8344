package cart

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// --------------------------------------------------
// Cart snapshot (items + bill)
// --------------------------------------------------
func (h *Handler) GetCart(c *gin.Context) {
	snap, err := h.store.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Amounts are rounded here and nowhere else.
	c.JSON(http.StatusOK, gin.H{
		"items": snap.Items,
		"bill": gin.H{
			"subtotal": snap.Bill.Subtotal.StringFixed(2),
			"tax":      snap.Bill.Tax.StringFixed(2),
			"fee":      snap.Bill.Fee.StringFixed(2),
			"total":    snap.Bill.Total.StringFixed(2),
		},
	})
}

// --------------------------------------------------
// Badge count
// --------------------------------------------------
func (h *Handler) GetCount(c *gin.Context) {
	count, err := h.store.ItemCount(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// --------------------------------------------------
// Add item (display fields captured now)
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	var req struct {
		ID         int64   `json:"id" binding:"required"`
		Name       string  `json:"name" binding:"required"`
		Price      float64 `json:"price"`
		Image      string  `json:"image"`
		Restaurant string  `json:"restaurant"`
		Quantity   int     `json:"quantity"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be non-negative"})
		return
	}

	ref := ItemRef{
		ID:          req.ID,
		Name:        req.Name,
		UnitPrice:   req.Price,
		ImageRef:    req.Image,
		SourceLabel: req.Restaurant,
	}
	if err := h.store.AddItem(c.Request.Context(), ref, req.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	count, err := h.store.ItemCount(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "item added",
		"count":   count,
	})
}

// --------------------------------------------------
// Change quantity
// --------------------------------------------------
// The confirmed flag carries the user's removal approval: a delta that
// would empty the line with confirmed=false changes nothing and comes
// back 409 so the UI can show the confirmation dialog.
func (h *Handler) ChangeQuantity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	var req struct {
		Delta     int  `json:"delta" binding:"required"`
		Confirmed bool `json:"confirmed"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.store.ChangeQuantity(
		c.Request.Context(),
		id,
		req.Delta,
		func(LineItem) bool { return req.Confirmed },
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	switch result {
	case QuantityDeclined:
		c.JSON(http.StatusConflict, gin.H{
			"error":   "confirm_required",
			"message": "removing the last unit deletes the item; retry with confirmed=true",
		})
	case QuantityRemoved:
		c.JSON(http.StatusOK, gin.H{"removed": true})
	case QuantityNotFound:
		// Benign: the entry is already gone, likely removed by another tab.
		c.JSON(http.StatusOK, gin.H{"changed": false})
	default:
		c.JSON(http.StatusOK, gin.H{"changed": true})
	}
}

// --------------------------------------------------
// Clear
// --------------------------------------------------
func (h *Handler) Clear(c *gin.Context) {
	if err := h.store.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

// --------------------------------------------------
// Change feed
// --------------------------------------------------
// SSE stream of change signals, the storage-event analog. Clients showing
// cart contents re-fetch the snapshot on each event.
func (h *Handler) Events(c *gin.Context) {
	ch, err := h.store.Subscribe(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Stream(func(w io.Writer) bool {
		if _, ok := <-ch; !ok {
			return false
		}
		c.SSEvent("change", StorageKey)
		return true
	})
}
