package catalog

import (
	"net/http"
	"strconv"

	"deliciae/internal/geo"
	"deliciae/internal/logging"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	client *Client
	geo    *geo.Client
}

func NewHandler(client *Client, geoClient *geo.Client) *Handler {
	return &Handler{client: client, geo: geoClient}
}

// --------------------------------------------------
// Nearby discovery
// --------------------------------------------------
// Accepts either coordinates (?lat&lng) or a city name (?city), which is
// forward-geocoded first. Default radius 20km, same as the web client.
func (h *Handler) Nearby(c *gin.Context) {
	radius := 20.0
	if v := c.Query("radius"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius"})
			return
		}
		radius = parsed
	}

	var lat, lng float64
	switch {
	case c.Query("lat") != "" && c.Query("lng") != "":
		var err1, err2 error
		lat, err1 = strconv.ParseFloat(c.Query("lat"), 64)
		lng, err2 = strconv.ParseFloat(c.Query("lng"), 64)
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
			return
		}

	case c.Query("city") != "":
		places, err := h.geo.Search(c.Request.Context(), c.Query("city"))
		if err != nil {
			logging.From(c).Error("geocode failed", "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "geocoding failed"})
			return
		}
		if len(places) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "city not found"})
			return
		}
		lat, lng = places[0].Lat, places[0].Lon

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat/lng or city is required"})
		return
	}

	listings, err := h.client.NearbyRestaurants(c.Request.Context(), lat, lng, radius)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": listings})
}

// --------------------------------------------------
// Full-list search (no-GPS fallback)
// --------------------------------------------------
func (h *Handler) Search(c *gin.Context) {
	listings, err := h.client.SearchRestaurants(c.Request.Context(), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": listings})
}

// --------------------------------------------------
// Single dish lookup
// --------------------------------------------------
func (h *Handler) GetFoodItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	item, err := h.client.GetFoodItem(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}
