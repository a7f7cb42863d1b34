package handler

import (
	"net/http"
	"strconv"

	"uule-converter/internal/models"

	"github.com/gin-gonic/gin"
)

// EncodeHandler handles token encoding requests
type EncodeHandler struct {
	service EncodeService
}

// EncodeService interface for dependency injection
type EncodeService interface {
	EncodePlace(string) (string, error)
	EncodePoint(models.PointRequest) (string, error)
}

// NewEncodeHandler creates a new encode handler
func NewEncodeHandler(svc EncodeService) *EncodeHandler {
	return &EncodeHandler{service: svc}
}

// EncodePlace handles GET /v1/encode requests
func (h *EncodeHandler) EncodePlace(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'name'"})
		return
	}

	token, err := h.service.EncodePlace(name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Token{Token: token})
}

// EncodePoint handles GET /v2/encode requests
func (h *EncodeHandler) EncodePoint(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lon'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	req := models.PointRequest{Latitude: lat, Longitude: lon}

	if v, ok := c.GetQuery("radius"); ok {
		radius, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius format"})
			return
		}
		r := int32(radius)
		req.Radius = &r
	}

	if v, ok := c.GetQuery("provenance"); ok {
		provenance, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid provenance format"})
			return
		}
		p := int32(provenance)
		req.Provenance = &p
	}

	if v, ok := c.GetQuery("timestamp"); ok {
		req.Timestamp = &v
	}

	token, err := h.service.EncodePoint(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Token{Token: token})
}
