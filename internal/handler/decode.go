package handler

import (
	"net/http"
	"strings"

	"uule-converter/internal/models"

	"github.com/gin-gonic/gin"
)

// DecodeHandler handles token decoding requests
type DecodeHandler struct {
	service DecodeService
}

// DecodeService interface for dependency injection
type DecodeService interface {
	Decode(string) (*models.DecodedToken, error)
}

// NewDecodeHandler creates a new decode handler
func NewDecodeHandler(svc DecodeService) *DecodeHandler {
	return &DecodeHandler{service: svc}
}

// Decode handles GET /decode requests
func (h *DecodeHandler) Decode(c *gin.Context) {
	// Tokens are usually pasted unescaped, so query parsing turns their '+' into ' '.
	// Base64-URL never contains spaces.
	token := strings.ReplaceAll(c.Query("token"), " ", "+")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'token'"})
		return
	}

	decoded, err := h.service.Decode(token)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, decoded)
}
