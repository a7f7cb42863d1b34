package handler

import (
	"errors"
	"net/http"

	"uule-converter/internal/service"
	"uule-converter/internal/uule"

	"github.com/gin-gonic/gin"
)

// respondError writes caller mistakes as 400 with the reason, anything else as 500
func respondError(c *gin.Context, err error) {
	var codecErr *uule.Error
	switch {
	case errors.As(err, &codecErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": codecErr.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
