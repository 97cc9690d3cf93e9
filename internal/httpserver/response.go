package httpserver

import (
	"errors"
	"net/http"

	"ai-store/internal/domain"
	authsvc "ai-store/internal/service/auth"
	ordersvc "ai-store/internal/service/order"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the API's status codes. Anything
// unrecognized is a 500; the payload shape is always {"error": "..."}.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "Already exists"})
	case errors.Is(err, authsvc.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, authsvc.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
	case errors.Is(err, authsvc.ErrValidation),
		errors.Is(err, ordersvc.ErrEmptyOrder),
		errors.Is(err, ordersvc.ErrInvalidItem),
		errors.Is(err, ordersvc.ErrEmptyStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
