package handlers

import (
	"errors"

	"github.com/davidkiptoo/safarigo-backend/internal/booking"
	"github.com/gin-gonic/gin"
)

// respondError maps engine errors onto HTTP status codes: 400 for bad input,
// 404 for missing identities, 409 for state conflicts, 500 for everything
// else. Conflicts get their own code on purpose so clients can tell "no such
// ride" from "ride already taken".
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrValidation):
		c.JSON(400, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrNotFound):
		c.JSON(404, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrConflict):
		c.JSON(409, gin.H{"error": err.Error()})
	default:
		c.JSON(500, gin.H{"error": "internal server error"})
	}
}
