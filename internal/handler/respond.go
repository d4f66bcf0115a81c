package handler

import (
	"errors"
	"net/http"

	"dooo/internal/assign"
	"dooo/internal/logger"
	"dooo/internal/service"

	"github.com/gin-gonic/gin"
)

// fail maps service errors onto the HTTP taxonomy: known conditions get their
// status, everything else becomes a generic 500 with a log line.
func fail(c *gin.Context, err error, internalMsg string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, assign.ErrAlreadyCompleted):
		c.JSON(http.StatusConflict, gin.H{"error": "todo is fully completed; delete it instead"})
	default:
		logger.Error(internalMsg, "err", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalMsg})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
