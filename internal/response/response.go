package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// All services speak plain JSON bodies: resources (or arrays of them) on
// success, {"error": "..."} on failure. Callers distinguish failure kinds
// by status code only.

// JSON sends the payload as-is with the given status code.
func JSON(c *gin.Context, statusCode int, payload interface{}) {
	c.JSON(statusCode, payload)
}

// Error sends {"error": message}.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// ValidationError sends a 400 with field-level details from the validator.
func ValidationError(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
}
