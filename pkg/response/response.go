package response

import (
	"github.com/gin-gonic/gin"
)

// The API speaks the same wire shapes as the original service: success
// payloads are returned as-is and failures are a flat {"error": message}
// object. Keep handlers going through these helpers so the shapes stay
// uniform.

type errorBody struct {
	Error string `json:"error"`
}

// JSON writes a success payload verbatim.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// Message writes {"message": msg}.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// Error writes {"error": msg}.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, errorBody{Error: msg})
}

// AbortError writes {"error": msg} and aborts the handler chain.
// For use inside middleware.
func AbortError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, errorBody{Error: msg})
}
