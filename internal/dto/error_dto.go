package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string `json:"error" example:"Bad Gateway"`
	Message string `json:"message,omitempty" example:"No autenticado"`
}

// JsonError writes an ErrorResponse and stops the handler chain.
func JsonError(c *gin.Context, status int, message ...string) {
	msg := ""
	if len(message) > 0 {
		msg = message[0]
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: msg,
	})
}
