package middleware

import (
	"net/http"
	"strings"

	"github.com/Cj170303/PPIA-Pro/internal/dto"
	"github.com/Cj170303/PPIA-Pro/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers panics and logs errors attached to the context.
// JSON routes under /app get an ErrorResponse; pages get a plain 500.
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic recovered", "path", c.Request.URL.Path, "panic", rec)
				fail(c, http.StatusInternalServerError)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last()
		log.Error("request error", "path", c.Request.URL.Path, "error", err.Err)

		if c.Writer.Written() {
			return
		}
		statusCode := c.Writer.Status()
		if statusCode == http.StatusOK {
			statusCode = http.StatusInternalServerError
		}
		fail(c, statusCode)
	}
}

func fail(c *gin.Context, status int) {
	if strings.HasPrefix(c.Request.URL.Path, "/app/") {
		dto.JsonError(c, status)
		return
	}
	c.AbortWithStatus(status)
}
