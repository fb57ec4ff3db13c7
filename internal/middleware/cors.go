package middleware

import (
	"github.com/Cj170303/PPIA-Pro/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS lets configured origins call the /app JSON endpoints with the
// session cookie.
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	})
}
