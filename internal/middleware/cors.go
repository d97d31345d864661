package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows browsers on the configured origins to call the API.
// A "*" entry allows any origin.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "X-Requested-With", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
	}

	for _, origin := range allowedOrigins {
		if origin == "*" {
			config.AllowAllOrigins = true
			return cors.New(config)
		}
	}
	if len(allowedOrigins) == 0 {
		config.AllowAllOrigins = true
		return cors.New(config)
	}

	config.AllowOrigins = allowedOrigins
	return cors.New(config)
}
