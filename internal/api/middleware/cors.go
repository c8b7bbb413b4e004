package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	appconfig "github.com/Endogen/antique-catalogue-sub001/internal/config"
)

// CORSMiddleware allows the configured origins. Websocket upgrades bypass
// the CORS handler, which would otherwise reject them.
func CORSMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	allowed := strings.Split(appconfig.CORSAllowOrigins, ",")
	config.AllowOriginFunc = func(origin string) bool {
		for _, entry := range allowed {
			entry = strings.TrimSpace(entry)
			if entry == "*" || entry == origin {
				return true
			}
		}
		return strings.HasPrefix(origin, "http://localhost:")
	}

	corsHandler := cors.New(config)
	return func(c *gin.Context) {
		upgrade := c.GetHeader("Upgrade")
		if strings.ToLower(upgrade) == "websocket" {
			c.Next()
			return
		}
		corsHandler(c)
	}
}
