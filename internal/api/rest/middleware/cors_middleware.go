package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware проставляет CORS-заголовки на каждый ответ и отвечает
// на preflight-запросы. Запрос с Origin вне списка разрешенных
// отклоняется с 403 до чтения тела; запрос без Origin (same-origin,
// curl, серверные вызовы) пропускается.
func CORSMiddleware(appURL string, allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", appURL)
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		origin := c.GetHeader("Origin")
		if origin != "" && !allowed[origin] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "FORBIDDEN",
				"message": "Request from unauthorized origin",
			})
			return
		}

		c.Next()
	}
}
