package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// HealthCheck сообщает, что сервис жив, и сколько он работает.
// Готовность отдельно не проверяется: сервис без состояния, а доступность
// Stripe видна по метрикам ошибок провайдера.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "OK",
		"uptime": time.Since(startedAt).Round(time.Second).String(),
		"time":   time.Now().Format(time.RFC3339),
	})
}
