package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/vcr/payment-service/internal/metrics"
	"github.com/vcr/payment-service/internal/webhook"
	"github.com/vcr/payment-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// maxWebhookBodySize предел размера тела вебхука. Счета с большим числом
// строк дают события в сотни килобайт, поэтому предел заметно выше
// типичного события.
const maxWebhookBodySize = 1 << 20

// WebhookHandler обработчик входящих вебхуков Stripe
type WebhookHandler struct {
	dispatcher *webhook.Dispatcher
	metrics    metrics.PaymentMetrics
	log        *logger.Logger
}

// NewWebhookHandler создает новый обработчик вебхуков
func NewWebhookHandler(dispatcher *webhook.Dispatcher, m metrics.PaymentMetrics, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		dispatcher: dispatcher,
		metrics:    m,
		log:        log,
	}
}

// HandleStripeWebhook обрабатывает POST /api/webhooks/stripe.
// Тело читается сырым: верификация подписи требует байт ровно в том
// виде, в котором их отправил Stripe.
func (h *WebhookHandler) HandleStripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodySize))
	if err != nil {
		h.log.Warnw("Failed to read webhook body", "error", err)
		h.metrics.IncWebhookEvent("unknown", "read_error")
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	sigHeader := c.GetHeader("Stripe-Signature")

	ack, err := h.dispatcher.Dispatch(c.Request.Context(), payload, sigHeader)
	if err != nil {
		switch {
		case errors.Is(err, webhook.ErrMissingSignature), errors.Is(err, webhook.ErrInvalidSignature):
			h.metrics.IncWebhookEvent("unknown", "signature_error")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		case errors.Is(err, webhook.ErrSecretNotConfigured):
			h.metrics.IncWebhookEvent("unknown", "config_error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "webhook secret not configured"})
		default:
			// 500 сигнализирует провайдеру о необходимости повторной доставки
			h.metrics.IncWebhookEvent("unknown", "handler_error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "webhook processing failed"})
		}
		return
	}

	h.metrics.IncWebhookEvent(ack.EventType, "success")
	c.JSON(http.StatusOK, gin.H{
		"received": true,
		"eventId":  ack.EventID,
	})
}
