package handlers

import (
	"net/http"

	"github.com/vcr/payment-service/internal/domain"
	"github.com/vcr/payment-service/internal/service"
	"github.com/vcr/payment-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SubscriptionHandler обработчик операций с подписками
type SubscriptionHandler struct {
	subscriptions service.SubscriptionService
	log           *logger.Logger
}

// NewSubscriptionHandler создает новый обработчик подписок
func NewSubscriptionHandler(subscriptions service.SubscriptionService, log *logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptions: subscriptions,
		log:           log,
	}
}

// CreateSubscription обрабатывает POST /api/v1/subscriptions
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req domain.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, domain.SubscriptionResult{Success: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.subscriptions.Create(c.Request.Context(), req))
}

// UpdateSubscription обрабатывает PUT /api/v1/subscriptions/:id
func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	var req domain.SubscriptionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, domain.Fail(err))
		return
	}

	c.JSON(http.StatusOK, h.subscriptions.Update(c.Request.Context(), c.Param("id"), req))
}

// CancelSubscription обрабатывает DELETE /api/v1/subscriptions/:id.
// Параметр ?immediately=true отменяет подписку сразу, по умолчанию
// отмена откладывается до конца оплаченного периода.
func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	immediately := c.Query("immediately") == "true"
	c.JSON(http.StatusOK, h.subscriptions.Cancel(c.Request.Context(), c.Param("id"), immediately))
}

// GetSubscription обрабатывает GET /api/v1/subscriptions/:id
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	c.JSON(http.StatusOK, h.subscriptions.Get(c.Request.Context(), c.Param("id")))
}
