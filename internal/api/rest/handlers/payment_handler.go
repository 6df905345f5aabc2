package handlers

import (
	"net/http"

	"github.com/vcr/payment-service/internal/domain"
	"github.com/vcr/payment-service/internal/service"
	"github.com/vcr/payment-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// PaymentHandler обработчик операций с платежными намерениями.
// Ответы внутренних маршрутов всегда имеют статус 200 и несут конверт
// с флагом success: клиенты различают исходы по конверту.
type PaymentHandler struct {
	payments service.PaymentService
	log      *logger.Logger
}

// NewPaymentHandler создает новый обработчик платежей
func NewPaymentHandler(payments service.PaymentService, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
		log:      log,
	}
}

// CreateIntent обрабатывает POST /api/v1/payments/intent
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req domain.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, domain.Fail(err))
		return
	}

	c.JSON(http.StatusOK, h.payments.CreateIntent(c.Request.Context(), req))
}

// ConfirmIntent обрабатывает POST /api/v1/payments/intent/:id/confirm
func (h *PaymentHandler) ConfirmIntent(c *gin.Context) {
	var req struct {
		PaymentMethodID string `json:"paymentMethodId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, domain.Fail(err))
		return
	}

	c.JSON(http.StatusOK, h.payments.ConfirmIntent(c.Request.Context(), c.Param("id"), req.PaymentMethodID))
}

// GetIntent обрабатывает GET /api/v1/payments/intent/:id
func (h *PaymentHandler) GetIntent(c *gin.Context) {
	c.JSON(http.StatusOK, h.payments.GetIntent(c.Request.Context(), c.Param("id")))
}
