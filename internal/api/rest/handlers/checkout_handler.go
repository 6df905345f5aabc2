package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/vcr/payment-service/internal/catalog"
	"github.com/vcr/payment-service/internal/domain"
	"github.com/vcr/payment-service/internal/metrics"
	"github.com/vcr/payment-service/internal/service"
	"github.com/vcr/payment-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler обработчик публичного endpoint создания checkout-сессий
type CheckoutHandler struct {
	checkout service.CheckoutService
	catalog  *catalog.Catalog
	metrics  metrics.PaymentMetrics
	log      *logger.Logger
}

// NewCheckoutHandler создает новый обработчик checkout-сессий
func NewCheckoutHandler(checkout service.CheckoutService, cat *catalog.Catalog, m metrics.PaymentMetrics, log *logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		catalog:  cat,
		metrics:  m,
		log:      log,
	}
}

// CreateSession обрабатывает POST /api/create-checkout-session.
// Контракт ошибок фиксирован: клиенты различают коды, а не текст.
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.log.Warnw("Failed to read request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "INVALID_JSON",
			"message": "Request body must be valid JSON",
		})
		return
	}

	var req domain.CheckoutSessionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			// JSON синтаксически корректен, но поле имеет не тот тип
			h.respondInvalidRequest(c)
			return
		}
		h.log.Warnw("Invalid JSON in request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "INVALID_JSON",
			"message": "Request body must be valid JSON",
		})
		return
	}

	// Публичная поверхность продает тарифы каталога; чужая цена - признак
	// рассинхронизации фронтенда с конфигурацией
	if !h.catalog.KnownPriceID(req.PriceID) {
		h.log.Warnw("Checkout requested for price outside the catalog", "price_id", req.PriceID)
	}

	sess, err := h.checkout.StartSession(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, req, err)
		return
	}

	h.metrics.IncCheckoutSession(sess.Mode, "success")
	c.JSON(http.StatusOK, gin.H{
		"sessionId": sess.ID,
		"url":       sess.URL,
	})
}

// GetSession обрабатывает GET /api/v1/checkout-sessions/:id
func (h *CheckoutHandler) GetSession(c *gin.Context) {
	result := h.checkout.GetSession(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, result)
}

func (h *CheckoutHandler) respondError(c *gin.Context, req domain.CheckoutSessionRequest, err error) {
	mode := string(req.Mode)
	if mode == "" {
		mode = string(domain.CheckoutModePayment)
	}
	h.metrics.IncCheckoutSession(mode, "error")

	var validationErrs domain.ValidationErrors
	if errors.As(err, &validationErrs) {
		h.respondInvalidRequest(c)
		return
	}

	var providerErr *domain.ProviderError
	if errors.As(err, &providerErr) {
		h.metrics.IncProviderError(providerErr.Kind.Error())

		switch {
		case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrNotFound):
			// resource_missing (несуществующий priceId) для клиента та же
			// ошибка запроса, что и невалидные параметры
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "STRIPE_INVALID_REQUEST",
				"message": providerErr.Message,
			})
		case errors.Is(err, domain.ErrAuth):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "STRIPE_AUTH_ERROR",
				"message": "Payment processor authentication failed",
			})
		case errors.Is(err, domain.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "RATE_LIMIT_ERROR",
				"message": "Too many requests. Please try again later.",
			})
		case errors.Is(err, domain.ErrConfig):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "SERVER_CONFIG_ERROR",
				"message": "Payment system configuration error",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "STRIPE_ERROR",
				"message": "Failed to create checkout session",
			})
		}
		return
	}

	if errors.Is(err, domain.ErrConfig) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "SERVER_CONFIG_ERROR",
			"message": "Payment system configuration error",
		})
		return
	}

	h.log.Errorw("Unexpected error creating checkout session", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "INTERNAL_SERVER_ERROR",
		"message": "An unexpected error occurred while creating the checkout session",
	})
}

func (h *CheckoutHandler) respondInvalidRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "INVALID_REQUEST",
		"message": "Request body validation failed. Required: priceId (string). Optional: quantity (number), metadata (object), customerId (string), customerEmail (string), mode (payment|subscription|setup)",
	})
}
