package metrics

import (
	"github.com/vcr/payment-service/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PaymentMetrics интерфейс для метрик платежных операций
type PaymentMetrics interface {
	IncCheckoutSession(mode, outcome string)
	IncWebhookEvent(eventType, outcome string)
	IncProviderError(kind string)
	ObserveCheckoutAmount(amount float64, currency string)
}

type paymentMetrics struct {
	log              *logger.Logger
	checkoutSessions *prometheus.CounterVec
	webhookEvents    *prometheus.CounterVec
	providerErrors   *prometheus.CounterVec
	checkoutAmount   *prometheus.HistogramVec
}

// NewPaymentMetrics создает новые метрики платежных операций
func NewPaymentMetrics(registry *prometheus.Registry, log *logger.Logger) PaymentMetrics {
	checkoutSessions := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_sessions_total",
			Help: "The total number of checkout sessions by mode and outcome",
		},
		[]string{"mode", "outcome"},
	)

	webhookEvents := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_events_total",
			Help: "The total number of webhook events by type and outcome",
		},
		[]string{"type", "outcome"},
	)

	providerErrors := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_errors_total",
			Help: "The total number of payment provider errors by kind",
		},
		[]string{"kind"},
	)

	checkoutAmount := promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "checkout_amount",
			Help:    "Checkout amounts distribution in minor currency units",
			Buckets: prometheus.ExponentialBuckets(100, 10, 5), // 100, 1000, ..., 1000000
		},
		[]string{"currency"},
	)

	return &paymentMetrics{
		log:              log,
		checkoutSessions: checkoutSessions,
		webhookEvents:    webhookEvents,
		providerErrors:   providerErrors,
		checkoutAmount:   checkoutAmount,
	}
}

// IncCheckoutSession увеличивает счетчик checkout-сессий
func (m *paymentMetrics) IncCheckoutSession(mode, outcome string) {
	m.checkoutSessions.WithLabelValues(mode, outcome).Inc()
}

// IncWebhookEvent увеличивает счетчик вебхук-событий
func (m *paymentMetrics) IncWebhookEvent(eventType, outcome string) {
	m.webhookEvents.WithLabelValues(eventType, outcome).Inc()
}

// IncProviderError увеличивает счетчик ошибок провайдера
func (m *paymentMetrics) IncProviderError(kind string) {
	m.providerErrors.WithLabelValues(kind).Inc()
}

// ObserveCheckoutAmount записывает сумму checkout-сессии
func (m *paymentMetrics) ObserveCheckoutAmount(amount float64, currency string) {
	m.checkoutAmount.WithLabelValues(currency).Observe(amount)
}
