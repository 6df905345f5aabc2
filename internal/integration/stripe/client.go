package stripe

import (
	"context"
	"errors"
	"net/http"

	"github.com/vcr/payment-service/internal/domain"
	"github.com/vcr/payment-service/pkg/logger"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

// Gateway определяет операции взаимодействия со Stripe API.
// Каждый метод выполняет ровно один вызов провайдера (исключение —
// UpdateSubscription со сменой цены, см. комментарий к методу) и
// возвращает копию нужных полей, а не объект SDK.
type Gateway interface {
	CreatePaymentIntent(ctx context.Context, req domain.PaymentIntentRequest) (*domain.PaymentIntent, error)
	ConfirmPaymentIntent(ctx context.Context, id, paymentMethodID string) (*domain.PaymentIntent, error)
	RetrievePaymentIntent(ctx context.Context, id string) (*domain.PaymentIntent, error)

	CreateCheckoutSession(ctx context.Context, params domain.CheckoutParams) (*domain.CheckoutSession, error)
	RetrieveCheckoutSession(ctx context.Context, id string) (*domain.CheckoutSession, error)

	CreateCustomer(ctx context.Context, req domain.CustomerRequest) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, id string, req domain.CustomerUpdateRequest) (*domain.Customer, error)
	RetrieveCustomer(ctx context.Context, id string) (*domain.Customer, error)

	CreateSubscription(ctx context.Context, req domain.SubscriptionRequest) (*domain.Subscription, string, error)
	UpdateSubscription(ctx context.Context, id string, req domain.SubscriptionUpdateRequest) (*domain.Subscription, error)
	CancelSubscription(ctx context.Context, id string, immediately bool) (*domain.Subscription, error)
	RetrieveSubscription(ctx context.Context, id string) (*domain.Subscription, error)

	RetrievePrice(ctx context.Context, id string) (*domain.Price, error)
	ListPrices(ctx context.Context, productID string, activeOnly bool) (*domain.PriceList, error)
}

// Config конфигурация для клиента Stripe
type Config struct {
	APIKey        string
	WebhookSecret string
}

// Client реализует Gateway поверх официального SDK Stripe
type Client struct {
	api           *client.API
	webhookSecret string
	log           *logger.Logger
}

// NewClient создает новый клиент Stripe
func NewClient(cfg Config, log *logger.Logger) *Client {
	api := &client.API{}
	api.Init(cfg.APIKey, nil)

	return &Client{
		api:           api,
		webhookSecret: cfg.WebhookSecret,
		log:           log,
	}
}

// WebhookSecret возвращает секрет для верификации вебхуков
func (c *Client) WebhookSecret() string {
	return c.webhookSecret
}

// mapError преобразует ошибку SDK в доменную ошибку с закрытым тегом.
// Тег назначается здесь один раз; выше по стеку текст сообщения
// больше не анализируется.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return domain.NewProviderError(domain.ErrUpstream, "", err.Error(), "", 0, err)
	}

	kind := domain.ErrUpstream
	switch {
	case stripeErr.HTTPStatusCode == http.StatusUnauthorized || stripeErr.HTTPStatusCode == http.StatusForbidden:
		kind = domain.ErrAuth
	case stripeErr.HTTPStatusCode == http.StatusTooManyRequests:
		kind = domain.ErrRateLimited
	case stripeErr.Code == stripe.ErrorCodeResourceMissing:
		kind = domain.ErrNotFound
	case stripeErr.Type == stripe.ErrorTypeInvalidRequest:
		kind = domain.ErrValidation
	}

	return domain.NewProviderError(kind, string(stripeErr.Code), stripeErr.Msg, stripeErr.RequestID, stripeErr.HTTPStatusCode, err)
}

// logStripeError логирует детали ошибки Stripe
func logStripeError(log *logger.Logger, operation string, err error) {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		log.Errorw("Stripe API error",
			"operation", operation,
			"type", string(stripeErr.Type),
			"code", string(stripeErr.Code),
			"param", stripeErr.Param,
			"message", stripeErr.Msg,
			"request_id", stripeErr.RequestID,
			"status_code", stripeErr.HTTPStatusCode,
		)
	} else {
		log.Errorw("Non-Stripe error during Stripe operation",
			"operation", operation,
			"error", err,
		)
	}
}
