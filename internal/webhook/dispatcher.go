package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vcr/payment-service/pkg/logger"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/webhook"
)

// Ошибки диспетчеризации. Транспортный слой сопоставляет их со статусами
// ответа провайдеру: ошибки подписи не обрабатываются и получают 400,
// ошибки обработчиков получают 500, чтобы провайдер повторил доставку.
var (
	// ErrMissingSignature в запросе нет заголовка с подписью
	ErrMissingSignature = errors.New("missing webhook signature header")

	// ErrInvalidSignature подпись не прошла верификацию
	ErrInvalidSignature = errors.New("webhook signature verification failed")

	// ErrSecretNotConfigured секрет вебхука не задан в конфигурации
	ErrSecretNotConfigured = errors.New("webhook secret is not configured")

	// ErrHandlerFailed обработчик события завершился с ошибкой
	ErrHandlerFailed = errors.New("webhook event handler failed")
)

// Ack результат успешной диспетчеризации события
type Ack struct {
	EventID   string
	EventType string
	Handled   bool
}

// Dispatcher проверяет подпись входящего события и вызывает обработчик
// по типу события. Неизвестные типы подтверждаются без обработки:
// провайдеру незачем повторять доставку события, которое сервису
// не интересно.
type Dispatcher struct {
	secret   string
	handlers Handlers
	log      *logger.Logger
}

// NewDispatcher создает новый диспетчер вебхук-событий
func NewDispatcher(secret string, handlers Handlers, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		secret:   secret,
		handlers: handlers,
		log:      log,
	}
}

// Dispatch верифицирует payload по заголовку подписи и вызывает
// обработчик события. Событие не обрабатывается до успешной
// верификации: принять неподписанное событие значило бы доверять
// поддельным платежным уведомлениям.
func (d *Dispatcher) Dispatch(ctx context.Context, payload []byte, sigHeader string) (Ack, error) {
	if d.secret == "" {
		return Ack{}, ErrSecretNotConfigured
	}
	if sigHeader == "" {
		return Ack{}, ErrMissingSignature
	}

	event, err := webhook.ConstructEvent(payload, sigHeader, d.secret)
	if err != nil {
		d.log.Warnw("Webhook signature verification failed", "error", err)
		return Ack{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	d.log.Infow("Webhook event received", "event_id", event.ID, "type", string(event.Type))

	handled, err := d.dispatchByType(ctx, event)
	if err != nil {
		d.log.Errorw("Webhook event handling failed", "event_id", event.ID, "type", string(event.Type), "error", err)
		return Ack{}, fmt.Errorf("%w: %v", ErrHandlerFailed, err)
	}

	return Ack{EventID: event.ID, EventType: string(event.Type), Handled: handled}, nil
}

func (d *Dispatcher) dispatchByType(ctx context.Context, event stripe.Event) (bool, error) {
	switch string(event.Type) {
	case "payment_intent.succeeded":
		if d.handlers.Payment == nil {
			return false, nil
		}
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return false, fmt.Errorf("parse payment intent: %w", err)
		}
		return true, d.handlers.Payment.HandlePaymentSucceeded(ctx, &pi)

	case "payment_intent.payment_failed":
		if d.handlers.Payment == nil {
			return false, nil
		}
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return false, fmt.Errorf("parse payment intent: %w", err)
		}
		return true, d.handlers.Payment.HandlePaymentFailed(ctx, &pi)

	case "customer.subscription.created", "customer.subscription.updated", "customer.subscription.deleted":
		if d.handlers.Subscription == nil {
			return false, nil
		}
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return false, fmt.Errorf("parse subscription: %w", err)
		}
		switch string(event.Type) {
		case "customer.subscription.created":
			return true, d.handlers.Subscription.HandleSubscriptionCreated(ctx, &sub)
		case "customer.subscription.updated":
			return true, d.handlers.Subscription.HandleSubscriptionUpdated(ctx, &sub)
		default:
			return true, d.handlers.Subscription.HandleSubscriptionDeleted(ctx, &sub)
		}

	case "invoice.payment_succeeded", "invoice.payment_failed":
		if d.handlers.Invoice == nil {
			return false, nil
		}
		var inv stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
			return false, fmt.Errorf("parse invoice: %w", err)
		}
		if string(event.Type) == "invoice.payment_succeeded" {
			return true, d.handlers.Invoice.HandleInvoicePaymentSucceeded(ctx, &inv)
		}
		return true, d.handlers.Invoice.HandleInvoicePaymentFailed(ctx, &inv)

	case "checkout.session.completed":
		if d.handlers.Checkout == nil {
			return false, nil
		}
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return false, fmt.Errorf("parse checkout session: %w", err)
		}
		return true, d.handlers.Checkout.HandleCheckoutCompleted(ctx, &sess)

	case "customer.created":
		if d.handlers.Customer == nil {
			return false, nil
		}
		var cus stripe.Customer
		if err := json.Unmarshal(event.Data.Raw, &cus); err != nil {
			return false, fmt.Errorf("parse customer: %w", err)
		}
		return true, d.handlers.Customer.HandleCustomerCreated(ctx, &cus)

	case "price.created", "price.updated":
		if d.handlers.Price == nil {
			return false, nil
		}
		var price stripe.Price
		if err := json.Unmarshal(event.Data.Raw, &price); err != nil {
			return false, fmt.Errorf("parse price: %w", err)
		}
		if string(event.Type) == "price.created" {
			return true, d.handlers.Price.HandlePriceCreated(ctx, &price)
		}
		return true, d.handlers.Price.HandlePriceUpdated(ctx, &price)

	default:
		d.log.Debugw("Ignoring webhook event type", "type", string(event.Type))
		return false, nil
	}
}
