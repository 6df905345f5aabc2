package webhook

import (
	"context"

	"github.com/vcr/payment-service/internal/kafka"
	"github.com/vcr/payment-service/pkg/logger"

	"github.com/stripe/stripe-go/v78"
)

// EventRecorder реализация всех групп обработчиков: логирует событие и
// публикует нормализованную запись в Kafka для подписчиков (биллинг,
// аналитика). Локального состояния у сервиса нет, провайдер остается
// единственным источником истины.
type EventRecorder struct {
	producer kafka.Producer
	log      *logger.Logger
}

// NewEventRecorder создает обработчик событий. producer может быть
// kafka.NopProducer, тогда события только логируются.
func NewEventRecorder(producer kafka.Producer, log *logger.Logger) *EventRecorder {
	return &EventRecorder{
		producer: producer,
		log:      log,
	}
}

// DefaultHandlers собирает EventRecorder в набор для диспетчера
func DefaultHandlers(producer kafka.Producer, log *logger.Logger) Handlers {
	rec := NewEventRecorder(producer, log)
	return Handlers{
		Payment:      rec,
		Subscription: rec,
		Invoice:      rec,
		Checkout:     rec,
		Customer:     rec,
		Price:        rec,
	}
}

// HandlePaymentSucceeded обрабатывает успешный платеж
func (r *EventRecorder) HandlePaymentSucceeded(ctx context.Context, pi *stripe.PaymentIntent) error {
	r.log.Infow("Payment succeeded", "intent_id", pi.ID, "amount", pi.Amount, "currency", string(pi.Currency))

	event := kafka.NewEvent("payment.succeeded", pi.ID)
	event.ProviderID = pi.ID
	event.Amount = pi.Amount
	event.Currency = string(pi.Currency)
	event.Status = string(pi.Status)
	event.Metadata = pi.Metadata
	return r.producer.Publish(kafka.TopicPaymentSucceeded, event)
}

// HandlePaymentFailed обрабатывает неуспешный платеж
func (r *EventRecorder) HandlePaymentFailed(ctx context.Context, pi *stripe.PaymentIntent) error {
	reason := ""
	if pi.LastPaymentError != nil {
		reason = pi.LastPaymentError.Msg
	}
	r.log.Warnw("Payment failed", "intent_id", pi.ID, "amount", pi.Amount, "reason", reason)

	event := kafka.NewEvent("payment.failed", pi.ID)
	event.ProviderID = pi.ID
	event.Amount = pi.Amount
	event.Currency = string(pi.Currency)
	event.Status = string(pi.Status)
	event.Metadata = pi.Metadata
	return r.producer.Publish(kafka.TopicPaymentFailed, event)
}

// HandleSubscriptionCreated обрабатывает создание подписки
func (r *EventRecorder) HandleSubscriptionCreated(ctx context.Context, sub *stripe.Subscription) error {
	return r.recordSubscription("subscription.created", sub)
}

// HandleSubscriptionUpdated обрабатывает изменение подписки
func (r *EventRecorder) HandleSubscriptionUpdated(ctx context.Context, sub *stripe.Subscription) error {
	return r.recordSubscription("subscription.updated", sub)
}

// HandleSubscriptionDeleted обрабатывает удаление подписки
func (r *EventRecorder) HandleSubscriptionDeleted(ctx context.Context, sub *stripe.Subscription) error {
	return r.recordSubscription("subscription.deleted", sub)
}

func (r *EventRecorder) recordSubscription(eventType string, sub *stripe.Subscription) error {
	customerID := ""
	if sub.Customer != nil {
		customerID = sub.Customer.ID
	}
	r.log.Infow("Subscription lifecycle event", "type", eventType, "subscription_id", sub.ID, "customer_id", customerID, "status", string(sub.Status))

	event := kafka.NewEvent(eventType, sub.ID)
	event.ProviderID = sub.ID
	event.Status = string(sub.Status)
	event.Metadata = sub.Metadata
	return r.producer.Publish(kafka.TopicSubscriptionChanged, event)
}

// HandleInvoicePaymentSucceeded обрабатывает оплату счета
func (r *EventRecorder) HandleInvoicePaymentSucceeded(ctx context.Context, inv *stripe.Invoice) error {
	r.log.Infow("Invoice payment succeeded", "invoice_id", inv.ID, "amount_paid", inv.AmountPaid, "currency", string(inv.Currency))
	return nil
}

// HandleInvoicePaymentFailed обрабатывает неудачную оплату счета.
// Для подписок это сигнал о предстоящем переходе в past_due.
func (r *EventRecorder) HandleInvoicePaymentFailed(ctx context.Context, inv *stripe.Invoice) error {
	subscriptionID := ""
	if inv.Subscription != nil {
		subscriptionID = inv.Subscription.ID
	}
	r.log.Warnw("Invoice payment failed", "invoice_id", inv.ID, "subscription_id", subscriptionID, "amount_due", inv.AmountDue)

	event := kafka.NewEvent("invoice.payment_failed", inv.ID)
	event.ProviderID = inv.ID
	event.Amount = inv.AmountDue
	event.Currency = string(inv.Currency)
	return r.producer.Publish(kafka.TopicInvoicePaymentFailed, event)
}

// HandleCheckoutCompleted обрабатывает завершение checkout-сессии
func (r *EventRecorder) HandleCheckoutCompleted(ctx context.Context, sess *stripe.CheckoutSession) error {
	customerID := ""
	if sess.Customer != nil {
		customerID = sess.Customer.ID
	}
	r.log.Infow("Checkout session completed", "session_id", sess.ID, "mode", string(sess.Mode), "customer_id", customerID)

	event := kafka.NewEvent("checkout.completed", sess.ID)
	event.ProviderID = sess.ID
	event.Amount = sess.AmountTotal
	event.Currency = string(sess.Currency)
	event.Status = string(sess.Status)
	event.Metadata = sess.Metadata
	return r.producer.Publish(kafka.TopicCheckoutCompleted, event)
}

// HandleCustomerCreated обрабатывает создание клиента
func (r *EventRecorder) HandleCustomerCreated(ctx context.Context, cus *stripe.Customer) error {
	r.log.Infow("Customer created", "customer_id", cus.ID, "email", cus.Email)

	event := kafka.NewEvent("customer.created", cus.ID)
	event.ProviderID = cus.ID
	event.Metadata = cus.Metadata
	return r.producer.Publish(kafka.TopicCustomerCreated, event)
}

// HandlePriceCreated обрабатывает появление новой цены у провайдера
func (r *EventRecorder) HandlePriceCreated(ctx context.Context, price *stripe.Price) error {
	r.log.Infow("Price created", "price_id", price.ID, "unit_amount", price.UnitAmount, "currency", string(price.Currency))
	return nil
}

// HandlePriceUpdated обрабатывает изменение цены у провайдера
func (r *EventRecorder) HandlePriceUpdated(ctx context.Context, price *stripe.Price) error {
	r.log.Infow("Price updated", "price_id", price.ID, "active", price.Active)
	return nil
}
