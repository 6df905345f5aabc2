package webhook

import (
	"context"

	"github.com/stripe/stripe-go/v78"
)

// Интерфейсы обработчиков сгруппированы по сущности. Диспетчер вызывает
// их после верификации подписи; nil-обработчик означает, что события
// этой группы подтверждаются без обработки.

// PaymentEventHandler обрабатывает события платежных намерений
type PaymentEventHandler interface {
	HandlePaymentSucceeded(ctx context.Context, pi *stripe.PaymentIntent) error
	HandlePaymentFailed(ctx context.Context, pi *stripe.PaymentIntent) error
}

// SubscriptionEventHandler обрабатывает события жизненного цикла подписок
type SubscriptionEventHandler interface {
	HandleSubscriptionCreated(ctx context.Context, sub *stripe.Subscription) error
	HandleSubscriptionUpdated(ctx context.Context, sub *stripe.Subscription) error
	HandleSubscriptionDeleted(ctx context.Context, sub *stripe.Subscription) error
}

// InvoiceEventHandler обрабатывает события счетов
type InvoiceEventHandler interface {
	HandleInvoicePaymentSucceeded(ctx context.Context, inv *stripe.Invoice) error
	HandleInvoicePaymentFailed(ctx context.Context, inv *stripe.Invoice) error
}

// CheckoutEventHandler обрабатывает завершение checkout-сессий
type CheckoutEventHandler interface {
	HandleCheckoutCompleted(ctx context.Context, sess *stripe.CheckoutSession) error
}

// CustomerEventHandler обрабатывает события клиентов
type CustomerEventHandler interface {
	HandleCustomerCreated(ctx context.Context, cus *stripe.Customer) error
}

// PriceEventHandler обрабатывает изменения каталога цен провайдера
type PriceEventHandler interface {
	HandlePriceCreated(ctx context.Context, price *stripe.Price) error
	HandlePriceUpdated(ctx context.Context, price *stripe.Price) error
}

// Handlers набор обработчиков, передаваемый диспетчеру
type Handlers struct {
	Payment      PaymentEventHandler
	Subscription SubscriptionEventHandler
	Invoice      InvoiceEventHandler
	Checkout     CheckoutEventHandler
	Customer     CustomerEventHandler
	Price        PriceEventHandler
}
