package stripe

import (
	"github.com/vcr/payment-service/internal/domain"

	"github.com/stripe/stripe-go/v78"
)

// Конвертеры из структур Stripe SDK в доменные структуры. Наружу из пакета
// уходят только доменные типы, SDK не протекает в сервисный слой.

func toDomainPaymentIntent(pi *stripe.PaymentIntent) *domain.PaymentIntent {
	out := &domain.PaymentIntent{
		ID:             pi.ID,
		ClientSecret:   pi.ClientSecret,
		Amount:         pi.Amount,
		AmountReceived: pi.AmountReceived,
		Currency:       string(pi.Currency),
		Status:         string(pi.Status),
		Metadata:       pi.Metadata,
	}
	if pi.Customer != nil {
		out.CustomerID = pi.Customer.ID
	}
	return out
}

func toDomainCheckoutSession(sess *stripe.CheckoutSession) *domain.CheckoutSession {
	out := &domain.CheckoutSession{
		ID:       sess.ID,
		URL:      sess.URL,
		Status:   string(sess.Status),
		Mode:     string(sess.Mode),
		Metadata: sess.Metadata,
	}
	if sess.Customer != nil {
		out.CustomerID = sess.Customer.ID
	}
	if sess.Subscription != nil {
		out.Subscription = sess.Subscription.ID
	}
	if sess.PaymentIntent != nil {
		out.PaymentIntent = sess.PaymentIntent.ID
	}
	return out
}

func toDomainCustomer(cus *stripe.Customer) *domain.Customer {
	return &domain.Customer{
		ID:       cus.ID,
		Email:    cus.Email,
		Name:     cus.Name,
		Phone:    cus.Phone,
		Metadata: cus.Metadata,
		Created:  cus.Created,
	}
}

func toDomainSubscription(sub *stripe.Subscription) *domain.Subscription {
	out := &domain.Subscription{
		ID:                 sub.ID,
		Status:             string(sub.Status),
		CurrentPeriodStart: sub.CurrentPeriodStart,
		CurrentPeriodEnd:   sub.CurrentPeriodEnd,
		TrialEnd:           sub.TrialEnd,
		CancelAtPeriodEnd:  sub.CancelAtPeriodEnd,
		Metadata:           sub.Metadata,
	}
	if sub.Customer != nil {
		out.CustomerID = sub.Customer.ID
	}
	return out
}

func toDomainPrice(price *stripe.Price) *domain.Price {
	out := &domain.Price{
		ID:         price.ID,
		UnitAmount: price.UnitAmount,
		Currency:   string(price.Currency),
		Active:     price.Active,
		Metadata:   price.Metadata,
	}
	if price.Recurring != nil {
		out.Interval = string(price.Recurring.Interval)
		out.IntervalCount = price.Recurring.IntervalCount
	}
	if price.Product != nil {
		out.ProductID = price.Product.ID
	}
	return out
}
