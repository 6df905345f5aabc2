package stripe

import (
	"context"

	"github.com/vcr/payment-service/internal/domain"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v78"
)

// CreatePaymentIntent создает платежное намерение в Stripe.
// Операция не идемпотентна на уровне сервиса: два вызова создают два
// намерения. Ключ идемпотентности защищает только от сетевых повторов
// одного и того же вызова.
func (c *Client) CreatePaymentIntent(ctx context.Context, req domain.PaymentIntentRequest) (*domain.PaymentIntent, error) {
	c.log.Debugw("Creating Stripe payment intent", "amount", req.Amount, "currency", req.Currency)

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Params: stripe.Params{
			Context:        ctx,
			IdempotencyKey: stripe.String(uuid.NewString()),
		},
	}
	if req.CustomerID != "" {
		params.Customer = stripe.String(req.CustomerID)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		logStripeError(c.log, "CreatePaymentIntent", err)
		return nil, mapError(err)
	}

	c.log.Infow("Stripe payment intent created", "payment_intent_id", pi.ID, "status", string(pi.Status))
	return toDomainPaymentIntent(pi), nil
}

// ConfirmPaymentIntent подтверждает платежное намерение указанным методом оплаты
func (c *Client) ConfirmPaymentIntent(ctx context.Context, id, paymentMethodID string) (*domain.PaymentIntent, error) {
	params := &stripe.PaymentIntentConfirmParams{
		PaymentMethod: stripe.String(paymentMethodID),
		Params: stripe.Params{
			Context: ctx,
		},
	}

	pi, err := c.api.PaymentIntents.Confirm(id, params)
	if err != nil {
		logStripeError(c.log, "ConfirmPaymentIntent", err)
		return nil, mapError(err)
	}

	c.log.Infow("Stripe payment intent confirmed", "payment_intent_id", pi.ID, "status", string(pi.Status))
	return toDomainPaymentIntent(pi), nil
}

// RetrievePaymentIntent получает платежное намерение из Stripe
func (c *Client) RetrievePaymentIntent(ctx context.Context, id string) (*domain.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
	}

	pi, err := c.api.PaymentIntents.Get(id, params)
	if err != nil {
		logStripeError(c.log, "RetrievePaymentIntent", err)
		return nil, mapError(err)
	}

	return toDomainPaymentIntent(pi), nil
}
