package stripe

import (
	"context"

	"github.com/vcr/payment-service/internal/domain"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v78"
)

// CreateCheckoutSession создает checkout-сессию с одной позицией
func (c *Client) CreateCheckoutSession(ctx context.Context, p domain.CheckoutParams) (*domain.CheckoutSession, error) {
	c.log.Debugw("Creating Stripe checkout session", "price_id", p.PriceID, "mode", string(p.Mode))

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(p.Mode)),
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(p.PriceID),
				Quantity: stripe.Int64(p.Quantity),
			},
		},
		Params: stripe.Params{
			Context:        ctx,
			IdempotencyKey: stripe.String(uuid.NewString()),
		},
	}

	// При одновременном указании ID клиента и email приоритет у ID
	if p.CustomerID != "" {
		params.Customer = stripe.String(p.CustomerID)
	} else if p.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(p.CustomerEmail)
	}

	if p.CollectBillingAddress {
		params.BillingAddressCollection = stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionAuto))
	}
	if p.DeferPaymentMethodEntry {
		params.PaymentMethodCollection = stripe.String(string(stripe.CheckoutSessionPaymentMethodCollectionIfRequired))
	}

	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		logStripeError(c.log, "CreateCheckoutSession", err)
		return nil, mapError(err)
	}

	c.log.Infow("Stripe checkout session created", "session_id", sess.ID, "mode", string(sess.Mode))
	return toDomainCheckoutSession(sess), nil
}

// RetrieveCheckoutSession получает checkout-сессию вместе со связанными объектами
func (c *Client) RetrieveCheckoutSession(ctx context.Context, id string) (*domain.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Context: ctx,
		},
	}
	params.AddExpand("customer")
	params.AddExpand("subscription")
	params.AddExpand("payment_intent")

	sess, err := c.api.CheckoutSessions.Get(id, params)
	if err != nil {
		logStripeError(c.log, "RetrieveCheckoutSession", err)
		return nil, mapError(err)
	}

	return toDomainCheckoutSession(sess), nil
}
