package stripe

import (
	"context"

	"github.com/vcr/payment-service/internal/domain"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v78"
)

// CreateSubscription создает подписку в Stripe.
// Возвращает подписку и client secret первого платежа (если он требуется).
func (c *Client) CreateSubscription(ctx context.Context, req domain.SubscriptionRequest) (*domain.Subscription, string, error) {
	c.log.Debugw("Creating Stripe subscription", "customer_id", req.CustomerID, "price_id", req.PriceID)

	params := &stripe.SubscriptionParams{
		Customer: stripe.String(req.CustomerID),
		Items: []*stripe.SubscriptionItemsParams{
			{
				Price: stripe.String(req.PriceID),
			},
		},
		PaymentBehavior: stripe.String("default_incomplete"),
		PaymentSettings: &stripe.SubscriptionPaymentSettingsParams{
			SaveDefaultPaymentMethod: stripe.String("on_subscription"),
		},
		Params: stripe.Params{
			Context:        ctx,
			IdempotencyKey: stripe.String(uuid.NewString()),
		},
	}
	if req.TrialDays > 0 {
		params.TrialPeriodDays = stripe.Int64(req.TrialDays)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.AddExpand("latest_invoice.payment_intent")

	sub, err := c.api.Subscriptions.New(params)
	if err != nil {
		logStripeError(c.log, "CreateSubscription", err)
		return nil, "", mapError(err)
	}

	clientSecret := ""
	if sub.LatestInvoice != nil && sub.LatestInvoice.PaymentIntent != nil {
		clientSecret = sub.LatestInvoice.PaymentIntent.ClientSecret
	} else {
		c.log.Warnw("No payment intent found in created subscription", "subscription_id", sub.ID, "status", string(sub.Status))
	}

	c.log.Infow("Stripe subscription created", "subscription_id", sub.ID, "status", string(sub.Status))
	return toDomainSubscription(sub), clientSecret, nil
}

// UpdateSubscription обновляет метаданные и/или цену подписки.
// Смена цены требует сначала прочитать подписку, чтобы узнать идентификатор
// её элемента: Stripe принимает смену плана только парой (item id, price).
// Между чтением и записью нет блокировки, конкурентное обновление
// разрешается провайдером по принципу last-write-wins.
func (c *Client) UpdateSubscription(ctx context.Context, id string, req domain.SubscriptionUpdateRequest) (*domain.Subscription, error) {
	params := &stripe.SubscriptionParams{
		Params: stripe.Params{
			Context: ctx,
		},
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	if req.PriceID != "" {
		current, err := c.api.Subscriptions.Get(id, &stripe.SubscriptionParams{Params: stripe.Params{Context: ctx}})
		if err != nil {
			logStripeError(c.log, "UpdateSubscription", err)
			return nil, mapError(err)
		}
		if current.Items == nil || len(current.Items.Data) == 0 {
			return nil, domain.NewProviderError(domain.ErrUpstream, "", "subscription has no items", "", 0, nil)
		}

		params.Items = []*stripe.SubscriptionItemsParams{
			{
				ID:    stripe.String(current.Items.Data[0].ID),
				Price: stripe.String(req.PriceID),
			},
		}
	}

	sub, err := c.api.Subscriptions.Update(id, params)
	if err != nil {
		logStripeError(c.log, "UpdateSubscription", err)
		return nil, mapError(err)
	}

	c.log.Infow("Stripe subscription updated", "subscription_id", sub.ID, "status", string(sub.Status))
	return toDomainSubscription(sub), nil
}

// CancelSubscription отменяет подписку.
// immediately=true отменяет сразу с немедленным выставлением счета и без
// пропорционального перерасчета; immediately=false помечает подписку к
// отмене в конце оплаченного периода.
func (c *Client) CancelSubscription(ctx context.Context, id string, immediately bool) (*domain.Subscription, error) {
	if !immediately {
		params := &stripe.SubscriptionParams{
			CancelAtPeriodEnd: stripe.Bool(true),
			Params: stripe.Params{
				Context: ctx,
			},
		}

		sub, err := c.api.Subscriptions.Update(id, params)
		if err != nil {
			logStripeError(c.log, "CancelSubscription", err)
			return nil, mapError(err)
		}

		c.log.Infow("Stripe subscription scheduled for cancellation", "subscription_id", sub.ID)
		return toDomainSubscription(sub), nil
	}

	params := &stripe.SubscriptionCancelParams{
		InvoiceNow: stripe.Bool(true),
		Prorate:    stripe.Bool(false),
		Params: stripe.Params{
			Context: ctx,
		},
	}

	sub, err := c.api.Subscriptions.Cancel(id, params)
	if err != nil {
		logStripeError(c.log, "CancelSubscription", err)
		return nil, mapError(err)
	}

	c.log.Infow("Stripe subscription canceled", "subscription_id", sub.ID)
	return toDomainSubscription(sub), nil
}

// RetrieveSubscription получает подписку из Stripe
func (c *Client) RetrieveSubscription(ctx context.Context, id string) (*domain.Subscription, error) {
	params := &stripe.SubscriptionParams{
		Params: stripe.Params{
			Context: ctx,
		},
	}

	sub, err := c.api.Subscriptions.Get(id, params)
	if err != nil {
		logStripeError(c.log, "RetrieveSubscription", err)
		return nil, mapError(err)
	}

	return toDomainSubscription(sub), nil
}
