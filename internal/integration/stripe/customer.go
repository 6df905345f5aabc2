package stripe

import (
	"context"

	"github.com/vcr/payment-service/internal/domain"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v78"
)

// CreateCustomer создает нового клиента в Stripe
func (c *Client) CreateCustomer(ctx context.Context, req domain.CustomerRequest) (*domain.Customer, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(req.Email),
		Name:  stripe.String(req.Name),
		Params: stripe.Params{
			Context:        ctx,
			IdempotencyKey: stripe.String(uuid.NewString()),
		},
	}
	if req.Phone != "" {
		params.Phone = stripe.String(req.Phone)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	cus, err := c.api.Customers.New(params)
	if err != nil {
		logStripeError(c.log, "CreateCustomer", err)
		return nil, mapError(err)
	}

	c.log.Infow("Stripe customer created", "customer_id", cus.ID)
	return toDomainCustomer(cus), nil
}

// UpdateCustomer обновляет клиента в Stripe
func (c *Client) UpdateCustomer(ctx context.Context, id string, req domain.CustomerUpdateRequest) (*domain.Customer, error) {
	params := &stripe.CustomerParams{
		Params: stripe.Params{
			Context: ctx,
		},
	}
	if req.Email != "" {
		params.Email = stripe.String(req.Email)
	}
	if req.Name != "" {
		params.Name = stripe.String(req.Name)
	}
	if req.Phone != "" {
		params.Phone = stripe.String(req.Phone)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	cus, err := c.api.Customers.Update(id, params)
	if err != nil {
		logStripeError(c.log, "UpdateCustomer", err)
		return nil, mapError(err)
	}

	c.log.Infow("Stripe customer updated", "customer_id", cus.ID)
	return toDomainCustomer(cus), nil
}

// RetrieveCustomer получает клиента из Stripe.
// Удаленный клиент считается ошибкой: работать с ним больше нельзя.
func (c *Client) RetrieveCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	params := &stripe.CustomerParams{
		Params: stripe.Params{
			Context: ctx,
		},
	}

	cus, err := c.api.Customers.Get(id, params)
	if err != nil {
		logStripeError(c.log, "RetrieveCustomer", err)
		return nil, mapError(err)
	}

	if cus.Deleted {
		return nil, domain.NewProviderError(domain.ErrNotFound, "resource_missing", "customer has been deleted", "", 0, nil)
	}

	return toDomainCustomer(cus), nil
}
