package stripe

import (
	"context"

	"github.com/vcr/payment-service/internal/domain"

	"github.com/stripe/stripe-go/v78"
)

// RetrievePrice получает цену из Stripe
func (c *Client) RetrievePrice(ctx context.Context, id string) (*domain.Price, error) {
	params := &stripe.PriceParams{
		Params: stripe.Params{
			Context: ctx,
		},
	}

	price, err := c.api.Prices.Get(id, params)
	if err != nil {
		logStripeError(c.log, "RetrievePrice", err)
		return nil, mapError(err)
	}

	return toDomainPrice(price), nil
}

// ListPrices возвращает страницу цен. productID и activeOnly сужают выборку;
// пустой productID означает цены всех продуктов.
func (c *Client) ListPrices(ctx context.Context, productID string, activeOnly bool) (*domain.PriceList, error) {
	params := &stripe.PriceListParams{
		ListParams: stripe.ListParams{
			Context: ctx,
			Limit:   stripe.Int64(100),
		},
	}
	if activeOnly {
		params.Active = stripe.Bool(true)
	}
	if productID != "" {
		params.Product = stripe.String(productID)
	}

	list := &domain.PriceList{Prices: []domain.Price{}}

	iter := c.api.Prices.List(params)
	for iter.Next() {
		list.Prices = append(list.Prices, *toDomainPrice(iter.Price()))
	}
	if err := iter.Err(); err != nil {
		logStripeError(c.log, "ListPrices", err)
		return nil, mapError(err)
	}
	list.HasMore = iter.Meta() != nil && iter.Meta().HasMore

	c.log.Debugw("Stripe prices listed", "count", len(list.Prices), "product_id", productID)
	return list, nil
}
