package service

import (
	"context"

	"github.com/vcr/payment-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

// mockGateway реализация шлюза Stripe для тестов
type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) CreatePaymentIntent(ctx context.Context, req domain.PaymentIntentRequest) (*domain.PaymentIntent, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentIntent), args.Error(1)
}

func (m *mockGateway) ConfirmPaymentIntent(ctx context.Context, id, paymentMethodID string) (*domain.PaymentIntent, error) {
	args := m.Called(ctx, id, paymentMethodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentIntent), args.Error(1)
}

func (m *mockGateway) RetrievePaymentIntent(ctx context.Context, id string) (*domain.PaymentIntent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentIntent), args.Error(1)
}

func (m *mockGateway) CreateCheckoutSession(ctx context.Context, params domain.CheckoutParams) (*domain.CheckoutSession, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckoutSession), args.Error(1)
}

func (m *mockGateway) RetrieveCheckoutSession(ctx context.Context, id string) (*domain.CheckoutSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckoutSession), args.Error(1)
}

func (m *mockGateway) CreateCustomer(ctx context.Context, req domain.CustomerRequest) (*domain.Customer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *mockGateway) UpdateCustomer(ctx context.Context, id string, req domain.CustomerUpdateRequest) (*domain.Customer, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *mockGateway) RetrieveCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *mockGateway) CreateSubscription(ctx context.Context, req domain.SubscriptionRequest) (*domain.Subscription, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.Subscription), args.String(1), args.Error(2)
}

func (m *mockGateway) UpdateSubscription(ctx context.Context, id string, req domain.SubscriptionUpdateRequest) (*domain.Subscription, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *mockGateway) CancelSubscription(ctx context.Context, id string, immediately bool) (*domain.Subscription, error) {
	args := m.Called(ctx, id, immediately)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *mockGateway) RetrieveSubscription(ctx context.Context, id string) (*domain.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *mockGateway) RetrievePrice(ctx context.Context, id string) (*domain.Price, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Price), args.Error(1)
}

func (m *mockGateway) ListPrices(ctx context.Context, productID string, activeOnly bool) (*domain.PriceList, error) {
	args := m.Called(ctx, productID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceList), args.Error(1)
}
