package service

import (
	"context"
	"testing"

	"github.com/vcr/payment-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateIntentDefaultsCurrency(t *testing.T) {
	gw := new(mockGateway)
	svc := NewPaymentService(gw, testLogger())

	gw.On("CreatePaymentIntent", mock.Anything, mock.MatchedBy(func(r domain.PaymentIntentRequest) bool {
		return r.Currency == "usd" && r.Amount == 2999
	})).Return(&domain.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret", Amount: 2999, Currency: "usd", Status: "requires_payment_method"}, nil)

	res := svc.CreateIntent(context.Background(), domain.PaymentIntentRequest{Amount: 2999})

	require.True(t, res.Success)
	intent, ok := res.Data.(*domain.PaymentIntent)
	require.True(t, ok)
	assert.Equal(t, "pi_1", intent.ID)
	assert.NotEmpty(t, intent.ClientSecret)
	gw.AssertExpectations(t)
}

func TestCreateIntentRejectsBelowMinimum(t *testing.T) {
	gw := new(mockGateway)
	svc := NewPaymentService(gw, testLogger())

	res := svc.CreateIntent(context.Background(), domain.PaymentIntentRequest{Amount: 49})

	require.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
	gw.AssertNotCalled(t, "CreatePaymentIntent", mock.Anything, mock.Anything)
}

func TestCreateIntentProviderAuthError(t *testing.T) {
	gw := new(mockGateway)
	svc := NewPaymentService(gw, testLogger())

	gw.On("CreatePaymentIntent", mock.Anything, mock.Anything).
		Return(nil, domain.NewProviderError(domain.ErrAuth, "api_key_invalid", "Invalid API Key provided", "req_9", 401, nil))

	res := svc.CreateIntent(context.Background(), domain.PaymentIntentRequest{Amount: 1000, Currency: "usd"})

	require.False(t, res.Success)
	assert.Contains(t, res.Error, "Invalid API Key")
}

func TestConfirmIntentEmptyID(t *testing.T) {
	gw := new(mockGateway)
	svc := NewPaymentService(gw, testLogger())

	res := svc.ConfirmIntent(context.Background(), "", "pm_card")

	require.False(t, res.Success)
	gw.AssertNotCalled(t, "ConfirmPaymentIntent", mock.Anything, mock.Anything, mock.Anything)
}
