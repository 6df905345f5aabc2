package service

import (
	"context"
	"testing"

	"github.com/vcr/payment-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomer(t *testing.T) {
	gw := new(mockGateway)
	svc := NewCustomerService(gw, testLogger())

	req := domain.CustomerRequest{Email: "jordan@example.com", Name: "Jordan Lee"}
	gw.On("CreateCustomer", mock.Anything, req).
		Return(&domain.Customer{ID: "cus_1", Email: req.Email, Name: req.Name}, nil)

	res := svc.Create(context.Background(), req)

	require.True(t, res.Success)
	assert.Equal(t, "cus_1", res.CustomerID)
	gw.AssertExpectations(t)
}

func TestCreateCustomerInvalidEmail(t *testing.T) {
	gw := new(mockGateway)
	svc := NewCustomerService(gw, testLogger())

	res := svc.Create(context.Background(), domain.CustomerRequest{Email: "not-an-email", Name: "Jordan Lee"})

	require.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
	gw.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything)
}

func TestGetCustomerDeleted(t *testing.T) {
	gw := new(mockGateway)
	svc := NewCustomerService(gw, testLogger())

	gw.On("RetrieveCustomer", mock.Anything, "cus_gone").
		Return(nil, domain.NewProviderError(domain.ErrNotFound, "", "customer has been deleted", "", 0, nil))

	res := svc.Get(context.Background(), "cus_gone")

	require.False(t, res.Success)
	assert.Contains(t, res.Error, "deleted")
}

func TestUpdateCustomerMetadataOnly(t *testing.T) {
	gw := new(mockGateway)
	svc := NewCustomerService(gw, testLogger())

	req := domain.CustomerUpdateRequest{Metadata: map[string]string{"plan": "pro"}}
	gw.On("UpdateCustomer", mock.Anything, "cus_1", req).
		Return(&domain.Customer{ID: "cus_1", Metadata: req.Metadata}, nil)

	res := svc.Update(context.Background(), "cus_1", req)

	require.True(t, res.Success)
	gw.AssertExpectations(t)
}
