package service

import (
	"context"

	"github.com/vcr/payment-service/internal/domain"
	"github.com/vcr/payment-service/internal/integration/stripe"
	"github.com/vcr/payment-service/pkg/logger"
)

// CustomerService интерфейс сервиса для работы с клиентами
type CustomerService interface {
	Create(ctx context.Context, req domain.CustomerRequest) domain.CustomerResult
	Update(ctx context.Context, id string, req domain.CustomerUpdateRequest) domain.Result
	Get(ctx context.Context, id string) domain.Result
}

type customerService struct {
	gateway stripe.Gateway
	log     *logger.Logger
}

// NewCustomerService создает новый сервис для работы с клиентами
func NewCustomerService(gateway stripe.Gateway, log *logger.Logger) CustomerService {
	return &customerService{
		gateway: gateway,
		log:     log,
	}
}

func (s *customerService) Create(ctx context.Context, req domain.CustomerRequest) domain.CustomerResult {
	if err := validateRequest(req); err != nil {
		s.log.Warnw("Customer request rejected", "error", err)
		return domain.CustomerResult{Success: false, Error: err.Error()}
	}

	customer, err := s.gateway.CreateCustomer(ctx, req)
	if err != nil {
		s.log.Errorw("Failed to create customer", "email", req.Email, "error", err)
		return domain.CustomerResult{Success: false, Error: err.Error()}
	}

	s.log.Infow("Customer created", "customer_id", customer.ID)
	return domain.CustomerResult{Success: true, CustomerID: customer.ID}
}

func (s *customerService) Update(ctx context.Context, id string, req domain.CustomerUpdateRequest) domain.Result {
	if id == "" {
		return domain.Fail(domain.ValidationErrors{{Field: "id", Message: "is required"}})
	}
	if err := validateRequest(req); err != nil {
		s.log.Warnw("Customer update rejected", "customer_id", id, "error", err)
		return domain.Fail(err)
	}

	customer, err := s.gateway.UpdateCustomer(ctx, id, req)
	if err != nil {
		s.log.Errorw("Failed to update customer", "customer_id", id, "error", err)
		return domain.Fail(err)
	}

	s.log.Infow("Customer updated", "customer_id", customer.ID)
	return domain.OK(customer)
}

func (s *customerService) Get(ctx context.Context, id string) domain.Result {
	if id == "" {
		return domain.Fail(domain.ValidationErrors{{Field: "id", Message: "is required"}})
	}

	customer, err := s.gateway.RetrieveCustomer(ctx, id)
	if err != nil {
		s.log.Errorw("Failed to retrieve customer", "customer_id", id, "error", err)
		return domain.Fail(err)
	}

	return domain.OK(customer)
}
