package service

import (
	"context"

	"github.com/vcr/payment-service/internal/domain"
	"github.com/vcr/payment-service/internal/integration/stripe"
	"github.com/vcr/payment-service/pkg/logger"
)

// SubscriptionService интерфейс сервиса для работы с подписками
type SubscriptionService interface {
	Create(ctx context.Context, req domain.SubscriptionRequest) domain.SubscriptionResult
	Update(ctx context.Context, id string, req domain.SubscriptionUpdateRequest) domain.Result
	Cancel(ctx context.Context, id string, immediately bool) domain.Result
	Get(ctx context.Context, id string) domain.Result
}

type subscriptionService struct {
	gateway stripe.Gateway
	log     *logger.Logger
}

// NewSubscriptionService создает новый сервис для работы с подписками
func NewSubscriptionService(gateway stripe.Gateway, log *logger.Logger) SubscriptionService {
	return &subscriptionService{
		gateway: gateway,
		log:     log,
	}
}

func (s *subscriptionService) Create(ctx context.Context, req domain.SubscriptionRequest) domain.SubscriptionResult {
	if err := validateRequest(req); err != nil {
		s.log.Warnw("Subscription request rejected", "error", err)
		return domain.SubscriptionResult{Success: false, Error: err.Error()}
	}

	sub, clientSecret, err := s.gateway.CreateSubscription(ctx, req)
	if err != nil {
		s.log.Errorw("Failed to create subscription", "customer_id", req.CustomerID, "error", err)
		return domain.SubscriptionResult{Success: false, Error: err.Error()}
	}

	s.log.Infow("Subscription created", "subscription_id", sub.ID, "status", sub.Status)
	return domain.SubscriptionResult{
		Success:        true,
		SubscriptionID: sub.ID,
		ClientSecret:   clientSecret,
	}
}

func (s *subscriptionService) Update(ctx context.Context, id string, req domain.SubscriptionUpdateRequest) domain.Result {
	if id == "" {
		return domain.Fail(domain.ValidationErrors{{Field: "id", Message: "is required"}})
	}
	if req.PriceID == "" && len(req.Metadata) == 0 {
		return domain.Fail(domain.ValidationErrors{{Field: "request", Message: "nothing to update"}})
	}

	sub, err := s.gateway.UpdateSubscription(ctx, id, req)
	if err != nil {
		s.log.Errorw("Failed to update subscription", "subscription_id", id, "error", err)
		return domain.Fail(err)
	}

	s.log.Infow("Subscription updated", "subscription_id", sub.ID, "status", sub.Status)
	return domain.OK(sub)
}

func (s *subscriptionService) Cancel(ctx context.Context, id string, immediately bool) domain.Result {
	if id == "" {
		return domain.Fail(domain.ValidationErrors{{Field: "id", Message: "is required"}})
	}

	sub, err := s.gateway.CancelSubscription(ctx, id, immediately)
	if err != nil {
		s.log.Errorw("Failed to cancel subscription", "subscription_id", id, "error", err)
		return domain.Fail(err)
	}

	s.log.Infow("Subscription canceled", "subscription_id", sub.ID, "immediately", immediately)
	return domain.OK(sub)
}

func (s *subscriptionService) Get(ctx context.Context, id string) domain.Result {
	if id == "" {
		return domain.Fail(domain.ValidationErrors{{Field: "id", Message: "is required"}})
	}

	sub, err := s.gateway.RetrieveSubscription(ctx, id)
	if err != nil {
		s.log.Errorw("Failed to retrieve subscription", "subscription_id", id, "error", err)
		return domain.Fail(err)
	}

	return domain.OK(sub)
}
