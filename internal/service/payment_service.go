package service

import (
	"context"

	"github.com/vcr/payment-service/internal/domain"
	"github.com/vcr/payment-service/internal/integration/stripe"
	"github.com/vcr/payment-service/pkg/logger"
)

// PaymentService интерфейс сервиса для работы с платежными намерениями.
// Каждая операция валидирует вход, выполняет ровно один вызов провайдера
// и возвращает конверт; ошибки не покидают границу сервиса.
type PaymentService interface {
	CreateIntent(ctx context.Context, req domain.PaymentIntentRequest) domain.Result
	ConfirmIntent(ctx context.Context, id, paymentMethodID string) domain.Result
	GetIntent(ctx context.Context, id string) domain.Result
}

type paymentService struct {
	gateway stripe.Gateway
	log     *logger.Logger
}

// NewPaymentService создает новый сервис для работы с платежными намерениями
func NewPaymentService(gateway stripe.Gateway, log *logger.Logger) PaymentService {
	return &paymentService{
		gateway: gateway,
		log:     log,
	}
}

func (s *paymentService) CreateIntent(ctx context.Context, req domain.PaymentIntentRequest) domain.Result {
	if err := validateRequest(req); err != nil {
		s.log.Warnw("Payment intent request rejected", "error", err)
		return domain.Fail(err)
	}
	if req.Currency == "" {
		req.Currency = "usd"
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, req)
	if err != nil {
		s.log.Errorw("Failed to create payment intent", "error", err)
		return domain.Fail(err)
	}

	s.log.Infow("Payment intent created", "intent_id", intent.ID, "amount", intent.Amount, "currency", intent.Currency)
	return domain.OK(intent)
}

func (s *paymentService) ConfirmIntent(ctx context.Context, id, paymentMethodID string) domain.Result {
	if id == "" {
		return domain.Fail(domain.ValidationErrors{{Field: "id", Message: "is required"}})
	}

	intent, err := s.gateway.ConfirmPaymentIntent(ctx, id, paymentMethodID)
	if err != nil {
		s.log.Errorw("Failed to confirm payment intent", "intent_id", id, "error", err)
		return domain.Fail(err)
	}

	s.log.Infow("Payment intent confirmed", "intent_id", intent.ID, "status", intent.Status)
	return domain.OK(intent)
}

func (s *paymentService) GetIntent(ctx context.Context, id string) domain.Result {
	if id == "" {
		return domain.Fail(domain.ValidationErrors{{Field: "id", Message: "is required"}})
	}

	intent, err := s.gateway.RetrievePaymentIntent(ctx, id)
	if err != nil {
		s.log.Errorw("Failed to retrieve payment intent", "intent_id", id, "error", err)
		return domain.Fail(err)
	}

	return domain.OK(intent)
}
