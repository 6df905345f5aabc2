package service

import (
	"context"
	"strings"

	"github.com/vcr/payment-service/internal/domain"
	"github.com/vcr/payment-service/internal/integration/stripe"
	"github.com/vcr/payment-service/pkg/logger"
)

// CheckoutURLs адреса возврата пользователя после checkout-сессии
type CheckoutURLs struct {
	SuccessURL string
	CancelURL  string
}

// CheckoutService интерфейс сервиса для работы с checkout-сессиями.
// StartSession возвращает типизированную ошибку для транспортного слоя,
// которому нужно различать теги; CreateSession сворачивает результат
// в конверт.
type CheckoutService interface {
	CreateSession(ctx context.Context, req domain.CheckoutSessionRequest) domain.CheckoutResult
	StartSession(ctx context.Context, req domain.CheckoutSessionRequest) (*domain.CheckoutSession, error)
	GetSession(ctx context.Context, id string) domain.Result
}

type checkoutService struct {
	gateway stripe.Gateway
	urls    CheckoutURLs
	log     *logger.Logger
}

// NewCheckoutService создает новый сервис для работы с checkout-сессиями
func NewCheckoutService(gateway stripe.Gateway, urls CheckoutURLs, log *logger.Logger) CheckoutService {
	return &checkoutService{
		gateway: gateway,
		urls:    urls,
		log:     log,
	}
}

func (s *checkoutService) CreateSession(ctx context.Context, req domain.CheckoutSessionRequest) domain.CheckoutResult {
	sess, err := s.StartSession(ctx, req)
	if err != nil {
		return domain.CheckoutResult{Success: false, Error: err.Error()}
	}

	return domain.CheckoutResult{
		Success:   true,
		URL:       sess.URL,
		SessionID: sess.ID,
	}
}

func (s *checkoutService) StartSession(ctx context.Context, req domain.CheckoutSessionRequest) (*domain.CheckoutSession, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warnw("Checkout session request rejected", "error", err)
		return nil, err
	}

	params, err := s.buildParams(req)
	if err != nil {
		s.log.Warnw("Checkout session request rejected", "error", err)
		return nil, err
	}

	sess, err := s.gateway.CreateCheckoutSession(ctx, params)
	if err != nil {
		s.log.Errorw("Failed to create checkout session", "price_id", req.PriceID, "error", err)
		return nil, err
	}

	s.log.Infow("Checkout session created", "session_id", sess.ID, "mode", sess.Mode)
	return sess, nil
}

func (s *checkoutService) GetSession(ctx context.Context, id string) domain.Result {
	if id == "" {
		return domain.Fail(domain.ValidationErrors{{Field: "id", Message: "is required"}})
	}

	sess, err := s.gateway.RetrieveCheckoutSession(ctx, id)
	if err != nil {
		s.log.Errorw("Failed to retrieve checkout session", "session_id", id, "error", err)
		return domain.Fail(err)
	}

	return domain.OK(sess)
}

// buildParams применяет значения по умолчанию и переводит входной запрос
// в параметры шлюза. Подписочный режим дополнительно включает сбор
// платежного адреса и откладывает ввод платежного метода, если первый
// счет нулевой (например, пробный период).
func (s *checkoutService) buildParams(req domain.CheckoutSessionRequest) (domain.CheckoutParams, error) {
	mode := req.Mode
	if mode == "" {
		mode = domain.CheckoutModePayment
	}
	if !mode.IsValid() {
		return domain.CheckoutParams{}, domain.ValidationErrors{{Field: "mode", Message: "must be one of payment, subscription, setup"}}
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	params := domain.CheckoutParams{
		PriceID:       req.PriceID,
		Quantity:      quantity,
		Mode:          mode,
		SuccessURL:    withSessionIDParam(s.urls.SuccessURL),
		CancelURL:     s.urls.CancelURL,
		CustomerID:    req.CustomerID,
		CustomerEmail: req.CustomerEmail,
		Metadata:      req.Metadata,
	}
	if mode == domain.CheckoutModeSubscription {
		params.CollectBillingAddress = true
		params.DeferPaymentMethodEntry = true
	}

	return params, nil
}

// withSessionIDParam добавляет к URL возврата плейсхолдер идентификатора
// сессии, который Stripe подставляет при редиректе
func withSessionIDParam(url string) string {
	if strings.Contains(url, "session_id=") {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "session_id={CHECKOUT_SESSION_ID}"
}
