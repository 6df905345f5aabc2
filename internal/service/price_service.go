package service

import (
	"context"

	"github.com/vcr/payment-service/internal/domain"
	"github.com/vcr/payment-service/internal/integration/stripe"
	"github.com/vcr/payment-service/pkg/logger"
)

// PriceService интерфейс сервиса для чтения цен провайдера
type PriceService interface {
	Get(ctx context.Context, id string) domain.Result
	List(ctx context.Context, productID string, activeOnly bool) domain.Result
}

type priceService struct {
	gateway stripe.Gateway
	log     *logger.Logger
}

// NewPriceService создает новый сервис для чтения цен
func NewPriceService(gateway stripe.Gateway, log *logger.Logger) PriceService {
	return &priceService{
		gateway: gateway,
		log:     log,
	}
}

func (s *priceService) Get(ctx context.Context, id string) domain.Result {
	if id == "" {
		return domain.Fail(domain.ValidationErrors{{Field: "id", Message: "is required"}})
	}

	price, err := s.gateway.RetrievePrice(ctx, id)
	if err != nil {
		s.log.Errorw("Failed to retrieve price", "price_id", id, "error", err)
		return domain.Fail(err)
	}

	return domain.OK(price)
}

func (s *priceService) List(ctx context.Context, productID string, activeOnly bool) domain.Result {
	prices, err := s.gateway.ListPrices(ctx, productID, activeOnly)
	if err != nil {
		s.log.Errorw("Failed to list prices", "product_id", productID, "error", err)
		return domain.Fail(err)
	}

	return domain.OK(prices)
}
