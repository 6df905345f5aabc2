package handlers

import (
	"net/http"

	"github.com/vcr/payment-service/internal/catalog"
	"github.com/vcr/payment-service/internal/service"
	"github.com/vcr/payment-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// PriceHandler обработчик чтения цен и тарифного каталога
type PriceHandler struct {
	prices  service.PriceService
	catalog *catalog.Catalog
	log     *logger.Logger
}

// NewPriceHandler создает новый обработчик цен
func NewPriceHandler(prices service.PriceService, cat *catalog.Catalog, log *logger.Logger) *PriceHandler {
	return &PriceHandler{
		prices:  prices,
		catalog: cat,
		log:     log,
	}
}

// GetPrice обрабатывает GET /api/v1/prices/:id
func (h *PriceHandler) GetPrice(c *gin.Context) {
	c.JSON(http.StatusOK, h.prices.Get(c.Request.Context(), c.Param("id")))
}

// ListPrices обрабатывает GET /api/v1/prices?product=...&active=false.
// По умолчанию возвращаются только активные цены; архивные включаются
// явным active=false.
func (h *PriceHandler) ListPrices(c *gin.Context) {
	productID := c.Query("product")
	activeOnly := c.Query("active") != "false"
	c.JSON(http.StatusOK, h.prices.List(c.Request.Context(), productID, activeOnly))
}

// tierView тариф с заранее отформатированной ценой для витрины
type tierView struct {
	catalog.PricingTier
	DisplayPrice string `json:"displayPrice"`
}

// GetTiers обрабатывает GET /api/v1/tiers
func (h *PriceHandler) GetTiers(c *gin.Context) {
	tiers := h.catalog.Tiers()
	views := make([]tierView, 0, len(tiers))
	for _, tier := range tiers {
		views = append(views, tierView{
			PricingTier:  tier,
			DisplayPrice: catalog.FormatPriceWithInterval(tier.Price, tier.Currency, tier.Interval),
		})
	}

	c.JSON(http.StatusOK, gin.H{"tiers": views})
}

// GetTier обрабатывает GET /api/v1/tiers/:key
func (h *PriceHandler) GetTier(c *gin.Context) {
	tier, ok := h.catalog.Tier(c.Param("key"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown pricing tier"})
		return
	}

	c.JSON(http.StatusOK, tierView{
		PricingTier:  tier,
		DisplayPrice: catalog.FormatPriceWithInterval(tier.Price, tier.Currency, tier.Interval),
	})
}
