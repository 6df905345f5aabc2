package catalog

import "strings"

// PricingTier представляет тарифный план
type PricingTier struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"` // в минорных единицах валюты
	Currency    string   `json:"currency"`
	Interval    string   `json:"interval"`
	Features    []string `json:"features"`
	PriceID     string   `json:"priceId"`
	ProductID   string   `json:"productId"`
	Popular     bool     `json:"popular,omitempty"`
	MaxUsers    int      `json:"maxUsers,omitempty"`    // -1 без ограничения
	MaxProjects int      `json:"maxProjects,omitempty"` // -1 без ограничения
}

// TierIDs идентификаторы цен и продуктов Stripe для одного тарифа
type TierIDs struct {
	PriceID   string
	ProductID string
}

// Catalog каталог тарифных планов. Состав тарифов фиксирован,
// идентификаторы Stripe подставляются из конфигурации при старте.
type Catalog struct {
	tiers []PricingTier
}

// New создает каталог. ids сопоставляет ключ тарифа с идентификаторами
// Stripe; для отсутствующих ключей остаются плейсхолдеры price_<key> /
// prod_<key>, пригодные только для локальной разработки.
func New(ids map[string]TierIDs) *Catalog {
	tiers := []PricingTier{
		{
			Key:         "basic",
			Name:        "Basic",
			Description: "Perfect for getting started",
			Price:       999,
			Currency:    "usd",
			Interval:    "month",
			Features: []string{
				"Up to 5 projects",
				"Basic analytics",
				"Email support",
				"10GB storage",
			},
			MaxUsers:    1,
			MaxProjects: 5,
		},
		{
			Key:         "pro",
			Name:        "Pro",
			Description: "For growing teams and businesses",
			Price:       2999,
			Currency:    "usd",
			Interval:    "month",
			Features: []string{
				"Unlimited projects",
				"Advanced analytics",
				"Priority support",
				"100GB storage",
				"Team collaboration",
				"Custom integrations",
			},
			Popular:     true,
			MaxUsers:    10,
			MaxProjects: -1,
		},
		{
			Key:         "enterprise",
			Name:        "Enterprise",
			Description: "For large organizations",
			Price:       9999,
			Currency:    "usd",
			Interval:    "month",
			Features: []string{
				"Everything in Pro",
				"Dedicated support",
				"Custom contracts",
				"Unlimited storage",
				"Advanced security",
				"On-premise deployment",
				"SLA guarantee",
			},
			MaxUsers:    -1,
			MaxProjects: -1,
		},
	}

	for i := range tiers {
		tier := &tiers[i]
		if override, ok := ids[tier.Key]; ok && override.PriceID != "" {
			tier.PriceID = override.PriceID
		} else {
			tier.PriceID = "price_" + tier.Key
		}
		if override, ok := ids[tier.Key]; ok && override.ProductID != "" {
			tier.ProductID = override.ProductID
		} else {
			tier.ProductID = "prod_" + tier.Key
		}
	}

	return &Catalog{tiers: tiers}
}

// Tier возвращает тариф по ключу (без учета регистра)
func (c *Catalog) Tier(key string) (PricingTier, bool) {
	key = strings.ToLower(key)
	for _, tier := range c.tiers {
		if tier.Key == key {
			return tier, true
		}
	}
	return PricingTier{}, false
}

// TierByPriceID возвращает тариф по идентификатору цены Stripe
func (c *Catalog) TierByPriceID(priceID string) (PricingTier, bool) {
	for _, tier := range c.tiers {
		if tier.PriceID == priceID {
			return tier, true
		}
	}
	return PricingTier{}, false
}

// Tiers возвращает все тарифы в порядке возрастания цены
func (c *Catalog) Tiers() []PricingTier {
	out := make([]PricingTier, len(c.tiers))
	copy(out, c.tiers)
	return out
}

// KnownPriceID проверяет, принадлежит ли цена каталогу
func (c *Catalog) KnownPriceID(priceID string) bool {
	_, ok := c.TierByPriceID(priceID)
	return ok
}
