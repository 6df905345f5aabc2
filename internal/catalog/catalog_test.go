package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogTiers(t *testing.T) {
	c := New(nil)

	tiers := c.Tiers()
	require.Len(t, tiers, 3)

	assert.Equal(t, "basic", tiers[0].Key)
	assert.Equal(t, int64(999), tiers[0].Price)
	assert.Equal(t, "pro", tiers[1].Key)
	assert.Equal(t, int64(2999), tiers[1].Price)
	assert.True(t, tiers[1].Popular)
	assert.Equal(t, "enterprise", tiers[2].Key)
	assert.Equal(t, int64(9999), tiers[2].Price)

	for _, tier := range tiers {
		assert.Equal(t, "usd", tier.Currency)
		assert.Equal(t, "month", tier.Interval)
		assert.NotEmpty(t, tier.Features)
	}
}

func TestCatalogTierLookup(t *testing.T) {
	c := New(nil)

	tier, ok := c.Tier("pro")
	require.True(t, ok)
	assert.Equal(t, "Pro", tier.Name)

	tier, ok = c.Tier("PRO")
	require.True(t, ok)
	assert.Equal(t, "Pro", tier.Name)

	_, ok = c.Tier("platinum")
	assert.False(t, ok)
}

func TestCatalogPlaceholderIDs(t *testing.T) {
	c := New(nil)

	tier, ok := c.Tier("basic")
	require.True(t, ok)
	assert.Equal(t, "price_basic", tier.PriceID)
	assert.Equal(t, "prod_basic", tier.ProductID)
}

func TestCatalogConfiguredIDs(t *testing.T) {
	c := New(map[string]TierIDs{
		"pro": {PriceID: "price_1ProLive", ProductID: "prod_ProLive"},
	})

	pro, ok := c.Tier("pro")
	require.True(t, ok)
	assert.Equal(t, "price_1ProLive", pro.PriceID)
	assert.Equal(t, "prod_ProLive", pro.ProductID)

	// Тарифы без переопределения остаются на плейсхолдерах
	basic, ok := c.Tier("basic")
	require.True(t, ok)
	assert.Equal(t, "price_basic", basic.PriceID)
}

func TestCatalogTierByPriceID(t *testing.T) {
	c := New(map[string]TierIDs{
		"enterprise": {PriceID: "price_1EntLive"},
	})

	tier, ok := c.TierByPriceID("price_1EntLive")
	require.True(t, ok)
	assert.Equal(t, "enterprise", tier.Key)

	assert.True(t, c.KnownPriceID("price_basic"))
	assert.False(t, c.KnownPriceID("price_unknown"))
}
