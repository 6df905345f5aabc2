package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFailsFastWithoutSecrets(t *testing.T) {
	t.Setenv("STRIPE_API_KEY", "")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "STRIPE_API_KEY")
	assert.Contains(t, err.Error(), "STRIPE_WEBHOOK_SECRET")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STRIPE_API_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_123")
	t.Setenv("PORT", "")
	t.Setenv("APP_URL", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("STRIPE_SUCCESS_URL", "")
	t.Setenv("STRIPE_CANCEL_URL", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "http://localhost:3000", cfg.App.URL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.App.AllowedOrigins)
	assert.Equal(t, "http://localhost:3000/success", cfg.App.SuccessURL)
	assert.Equal(t, "http://localhost:3000/pricing", cfg.App.CancelURL)
	assert.Empty(t, cfg.Kafka.Brokers)
}

func TestLoadParsesLists(t *testing.T) {
	t.Setenv("STRIPE_API_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_123")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("STRIPE_PRO_PRICE_ID", "price_1ProLive")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.App.AllowedOrigins)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "price_1ProLive", cfg.Stripe.Tiers["pro"].PriceID)
}
