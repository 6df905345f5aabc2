package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config структура конфигурации приложения
type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
	App     AppConfig
	Stripe  StripeConfig
	Kafka   KafkaConfig
}

// ServerConfig конфигурация HTTP сервера
type ServerConfig struct {
	Port            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// LoggingConfig конфигурация логгера
type LoggingConfig struct {
	Level string
}

// AppConfig публичные адреса приложения
type AppConfig struct {
	URL            string
	AllowedOrigins []string
	SuccessURL     string
	CancelURL      string
}

// StripeConfig конфигурация Stripe
type StripeConfig struct {
	APIKey         string
	WebhookSecret  string
	PublishableKey string
	Tiers          map[string]TierConfig
}

// TierConfig идентификаторы Stripe одного тарифного плана
type TierConfig struct {
	PriceID   string
	ProductID string
}

// KafkaConfig конфигурация Kafka
type KafkaConfig struct {
	Brokers     []string
	TopicPrefix string
}

// Load загружает конфигурацию из .env файла и переменных окружения.
// Отсутствие обязательных секретов - ошибка старта процесса, а не
// первого запроса.
func Load() (*Config, error) {
	// .env опционален: в контейнере переменные приходят из окружения
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_URL", "http://localhost:3000")

	appURL := v.GetString("APP_URL")
	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetString("PORT"),
			ReadTimeout:     v.GetInt("SERVER_READ_TIMEOUT"),
			WriteTimeout:    v.GetInt("SERVER_WRITE_TIMEOUT"),
			ShutdownTimeout: v.GetInt("SERVER_SHUTDOWN_TIMEOUT"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		App: AppConfig{
			URL:            appURL,
			AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
			SuccessURL:     v.GetString("STRIPE_SUCCESS_URL"),
			CancelURL:      v.GetString("STRIPE_CANCEL_URL"),
		},
		Stripe: StripeConfig{
			APIKey:         v.GetString("STRIPE_API_KEY"),
			WebhookSecret:  v.GetString("STRIPE_WEBHOOK_SECRET"),
			PublishableKey: v.GetString("STRIPE_PUBLISHABLE_KEY"),
			Tiers: map[string]TierConfig{
				"basic": {
					PriceID:   v.GetString("STRIPE_BASIC_PRICE_ID"),
					ProductID: v.GetString("STRIPE_BASIC_PRODUCT_ID"),
				},
				"pro": {
					PriceID:   v.GetString("STRIPE_PRO_PRICE_ID"),
					ProductID: v.GetString("STRIPE_PRO_PRODUCT_ID"),
				},
				"enterprise": {
					PriceID:   v.GetString("STRIPE_ENTERPRISE_PRICE_ID"),
					ProductID: v.GetString("STRIPE_ENTERPRISE_PRODUCT_ID"),
				},
			},
		},
		Kafka: KafkaConfig{
			Brokers:     splitList(v.GetString("KAFKA_BROKERS")),
			TopicPrefix: v.GetString("KAFKA_TOPIC_PREFIX"),
		},
	}

	if len(cfg.App.AllowedOrigins) == 0 {
		cfg.App.AllowedOrigins = []string{appURL}
	}
	if cfg.App.SuccessURL == "" {
		cfg.App.SuccessURL = appURL + "/success"
	}
	if cfg.App.CancelURL == "" {
		cfg.App.CancelURL = appURL + "/pricing"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	if c.Stripe.APIKey == "" {
		missing = append(missing, "STRIPE_API_KEY")
	}
	if c.Stripe.WebhookSecret == "" {
		missing = append(missing, "STRIPE_WEBHOOK_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
