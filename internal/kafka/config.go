package kafka

import (
	"github.com/IBM/sarama"
)

// Топики для нормализованных платежных событий. Префикс из конфигурации
// добавляется перед именем топика при публикации.
const (
	TopicPaymentSucceeded     = "payment.succeeded"
	TopicPaymentFailed        = "payment.failed"
	TopicSubscriptionChanged  = "subscription.changed"
	TopicCheckoutCompleted    = "checkout.completed"
	TopicCustomerCreated      = "customer.created"
	TopicInvoicePaymentFailed = "invoice.payment_failed"
)

// Config конфигурация для Kafka
type Config struct {
	Brokers     []string
	TopicPrefix string
	Producer    ProducerConfig
}

// ProducerConfig конфигурация для продюсера
type ProducerConfig struct {
	MaxMessageBytes  int
	Compression      sarama.CompressionCodec
	RequiredAcks     sarama.RequiredAcks
	FlushMaxMessages int
}

// NewConfig создает новую конфигурацию Kafka
func NewConfig(brokers []string, topicPrefix string) *Config {
	return &Config{
		Brokers:     brokers,
		TopicPrefix: topicPrefix,
		Producer: ProducerConfig{
			MaxMessageBytes:  1000000,
			Compression:      sarama.CompressionSnappy,
			RequiredAcks:     sarama.WaitForAll,
			FlushMaxMessages: 100,
		},
	}
}

// Enabled сообщает, настроена ли публикация в Kafka
func (c *Config) Enabled() bool {
	return c != nil && len(c.Brokers) > 0
}

// NewSaramaConfig создает новую конфигурацию Sarama
func NewSaramaConfig(cfg *Config) *sarama.Config {
	saramaConfig := sarama.NewConfig()

	// Версия Kafka
	saramaConfig.Version = sarama.V3_3_0_0

	// Настройки продюсера
	saramaConfig.Producer.MaxMessageBytes = cfg.Producer.MaxMessageBytes
	saramaConfig.Producer.Compression = cfg.Producer.Compression
	saramaConfig.Producer.RequiredAcks = cfg.Producer.RequiredAcks
	saramaConfig.Producer.Flush.MaxMessages = cfg.Producer.FlushMaxMessages
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true

	return saramaConfig
}
