package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vcr/payment-service/pkg/logger"

	"github.com/IBM/sarama"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

// Event нормализованное платежное событие, публикуемое в Kafka.
// Key используется для партиционирования: события одной сущности
// (платежа, подписки) попадают в одну партицию и сохраняют порядок.
type Event struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	Key        string            `json:"key"`
	OccurredAt time.Time         `json:"occurredAt"`
	ProviderID string            `json:"providerId,omitempty"`
	Amount     int64             `json:"amount,omitempty"`
	Currency   string            `json:"currency,omitempty"`
	Status     string            `json:"status,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// NewEvent создает событие с уникальным идентификатором
func NewEvent(eventType, key string) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Key:        key,
		OccurredAt: time.Now().UTC(),
	}
}

// Producer определяет интерфейс для публикации платежных событий
type Producer interface {
	Publish(topic string, event Event) error
	Close() error
}

type syncProducer struct {
	producer    sarama.SyncProducer
	topicPrefix string
	log         *logger.Logger
}

// NewSyncProducer создает продюсер Kafka. Подключение повторяется с
// экспоненциальной задержкой: при старте сервиса брокер может быть
// еще не готов.
func NewSyncProducer(cfg *Config, log *logger.Logger) (Producer, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("kafka brokers are not configured")
	}

	saramaConfig := NewSaramaConfig(cfg)

	var producer sarama.SyncProducer
	connect := func() error {
		var err error
		producer, err = sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
		if err != nil {
			log.Warnw("Kafka producer connection failed, retrying", "brokers", cfg.Brokers, "error", err)
		}
		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(connect, policy); err != nil {
		return nil, fmt.Errorf("kafka: failed to create producer: %w", err)
	}

	log.Infow("Kafka producer initialized", "brokers", cfg.Brokers, "topic_prefix", cfg.TopicPrefix)
	return &syncProducer{
		producer:    producer,
		topicPrefix: cfg.TopicPrefix,
		log:         log,
	}, nil
}

// Publish сериализует событие в JSON и отправляет в топик
func (p *syncProducer) Publish(topic string, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka: failed to marshal event: %w", err)
	}

	fullTopic := topic
	if p.topicPrefix != "" {
		fullTopic = p.topicPrefix + "." + topic
	}

	msg := &sarama.ProducerMessage{
		Topic:     fullTopic,
		Key:       sarama.StringEncoder(event.Key),
		Value:     sarama.ByteEncoder(value),
		Timestamp: event.OccurredAt,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.log.Errorw("Failed to publish event to Kafka", "topic", fullTopic, "event_id", event.ID, "error", err)
		return fmt.Errorf("kafka: failed to send message: %w", err)
	}

	p.log.Debugw("Event published to Kafka", "topic", fullTopic, "event_id", event.ID, "partition", partition, "offset", offset)
	return nil
}

// Close закрывает продюсер
func (p *syncProducer) Close() error {
	return p.producer.Close()
}

// NopProducer продюсер-заглушка для запуска без Kafka
type NopProducer struct{}

// Publish ничего не публикует
func (NopProducer) Publish(topic string, event Event) error { return nil }

// Close ничего не закрывает
func (NopProducer) Close() error { return nil }
