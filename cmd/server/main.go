package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vcr/payment-service/config"
	"github.com/vcr/payment-service/internal/api/rest"
	"github.com/vcr/payment-service/internal/kafka"
	"github.com/vcr/payment-service/internal/metrics"
	"github.com/vcr/payment-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var log *logger.Logger

func init() {
	logLevel := logger.INFO
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		logLevel = logger.ParseLevel(lvl)
	}
	log = logger.New(logLevel)
}

func main() {
	// Загрузка конфигурации: отсутствие обязательных секретов
	// останавливает процесс здесь, а не на первом запросе
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: %v", err)
	}
	log.SetLevel(logger.ParseLevel(cfg.Logging.Level))

	// Инициализация Prometheus
	promRegistry := prometheus.NewRegistry()
	systemMetrics := metrics.NewSystemMetrics(promRegistry, log)
	systemMetrics.StartRecording(15 * time.Second)
	defer systemMetrics.Stop()

	// Kafka опциональна: без брокеров события только логируются
	var producer kafka.Producer = kafka.NopProducer{}
	kafkaConfig := kafka.NewConfig(cfg.Kafka.Brokers, cfg.Kafka.TopicPrefix)
	if kafkaConfig.Enabled() {
		producer, err = kafka.NewSyncProducer(kafkaConfig, log)
		if err != nil {
			log.Fatal("Failed to create Kafka producer: %v", err)
		}
	} else {
		log.Warn("Kafka brokers are not configured, event publishing is disabled")
	}
	defer producer.Close()

	// Установка режима Gin
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Настройка маршрутизатора
	router := rest.SetupRouter(log, promRegistry, cfg, producer)

	// Создание и запуск HTTP сервера
	server := rest.NewServer(router, cfg, log)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error: %v", err)
	}

	log.Info("Server stopped")
}
