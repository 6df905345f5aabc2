package rest

import (
	"github.com/vcr/payment-service/config"
	"github.com/vcr/payment-service/internal/api/rest/handlers"
	"github.com/vcr/payment-service/internal/api/rest/middleware"
	"github.com/vcr/payment-service/internal/catalog"
	"github.com/vcr/payment-service/internal/integration/stripe"
	"github.com/vcr/payment-service/internal/kafka"
	"github.com/vcr/payment-service/internal/metrics"
	"github.com/vcr/payment-service/internal/service"
	"github.com/vcr/payment-service/internal/webhook"
	"github.com/vcr/payment-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter настраивает маршрутизатор Gin с маршрутами и middleware
func SetupRouter(log *logger.Logger, registry *prometheus.Registry, cfg *config.Config, producer kafka.Producer) *gin.Engine {
	r := gin.New()
	// Вебхук-маршрут регистрирует только POST, остальные методы
	// должны получать 405, а не 404
	r.HandleMethodNotAllowed = true

	r.Use(middleware.LoggerMiddleware(log))
	r.Use(gin.Recovery())

	r.GET("/health", handlers.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Клиент Stripe и сервисный слой
	gateway := stripe.NewClient(stripe.Config{
		APIKey:        cfg.Stripe.APIKey,
		WebhookSecret: cfg.Stripe.WebhookSecret,
	}, log)

	paymentMetrics := metrics.NewPaymentMetrics(registry, log)

	checkoutService := service.NewCheckoutService(gateway, service.CheckoutURLs{
		SuccessURL: cfg.App.SuccessURL,
		CancelURL:  cfg.App.CancelURL,
	}, log)
	paymentService := service.NewPaymentService(gateway, log)
	customerService := service.NewCustomerService(gateway, log)
	subscriptionService := service.NewSubscriptionService(gateway, log)
	priceService := service.NewPriceService(gateway, log)

	tierIDs := make(map[string]catalog.TierIDs, len(cfg.Stripe.Tiers))
	for key, tier := range cfg.Stripe.Tiers {
		tierIDs[key] = catalog.TierIDs{PriceID: tier.PriceID, ProductID: tier.ProductID}
	}
	priceCatalog := catalog.New(tierIDs)

	dispatcher := webhook.NewDispatcher(cfg.Stripe.WebhookSecret, webhook.DefaultHandlers(producer, log), log)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, priceCatalog, paymentMetrics, log)
	webhookHandler := handlers.NewWebhookHandler(dispatcher, paymentMetrics, log)
	paymentHandler := handlers.NewPaymentHandler(paymentService, log)
	customerHandler := handlers.NewCustomerHandler(customerService, log)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService, log)
	priceHandler := handlers.NewPriceHandler(priceService, priceCatalog, log)

	// Публичная поверхность: CORS с allow-list источников
	api := r.Group("/api")
	api.Use(middleware.CORSMiddleware(cfg.App.URL, cfg.App.AllowedOrigins))
	{
		api.POST("/create-checkout-session", checkoutHandler.CreateSession)
		api.OPTIONS("/create-checkout-session", func(c *gin.Context) {})

		api.POST("/webhooks/stripe", webhookHandler.HandleStripeWebhook)
	}

	// Внутренний API действий
	v1 := r.Group("/api/v1")
	{
		payments := v1.Group("/payments")
		{
			payments.POST("/intent", paymentHandler.CreateIntent)
			payments.POST("/intent/:id/confirm", paymentHandler.ConfirmIntent)
			payments.GET("/intent/:id", paymentHandler.GetIntent)
		}

		v1.GET("/checkout-sessions/:id", checkoutHandler.GetSession)

		customers := v1.Group("/customers")
		{
			customers.POST("", customerHandler.CreateCustomer)
			customers.PUT("/:id", customerHandler.UpdateCustomer)
			customers.GET("/:id", customerHandler.GetCustomer)
		}

		subscriptions := v1.Group("/subscriptions")
		{
			subscriptions.POST("", subscriptionHandler.CreateSubscription)
			subscriptions.PUT("/:id", subscriptionHandler.UpdateSubscription)
			subscriptions.DELETE("/:id", subscriptionHandler.CancelSubscription)
			subscriptions.GET("/:id", subscriptionHandler.GetSubscription)
		}

		prices := v1.Group("/prices")
		{
			prices.GET("", priceHandler.ListPrices)
			prices.GET("/:id", priceHandler.GetPrice)
		}

		tiers := v1.Group("/tiers")
		{
			tiers.GET("", priceHandler.GetTiers)
			tiers.GET("/:key", priceHandler.GetTier)
		}
	}

	return r
}
