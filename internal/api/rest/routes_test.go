package rest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vcr/payment-service/config"
	"github.com/vcr/payment-service/internal/kafka"
	"github.com/vcr/payment-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testRouter() *gin.Engine {
	log := logger.New(logger.ERROR)
	log.SetOutput(io.Discard)

	cfg := &config.Config{}
	cfg.Server.Port = "8080"
	cfg.App.URL = "https://app.example.com"
	cfg.App.AllowedOrigins = []string{"https://app.example.com"}
	cfg.App.SuccessURL = "https://app.example.com/success"
	cfg.App.CancelURL = "https://app.example.com/pricing"
	cfg.Stripe.APIKey = "sk_test_dummy"
	cfg.Stripe.WebhookSecret = "whsec_dummy"

	return SetupRouter(log, prometheus.NewRegistry(), cfg, kafka.NopProducer{})
}

func TestHealthEndpoint(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"OK"`)
	assert.Contains(t, w.Body.String(), `"uptime"`)
}

func TestMetricsEndpoint(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestCheckoutForbiddenOriginBeforeBodyParse(t *testing.T) {
	r := testRouter()

	// Тело намеренно не является валидным JSON: проверка Origin
	// должна сработать раньше чтения тела
	req := httptest.NewRequest(http.MethodPost, "/api/create-checkout-session", strings.NewReader("not json"))
	req.Header.Set("Origin", "https://evil.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"FORBIDDEN"`)
}

func TestCheckoutPreflight(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/create-checkout-session", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSHeadersOnErrorResponses(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/create-checkout-session", strings.NewReader("{}"))
	req.Header.Set("Origin", "https://evil.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// CORS-заголовки присутствуют даже на отказе
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestWebhookMethodNotAllowed(t *testing.T) {
	r := testRouter()

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/api/webhooks/stripe", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, "method %s", method)
	}
}

func TestTiersEndpoint(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tiers", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"key":"basic"`)
	assert.Contains(t, w.Body.String(), `"key":"pro"`)
	assert.Contains(t, w.Body.String(), `"key":"enterprise"`)
	assert.Contains(t, w.Body.String(), `"displayPrice":"$29.99/month"`)
}

func TestTierLookupEndpoint(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tiers/pro", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Pro"`)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/tiers/platinum", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
