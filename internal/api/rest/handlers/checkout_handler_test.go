package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vcr/payment-service/internal/catalog"
	"github.com/vcr/payment-service/internal/domain"
	"github.com/vcr/payment-service/internal/metrics"
	"github.com/vcr/payment-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logger.Logger {
	log := logger.New(logger.ERROR)
	log.SetOutput(io.Discard)
	return log
}

func testMetrics() metrics.PaymentMetrics {
	return metrics.NewPaymentMetrics(prometheus.NewRegistry(), testLogger())
}

// stubCheckoutService управляемая реализация сервиса для тестов обработчика
type stubCheckoutService struct {
	session *domain.CheckoutSession
	err     error
	calls   int
}

func (s *stubCheckoutService) StartSession(ctx context.Context, req domain.CheckoutSessionRequest) (*domain.CheckoutSession, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.session, nil
}

func (s *stubCheckoutService) CreateSession(ctx context.Context, req domain.CheckoutSessionRequest) domain.CheckoutResult {
	sess, err := s.StartSession(ctx, req)
	if err != nil {
		return domain.CheckoutResult{Success: false, Error: err.Error()}
	}
	return domain.CheckoutResult{Success: true, URL: sess.URL, SessionID: sess.ID}
}

func (s *stubCheckoutService) GetSession(ctx context.Context, id string) domain.Result {
	return domain.OK(s.session)
}

func checkoutRouter(svc *stubCheckoutService) *gin.Engine {
	r := gin.New()
	h := NewCheckoutHandler(svc, catalog.New(nil), testMetrics(), testLogger())
	r.POST("/api/create-checkout-session", h.CreateSession)
	return r
}

func postCheckout(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/create-checkout-session", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateSessionSuccess(t *testing.T) {
	svc := &stubCheckoutService{session: &domain.CheckoutSession{
		ID:   "cs_test_1",
		URL:  "https://checkout.stripe.com/c/pay/cs_test_1",
		Mode: "payment",
	}}
	r := checkoutRouter(svc)

	w := postCheckout(r, `{"priceId":"price_basic"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sessionId":"cs_test_1"`)
	assert.Contains(t, w.Body.String(), "checkout.stripe.com")
	assert.Equal(t, 1, svc.calls)
}

func TestCreateSessionInvalidJSON(t *testing.T) {
	svc := &stubCheckoutService{}
	r := checkoutRouter(svc)

	w := postCheckout(r, `{"priceId": "price_basic"`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"INVALID_JSON"`)
	assert.Equal(t, 0, svc.calls, "malformed JSON must not reach the service")
}

func TestCreateSessionEmptyBody(t *testing.T) {
	svc := &stubCheckoutService{}
	r := checkoutRouter(svc)

	w := postCheckout(r, "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"INVALID_JSON"`)
	assert.Equal(t, 0, svc.calls)
}

func TestCreateSessionWrongFieldType(t *testing.T) {
	svc := &stubCheckoutService{}
	r := checkoutRouter(svc)

	w := postCheckout(r, `{"priceId":"price_basic","quantity":"two"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"INVALID_REQUEST"`)
	assert.Equal(t, 0, svc.calls)
}

func TestCreateSessionValidationError(t *testing.T) {
	svc := &stubCheckoutService{err: domain.ValidationErrors{{Field: "priceId", Message: "is required"}}}
	r := checkoutRouter(svc)

	w := postCheckout(r, `{}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"INVALID_REQUEST"`)
}

func TestCreateSessionProviderValidationError(t *testing.T) {
	svc := &stubCheckoutService{err: domain.NewProviderError(
		domain.ErrValidation, "parameter_invalid_empty", "You must provide at least one recurring price", "req_1", 400, nil)}
	r := checkoutRouter(svc)

	w := postCheckout(r, `{"priceId":"price_basic","mode":"subscription"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"STRIPE_INVALID_REQUEST"`)
	assert.Contains(t, w.Body.String(), "recurring price")
}

func TestCreateSessionUnknownPrice(t *testing.T) {
	// resource_missing от Stripe получает тег not-found, но для публичного
	// контракта это ошибка запроса клиента, а не сбой сервера
	svc := &stubCheckoutService{err: domain.NewProviderError(
		domain.ErrNotFound, "resource_missing", "No such price: 'price_nope'", "req_4", 400, nil)}
	r := checkoutRouter(svc)

	w := postCheckout(r, `{"priceId":"price_nope"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"STRIPE_INVALID_REQUEST"`)
	assert.Contains(t, w.Body.String(), "No such price")
}

func TestCreateSessionProviderAuthError(t *testing.T) {
	svc := &stubCheckoutService{err: domain.NewProviderError(
		domain.ErrAuth, "api_key_invalid", "Invalid API Key provided", "req_2", 401, nil)}
	r := checkoutRouter(svc)

	w := postCheckout(r, `{"priceId":"price_basic"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"STRIPE_AUTH_ERROR"`)
	// Текст ошибки провайдера не протекает наружу
	assert.NotContains(t, w.Body.String(), "Invalid API Key")
}

func TestCreateSessionRateLimited(t *testing.T) {
	svc := &stubCheckoutService{err: domain.NewProviderError(
		domain.ErrRateLimited, "rate_limit", "Too many requests", "req_3", 429, nil)}
	r := checkoutRouter(svc)

	w := postCheckout(r, `{"priceId":"price_basic"}`)

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"RATE_LIMIT_ERROR"`)
}

func TestCreateSessionProviderOutage(t *testing.T) {
	svc := &stubCheckoutService{err: domain.NewProviderError(
		domain.ErrUpstream, "", "connection reset", "", 0, nil)}
	r := checkoutRouter(svc)

	w := postCheckout(r, `{"priceId":"price_basic"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"STRIPE_ERROR"`)
}
