package domain

// CheckoutMode режим работы checkout-сессии
type CheckoutMode string

const (
	CheckoutModePayment      CheckoutMode = "payment"
	CheckoutModeSubscription CheckoutMode = "subscription"
	CheckoutModeSetup        CheckoutMode = "setup"
)

// IsValid проверяет, что режим принадлежит допустимому множеству
func (m CheckoutMode) IsValid() bool {
	switch m {
	case CheckoutModePayment, CheckoutModeSubscription, CheckoutModeSetup:
		return true
	}
	return false
}

// CheckoutSessionRequest представляет входной запрос на создание checkout-сессии.
// Если указаны и customerId, и customerEmail — приоритет у customerId.
type CheckoutSessionRequest struct {
	PriceID       string            `json:"priceId" validate:"required"`
	Quantity      int64             `json:"quantity" validate:"omitempty,gte=1"`
	Metadata      map[string]string `json:"metadata"`
	CustomerID    string            `json:"customerId"`
	CustomerEmail string            `json:"customerEmail" validate:"omitempty,email"`
	Mode          CheckoutMode      `json:"mode"`
}

// CheckoutParams параметры checkout-сессии после валидации и подстановки
// значений по умолчанию. Именно в таком виде запрос уходит на шлюз Stripe.
type CheckoutParams struct {
	PriceID                 string
	Quantity                int64
	Mode                    CheckoutMode
	SuccessURL              string
	CancelURL               string
	CustomerID              string
	CustomerEmail           string
	Metadata                map[string]string
	CollectBillingAddress   bool
	DeferPaymentMethodEntry bool
}

// CheckoutSession представляет созданную у провайдера checkout-сессию
type CheckoutSession struct {
	ID            string            `json:"id"`
	URL           string            `json:"url,omitempty"`
	Status        string            `json:"status,omitempty"`
	Mode          string            `json:"mode,omitempty"`
	CustomerID    string            `json:"customerId,omitempty"`
	Subscription  string            `json:"subscriptionId,omitempty"`
	PaymentIntent string            `json:"paymentIntentId,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}
