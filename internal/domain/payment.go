package domain

// MinPaymentAmount минимальная сумма платежа в минорных единицах валюты
const MinPaymentAmount = 50

// PaymentIntentRequest представляет запрос на создание платежного намерения
type PaymentIntentRequest struct {
	Amount     int64             `json:"amount" binding:"required,min=50" validate:"required,gte=50"`
	Currency   string            `json:"currency"`
	CustomerID string            `json:"customerId"`
	Metadata   map[string]string `json:"metadata"`
}

// PaymentIntent представляет платежное намерение, скопированное из ответа провайдера
type PaymentIntent struct {
	ID             string            `json:"id"`
	ClientSecret   string            `json:"client_secret,omitempty"`
	Amount         int64             `json:"amount"`
	AmountReceived int64             `json:"amount_received,omitempty"`
	Currency       string            `json:"currency"`
	Status         string            `json:"status"`
	CustomerID     string            `json:"customer_id,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}
