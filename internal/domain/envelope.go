package domain

// Result представляет единый конверт ответа операции.
// Инвариант: при Success=false поле Error всегда заполнено,
// при Success=true поле Error пустое.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// CheckoutResult конверт для операций с checkout-сессиями
type CheckoutResult struct {
	Success   bool   `json:"success"`
	URL       string `json:"url,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// CustomerResult конверт для операций с клиентами
type CustomerResult struct {
	Success    bool   `json:"success"`
	CustomerID string `json:"customerId,omitempty"`
	Error      string `json:"error,omitempty"`
}

// SubscriptionResult конверт для операций с подписками
type SubscriptionResult struct {
	Success        bool   `json:"success"`
	SubscriptionID string `json:"subscriptionId,omitempty"`
	ClientSecret   string `json:"clientSecret,omitempty"`
	Error          string `json:"error,omitempty"`
}

// OK создает успешный конверт с данными
func OK(data any) Result {
	return Result{Success: true, Data: data}
}

// Fail создает конверт с ошибкой
func Fail(err error) Result {
	msg := "unknown error occurred"
	if err != nil {
		msg = err.Error()
	}
	return Result{Success: false, Error: msg}
}
