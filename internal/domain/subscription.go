package domain

// SubscriptionRequest представляет запрос на создание подписки
type SubscriptionRequest struct {
	CustomerID string            `json:"customerId" binding:"required" validate:"required"`
	PriceID    string            `json:"priceId" binding:"required" validate:"required"`
	Metadata   map[string]string `json:"metadata"`
	TrialDays  int64             `json:"trialDays" binding:"omitempty,min=1" validate:"omitempty,gte=1"`
}

// SubscriptionUpdateRequest представляет обновление подписки.
// Смена цены требует предварительного чтения подписки, чтобы узнать
// идентификатор её элемента; между чтением и записью нет транзакции,
// конкурентное обновление разрешается провайдером по принципу last-write-wins.
type SubscriptionUpdateRequest struct {
	PriceID  string            `json:"priceId"`
	Metadata map[string]string `json:"metadata"`
}

// Subscription представляет подписку, скопированную из ответа провайдера
type Subscription struct {
	ID                 string            `json:"id"`
	Status             string            `json:"status"`
	CustomerID         string            `json:"customer_id,omitempty"`
	CurrentPeriodStart int64             `json:"current_period_start,omitempty"`
	CurrentPeriodEnd   int64             `json:"current_period_end,omitempty"`
	TrialEnd           int64             `json:"trial_end,omitempty"`
	CancelAtPeriodEnd  bool              `json:"cancel_at_period_end"`
	Metadata           map[string]string `json:"metadata,omitempty"`
}
