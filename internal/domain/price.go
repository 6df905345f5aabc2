package domain

// Price представляет цену, скопированную из ответа провайдера
type Price struct {
	ID            string            `json:"id"`
	UnitAmount    int64             `json:"unit_amount"`
	Currency      string            `json:"currency"`
	Interval      string            `json:"interval,omitempty"`
	IntervalCount int64             `json:"interval_count,omitempty"`
	ProductID     string            `json:"product_id,omitempty"`
	Active        bool              `json:"active"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// PriceList представляет страницу списка цен
type PriceList struct {
	Prices  []Price `json:"prices"`
	HasMore bool    `json:"has_more"`
}
