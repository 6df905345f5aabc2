package domain

// CustomerRequest представляет запрос на создание клиента
type CustomerRequest struct {
	Email    string            `json:"email" binding:"required,email" validate:"required,email"`
	Name     string            `json:"name" binding:"required" validate:"required"`
	Phone    string            `json:"phone"`
	Metadata map[string]string `json:"metadata"`
}

// CustomerUpdateRequest представляет частичное обновление клиента
type CustomerUpdateRequest struct {
	Email    string            `json:"email" binding:"omitempty,email" validate:"omitempty,email"`
	Name     string            `json:"name"`
	Phone    string            `json:"phone"`
	Metadata map[string]string `json:"metadata"`
}

// Customer представляет клиента, скопированного из ответа провайдера
type Customer struct {
	ID       string            `json:"id"`
	Email    string            `json:"email,omitempty"`
	Name     string            `json:"name,omitempty"`
	Phone    string            `json:"phone,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Created  int64             `json:"created"`
}
