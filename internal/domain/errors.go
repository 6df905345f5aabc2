package domain

import (
	"errors"
	"fmt"
)

// Закрытый набор тегов для ошибок провайдера. Теги назначаются один раз
// на границе вызова Stripe; дальше код различает ошибки только по тегу,
// а не по тексту сообщения.
var (
	// ErrValidation неверные входные данные
	ErrValidation = errors.New("validation failed")

	// ErrAuth провайдер отклонил учетные данные сервиса
	ErrAuth = errors.New("provider authentication failed")

	// ErrRateLimited провайдер ограничил частоту запросов
	ErrRateLimited = errors.New("provider rate limit exceeded")

	// ErrUpstream запрос к провайдеру не удался
	ErrUpstream = errors.New("provider request failed")

	// ErrConfig сервис сконфигурирован неправильно
	ErrConfig = errors.New("service misconfigured")

	// ErrNotFound запись не найдена у провайдера
	ErrNotFound = errors.New("record not found")
)

// ProviderError представляет ошибку, полученную от платежного провайдера
type ProviderError struct {
	Kind        error // один из тегов выше
	Code        string
	Message     string
	RequestID   string
	StatusCode  int
	OriginalErr error
}

// Error реализует интерфейс error
func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("provider error [%s]: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

// Is проверяет принадлежность ошибки тегу
func (e *ProviderError) Is(target error) bool {
	return target == e.Kind
}

// Unwrap возвращает оригинальную ошибку
func (e *ProviderError) Unwrap() error {
	return e.OriginalErr
}

// NewProviderError создает новую ошибку провайдера
func NewProviderError(kind error, code, message, requestID string, statusCode int, err error) *ProviderError {
	return &ProviderError{
		Kind:        kind,
		Code:        code,
		Message:     message,
		RequestID:   requestID,
		StatusCode:  statusCode,
		OriginalErr: err,
	}
}

// ValidationError представляет ошибку валидации одного поля
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors представляет набор ошибок валидации
type ValidationErrors []ValidationError

// Error реализует интерфейс error
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	if len(e) == 1 {
		return fmt.Sprintf("validation failed: %s - %s", e[0].Field, e[0].Message)
	}

	return fmt.Sprintf("validation failed: %d errors", len(e))
}

// Is позволяет сопоставлять набор с тегом ErrValidation
func (e ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// Add добавляет ошибку валидации
func (e *ValidationErrors) Add(field, message string) {
	*e = append(*e, ValidationError{Field: field, Message: message})
}

// HasErrors проверяет наличие ошибок
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Fields возвращает список полей с ошибками
func (e ValidationErrors) Fields() []string {
	fields := make([]string, len(e))
	for i, err := range e {
		fields[i] = err.Field
	}
	return fields
}
